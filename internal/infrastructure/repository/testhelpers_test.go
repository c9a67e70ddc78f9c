package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// setupTestDB opens a private in-memory database. A single connection keeps
// every goroutine on the same database and serializes writers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.SetupModel{},
		&models.SetupCorrectionModel{},
		&models.LocationModel{},
		&models.SubscriptionQuotaModel{},
		&models.InstrumentProfileModel{},
	))
	return db
}

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}
