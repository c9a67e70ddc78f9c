package permission

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

func storedSetup(owner string, shared, fullAccess bool) *setup.Setup {
	now := time.Now().UTC()
	return setup.ReconstructSetup("setup-1", owner, "loc-1", "Sunday service", nil,
		[]setup.PerformerSlot{{Type: "vocal", Count: 1}}, setup.GeneratedConfig{},
		nil, "", shared, fullAccess, now, now)
}

func TestEnforcer_Can(t *testing.T) {
	e, err := newEnforcer(nil, logger.NewNopLogger())
	require.NoError(t, err)

	owner := setup.Actor{UserID: "owner", Role: "user"}
	other := setup.Actor{UserID: "other", Role: "user"}
	admin := setup.Actor{UserID: "root", Role: "admin"}

	tests := []struct {
		name   string
		actor  setup.Actor
		setup  *setup.Setup
		action setup.Action
		want   bool
	}{
		{"owner reads private", owner, storedSetup("owner", false, false), setup.ActionRead, true},
		{"owner writes private", owner, storedSetup("owner", false, false), setup.ActionWrite, true},
		{"other cannot read private", other, storedSetup("owner", false, false), setup.ActionRead, false},
		{"other reads shared", other, storedSetup("owner", true, false), setup.ActionRead, true},
		{"other cannot write read-only share", other, storedSetup("owner", true, false), setup.ActionWrite, false},
		{"other writes full-access share", other, storedSetup("owner", true, true), setup.ActionWrite, true},
		{"full access ignored when not shared", other, storedSetup("owner", false, true), setup.ActionWrite, false},
		{"admin reads private", admin, storedSetup("owner", false, false), setup.ActionRead, true},
		{"admin writes private", admin, storedSetup("owner", false, false), setup.ActionWrite, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Can(context.Background(), tt.actor, tt.setup, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnforcer_AnonymousDenied(t *testing.T) {
	e, err := newEnforcer(nil, logger.NewNopLogger())
	require.NoError(t, err)

	got, err := e.Can(context.Background(), setup.Actor{}, storedSetup("owner", true, true), setup.ActionRead)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestNewEnforcer_PersistsPoliciesThroughGorm(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// Seeding again is idempotent.
	_, err = NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// A lost admin grant is restored on the next start.
	require.NoError(t, db.Exec("DELETE FROM casbin_rule WHERE v1 = ?", string(setup.ActionWrite)).Error)
	e, err = NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	got, err := e.Can(context.Background(), setup.Actor{UserID: "root", Role: "admin"}, storedSetup("owner", false, false), setup.ActionWrite)
	require.NoError(t, err)
	assert.True(t, got)
}
