package migration

import (
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.LocationModel{},
		&models.SetupModel{},
		&models.SetupCorrectionModel{},
		&models.SubscriptionQuotaModel{},
		&models.InstrumentProfileModel{},
	}
}
