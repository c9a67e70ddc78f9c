package http

import (
	"gorm.io/gorm"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/infrastructure/repository"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	setupRepo      setup.Repository
	correctionRepo setup.CorrectionRepository
	locationRepo   location.Repository
	instrumentRepo instrument.Repository
	quotaRepo      subscription.QuotaRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		setupRepo:      repository.NewSetupRepository(db, log),
		correctionRepo: repository.NewSetupCorrectionRepository(db, log),
		locationRepo:   repository.NewLocationRepository(db),
		instrumentRepo: repository.NewInstrumentProfileRepository(db),
		quotaRepo:      repository.NewSubscriptionQuotaRepository(db, log),
	}
}
