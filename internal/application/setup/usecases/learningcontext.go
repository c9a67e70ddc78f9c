package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type LearningContextQuery struct {
	UserID        string
	LocationID    string
	PerformerType string
}

// LearningContextUseCase exposes the corrections a generation at the venue
// would see, most recent first.
type LearningContextUseCase struct {
	correctionRepo setup.CorrectionRepository
	locationRepo   location.Repository
	settings       Settings
	logger         logger.Interface
}

func NewLearningContextUseCase(
	correctionRepo setup.CorrectionRepository,
	locationRepo location.Repository,
	settings Settings,
	logger logger.Interface,
) *LearningContextUseCase {
	return &LearningContextUseCase{
		correctionRepo: correctionRepo,
		locationRepo:   locationRepo,
		settings:       settings.normalized(),
		logger:         logger,
	}
}

func (uc *LearningContextUseCase) Execute(ctx context.Context, query LearningContextQuery) ([]*dto.LearningCorrectionDTO, error) {
	loc, err := uc.locationRepo.GetByID(ctx, query.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, errors.NewNotFoundError("location not found")
	}

	corrections, err := uc.correctionRepo.ListLearningContext(ctx, setup.LearningContextQuery{
		LocationID:    loc.ID(),
		RequesterID:   query.UserID,
		InstrumentKey: setup.NormalizeIdentifier(query.PerformerType),
		Limit:         uc.settings.LearningContextLimit,
	})
	if err != nil {
		uc.logger.Errorw("failed to load learning context", "error", err, "location_id", loc.ID())
		return nil, fmt.Errorf("failed to load learning context: %w", err)
	}

	return dto.ToLearningCorrectionDTOs(corrections), nil
}
