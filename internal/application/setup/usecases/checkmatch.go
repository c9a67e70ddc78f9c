package usecases

import (
	"context"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type CheckMatchCommand struct {
	UserID     string
	LocationID string
	Performers []setup.PerformerSlot
}

// CheckMatchUseCase finds the best prior setup for a lineup at a venue. It
// reads once and never calls the generator.
type CheckMatchUseCase struct {
	setupRepo setup.Repository
	settings  Settings
	logger    logger.Interface
}

func NewCheckMatchUseCase(
	setupRepo setup.Repository,
	settings Settings,
	logger logger.Interface,
) *CheckMatchUseCase {
	return &CheckMatchUseCase{
		setupRepo: setupRepo,
		settings:  settings.normalized(),
		logger:    logger,
	}
}

func (uc *CheckMatchUseCase) Execute(ctx context.Context, cmd CheckMatchCommand) (*dto.MatchResultDTO, error) {
	fp, err := setup.BuildFingerprint(cmd.LocationID, cmd.Performers)
	if err != nil {
		return nil, asValidation(err)
	}

	candidates, err := uc.setupRepo.ListMatchCandidates(ctx, fp.LocationID, cmd.UserID, uc.settings.LookbackLimit)
	if err != nil {
		uc.logger.Errorw("failed to list match candidates", "error", err, "location_id", fp.LocationID)
		return nil, fmt.Errorf("failed to list match candidates: %w", err)
	}

	result := setup.FindBestMatch(fp.Lineup, candidates)

	uc.logger.Debugw("match check completed",
		"user_id", cmd.UserID,
		"location_id", fp.LocationID,
		"candidates", len(candidates),
		"quality", result.Quality)

	return dto.ToMatchResultDTO(result), nil
}
