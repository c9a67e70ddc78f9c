package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type RefreshSetupCommand struct {
	Actor   setup.Actor
	SetupID string
	// Performers, when non-nil, replaces the setup's lineup.
	Performers []setup.PerformerSlot
}

// RefreshSetupUseCase regenerates an existing setup in place with the
// venue's learning context. It is metered like a generation.
type RefreshSetupUseCase struct {
	setupRepo      setup.Repository
	correctionRepo setup.CorrectionRepository
	locationRepo   location.Repository
	policy         setup.AccessPolicy
	quotaGate      QuotaGate
	generator      Generator
	context        *contextBuilder
	logger         logger.Interface
}

func NewRefreshSetupUseCase(
	setupRepo setup.Repository,
	correctionRepo setup.CorrectionRepository,
	locationRepo location.Repository,
	instrumentRepo instrument.Repository,
	policy setup.AccessPolicy,
	quotaGate QuotaGate,
	generator Generator,
	settings Settings,
	logger logger.Interface,
) *RefreshSetupUseCase {
	return &RefreshSetupUseCase{
		setupRepo:      setupRepo,
		correctionRepo: correctionRepo,
		locationRepo:   locationRepo,
		policy:         policy,
		quotaGate:      quotaGate,
		generator:      generator,
		context: &contextBuilder{
			setupRepo:      setupRepo,
			correctionRepo: correctionRepo,
			instrumentRepo: instrumentRepo,
			settings:       settings.normalized(),
			logger:         logger,
		},
		logger: logger,
	}
}

func (uc *RefreshSetupUseCase) Execute(ctx context.Context, cmd RefreshSetupCommand) (*dto.SetupDTO, error) {
	if cmd.Performers != nil {
		if _, err := setup.NormalizeLineup(cmd.Performers); err != nil {
			return nil, asValidation(err)
		}
	}

	s, err := loadAuthorized(ctx, uc.setupRepo, uc.policy, cmd.Actor, cmd.SetupID, setup.ActionWrite)
	if err != nil {
		return nil, err
	}

	loc, err := uc.locationRepo.GetByID(ctx, s.LocationID())
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, errors.NewNotFoundError("location not found")
	}

	decision, err := uc.quotaGate.TryConsume(ctx, cmd.Actor.UserID, cmd.Actor.Role, subscription.KindGeneration)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, usageLimitError(decision)
	}

	performers := s.Performers()
	if cmd.Performers != nil {
		performers = cmd.Performers
	}

	req, err := uc.context.build(ctx, cmd.Actor.UserID, loc, performers, s.ID())
	if err != nil {
		uc.logger.Errorw("failed to build generation context", "error", err, "setup_id", s.ID())
		return nil, err
	}

	started := time.Now()
	config, err := uc.generator.Generate(ctx, req)
	if err != nil {
		uc.logger.Errorw("setup refresh failed",
			"error", err,
			"setup_id", s.ID(),
			"duration_ms", time.Since(started).Milliseconds())
		return nil, errors.NewGenerationFailedError("setup refresh failed, please try again", err.Error())
	}

	if err := s.ApplyGeneration(config, cmd.Performers); err != nil {
		return nil, asValidation(err)
	}
	if err := uc.setupRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to save refreshed setup", "error", err, "setup_id", s.ID())
		return nil, fmt.Errorf("failed to save refreshed setup: %w", err)
	}
	if err := loadCorrections(ctx, uc.correctionRepo, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("setup refreshed",
		"setup_id", s.ID(),
		"user_id", cmd.Actor.UserID,
		"corrections", len(req.PriorCorrections),
		"duration_ms", time.Since(started).Milliseconds())

	return dto.ToSetupDTO(s, cmd.Actor.UserID), nil
}
