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

type GenerateSetupCommand struct {
	Actor      setup.Actor
	LocationID string
	EventName  string
	EventDate  *time.Time
	Performers []setup.PerformerSlot
}

// GenerateSetupUseCase charges one generation and asks the generator for a
// fresh setup. The charge stands even when generation fails.
type GenerateSetupUseCase struct {
	setupRepo    setup.Repository
	locationRepo location.Repository
	quotaGate    QuotaGate
	generator    Generator
	context      *contextBuilder
	logger       logger.Interface
}

func NewGenerateSetupUseCase(
	setupRepo setup.Repository,
	correctionRepo setup.CorrectionRepository,
	locationRepo location.Repository,
	instrumentRepo instrument.Repository,
	quotaGate QuotaGate,
	generator Generator,
	settings Settings,
	logger logger.Interface,
) *GenerateSetupUseCase {
	return &GenerateSetupUseCase{
		setupRepo:    setupRepo,
		locationRepo: locationRepo,
		quotaGate:    quotaGate,
		generator:    generator,
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

func (uc *GenerateSetupUseCase) Execute(ctx context.Context, cmd GenerateSetupCommand) (*dto.SetupDTO, error) {
	if _, err := setup.BuildFingerprint(cmd.LocationID, cmd.Performers); err != nil {
		return nil, asValidation(err)
	}

	loc, err := uc.locationRepo.GetByID(ctx, cmd.LocationID)
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

	req, err := uc.context.build(ctx, cmd.Actor.UserID, loc, cmd.Performers, "")
	if err != nil {
		uc.logger.Errorw("failed to build generation context", "error", err, "location_id", loc.ID())
		return nil, err
	}

	started := time.Now()
	config, err := uc.generator.Generate(ctx, req)
	if err != nil {
		uc.logger.Errorw("setup generation failed",
			"error", err,
			"user_id", cmd.Actor.UserID,
			"location_id", loc.ID(),
			"duration_ms", time.Since(started).Milliseconds())
		return nil, errors.NewGenerationFailedError("setup generation failed, please try again", err.Error())
	}

	created, err := setup.NewSetup(cmd.Actor.UserID, loc.ID(), cmd.EventName, cmd.EventDate, cmd.Performers, config)
	if err != nil {
		return nil, asValidation(err)
	}
	if err := uc.setupRepo.Create(ctx, created); err != nil {
		uc.logger.Errorw("failed to save generated setup", "error", err, "user_id", cmd.Actor.UserID)
		return nil, fmt.Errorf("failed to save generated setup: %w", err)
	}

	uc.logger.Infow("setup generated",
		"setup_id", created.ID(),
		"user_id", cmd.Actor.UserID,
		"location_id", loc.ID(),
		"past_setups", len(req.PastSetups),
		"corrections", len(req.PriorCorrections),
		"generations_used", decision.Used,
		"duration_ms", time.Since(started).Milliseconds())

	return dto.ToSetupDTO(created, cmd.Actor.UserID), nil
}
