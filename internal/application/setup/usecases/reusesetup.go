package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type ReuseSetupCommand struct {
	Actor          setup.Actor
	MatchedSetupID string
	LocationID     string
	EventName      string
	EventDate      *time.Time
	Performers     []setup.PerformerSlot
}

// ReuseSetupUseCase copies a matched setup's configuration into a new event
// owned by the requester. It consumes no quota and never calls the generator.
type ReuseSetupUseCase struct {
	setupRepo    setup.Repository
	locationRepo location.Repository
	policy       setup.AccessPolicy
	logger       logger.Interface
}

func NewReuseSetupUseCase(
	setupRepo setup.Repository,
	locationRepo location.Repository,
	policy setup.AccessPolicy,
	logger logger.Interface,
) *ReuseSetupUseCase {
	return &ReuseSetupUseCase{
		setupRepo:    setupRepo,
		locationRepo: locationRepo,
		policy:       policy,
		logger:       logger,
	}
}

func (uc *ReuseSetupUseCase) Execute(ctx context.Context, cmd ReuseSetupCommand) (*dto.SetupDTO, error) {
	if _, err := setup.BuildFingerprint(cmd.LocationID, cmd.Performers); err != nil {
		return nil, asValidation(err)
	}

	source, err := uc.setupRepo.GetByID(ctx, cmd.MatchedSetupID)
	if err != nil {
		uc.logger.Errorw("failed to get matched setup", "error", err, "setup_id", cmd.MatchedSetupID)
		return nil, fmt.Errorf("failed to get matched setup: %w", err)
	}
	if source == nil {
		uc.logger.Infow("reuse of vanished setup", "setup_id", cmd.MatchedSetupID, "user_id", cmd.Actor.UserID)
		return nil, errors.NewStaleMatchError("the matched setup no longer exists; run the match check again or generate a new setup")
	}

	allowed, err := uc.policy.Can(ctx, cmd.Actor, source, setup.ActionRead)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError("no read access to the matched setup")
	}

	loc, err := uc.locationRepo.GetByID(ctx, cmd.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if loc == nil {
		return nil, errors.NewNotFoundError("location not found")
	}

	reused, err := setup.NewReusedSetup(source, cmd.Actor.UserID, loc.ID(), cmd.EventName, cmd.EventDate, cmd.Performers)
	if err != nil {
		return nil, asValidation(err)
	}

	if err := uc.setupRepo.Create(ctx, reused); err != nil {
		uc.logger.Errorw("failed to save reused setup", "error", err, "source_id", source.ID())
		return nil, fmt.Errorf("failed to save reused setup: %w", err)
	}

	uc.logger.Infow("setup reused",
		"setup_id", reused.ID(),
		"source_id", source.ID(),
		"user_id", cmd.Actor.UserID,
		"location_id", loc.ID())

	return dto.ToSetupDTO(reused, cmd.Actor.UserID), nil
}
