package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/subscription/dto"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/errors"
)

var domainValidationErrors = []error{
	setup.ErrEmptyLineup,
	setup.ErrInvalidCount,
	setup.ErrLocationRequired,
	setup.ErrOwnerRequired,
	setup.ErrEventNameTooLong,
	setup.ErrInvalidRating,
	setup.ErrChannelRequired,
	setup.ErrChannelTooLong,
}

// asValidation converts domain rule violations into validation errors and
// passes anything else through.
func asValidation(err error) error {
	for _, target := range domainValidationErrors {
		if stderrors.Is(err, target) {
			return errors.NewValidationError(err.Error())
		}
	}
	return err
}

// loadAuthorized fetches a setup and checks the actor may perform action on it.
func loadAuthorized(
	ctx context.Context,
	repo setup.Repository,
	policy setup.AccessPolicy,
	actor setup.Actor,
	setupID string,
	action setup.Action,
) (*setup.Setup, error) {
	s, err := repo.GetByID(ctx, setupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get setup: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("setup not found")
	}
	allowed, err := policy.Can(ctx, actor, s, action)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.NewForbiddenError(fmt.Sprintf("no %s access to this setup", action))
	}
	return s, nil
}

// loadCorrections attaches the setup's ledger entries to its loaded view.
func loadCorrections(ctx context.Context, repo setup.CorrectionRepository, s *setup.Setup) error {
	corrections, err := repo.ListBySetup(ctx, s.ID())
	if err != nil {
		return fmt.Errorf("failed to list corrections: %w", err)
	}
	for _, c := range corrections {
		s.PutCorrection(c.Channel, c.Entry)
	}
	return nil
}

func usageLimitError(d *subscription.Decision) error {
	msg := fmt.Sprintf("monthly %s limit reached for the %s plan", d.Kind, d.Plan)
	if d.Reason == subscription.ReasonSubscriptionInactive {
		msg = "subscription is not active"
	}
	appErr := errors.NewUsageLimitError(msg)
	for k, v := range dto.DecisionMeta(d) {
		appErr = appErr.WithMeta(k, v)
	}
	return appErr
}
