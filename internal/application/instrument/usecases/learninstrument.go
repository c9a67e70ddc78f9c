package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/hsaberwal/serunner/internal/application/instrument/dto"
	subdto "github.com/hsaberwal/serunner/internal/application/subscription/dto"
	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type LearnInstrumentCommand struct {
	UserID   string
	Role     string
	Name     string
	Category string
	Notes    string
}

// LearnInstrumentUseCase charges the learning quota and stores what the
// generator knows about an instrument. Learning the same name again
// replaces the earlier profile.
type LearnInstrumentUseCase struct {
	repo      instrument.Repository
	quotaGate QuotaGate
	learner   Learner
	sanitizer TextSanitizer
	logger    logger.Interface
}

func NewLearnInstrumentUseCase(
	repo instrument.Repository,
	quotaGate QuotaGate,
	learner Learner,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *LearnInstrumentUseCase {
	return &LearnInstrumentUseCase{
		repo:      repo,
		quotaGate: quotaGate,
		learner:   learner,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *LearnInstrumentUseCase) Execute(ctx context.Context, cmd LearnInstrumentCommand) (*dto.InstrumentDTO, error) {
	profile, err := instrument.NewProfile(
		cmd.UserID,
		uc.sanitizer.PlainText(cmd.Name),
		instrument.Category(cmd.Category),
		uc.sanitizer.PlainText(cmd.Notes),
	)
	if err != nil {
		if stderrors.Is(err, instrument.ErrNameRequired) ||
			stderrors.Is(err, instrument.ErrNameTooLong) ||
			stderrors.Is(err, instrument.ErrInvalidCategory) {
			return nil, errors.NewValidationError(err.Error())
		}
		return nil, err
	}
	if profile.ValueKey() == "" {
		return nil, errors.NewValidationError("instrument name must contain letters or digits")
	}

	decision, err := uc.quotaGate.TryConsume(ctx, cmd.UserID, cmd.Role, subscription.KindLearning)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		appErr := errors.NewUsageLimitError(fmt.Sprintf("monthly instrument learning limit reached for the %s plan", decision.Plan))
		if decision.Reason == subscription.ReasonSubscriptionInactive {
			appErr = errors.NewUsageLimitError("subscription is not active")
		}
		for k, v := range subdto.DecisionMeta(decision) {
			appErr = appErr.WithMeta(k, v)
		}
		return nil, appErr
	}

	learned, err := uc.learner.LearnInstrument(ctx, profile.Name(), profile.Category(), profile.UserNotes())
	if err != nil {
		uc.logger.Errorw("instrument learning failed", "error", err, "user_id", cmd.UserID, "name", profile.Name())
		return nil, errors.NewGenerationFailedError("instrument learning failed, please try again", err.Error())
	}
	profile.ApplyLearned(learned)

	if err := uc.repo.Save(ctx, profile); err != nil {
		uc.logger.Errorw("failed to save instrument", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to save instrument: %w", err)
	}

	uc.logger.Infow("instrument learned",
		"user_id", cmd.UserID,
		"value", profile.ValueKey(),
		"learning_used", decision.Used)

	return dto.ToInstrumentDTO(profile), nil
}
