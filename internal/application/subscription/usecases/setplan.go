package usecases

import (
	"context"
	"time"

	"github.com/hsaberwal/serunner/internal/application/subscription/dto"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type SetPlanCommand struct {
	UserID string
	Plan   string
	Status string
}

// SetPlanUseCase applies a billing change: new plan and status, limits from
// the catalog and counters reset for the current month.
type SetPlanUseCase struct {
	quotaRepo subscription.QuotaRepository
	catalog   subscription.Catalog
	logger    logger.Interface
	now       func() time.Time
}

func NewSetPlanUseCase(
	quotaRepo subscription.QuotaRepository,
	catalog subscription.Catalog,
	logger logger.Interface,
) *SetPlanUseCase {
	return &SetPlanUseCase{
		quotaRepo: quotaRepo,
		catalog:   catalog,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *SetPlanUseCase) Execute(ctx context.Context, cmd SetPlanCommand) (*dto.UsageDTO, error) {
	plan := subscription.Plan(cmd.Plan)
	if !plan.IsValid() {
		return nil, errors.NewValidationError("invalid plan", cmd.Plan)
	}
	status := subscription.Status(cmd.Status)
	if cmd.Status == "" {
		status = subscription.StatusActive
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid subscription status", cmd.Status)
	}
	now := uc.now()

	q, err := uc.quotaRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load quota", "error", err, "user_id", cmd.UserID)
		return nil, err
	}
	if q == nil {
		fresh, err := subscription.NewQuota(cmd.UserID, plan, uc.catalog.LimitsFor(plan), now)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.quotaRepo.CreateIfAbsent(ctx, fresh); err != nil {
			uc.logger.Errorw("failed to create quota", "error", err, "user_id", cmd.UserID)
			return nil, err
		}
		if q, err = uc.quotaRepo.FindByUserID(ctx, cmd.UserID); err != nil {
			return nil, err
		}
		if q == nil {
			return nil, errors.NewInternalError("quota missing after create")
		}
	}

	if err := q.ChangePlan(plan, status, uc.catalog.LimitsFor(plan), now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.quotaRepo.Update(ctx, q); err != nil {
		uc.logger.Errorw("failed to update quota", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("subscription plan changed",
		"user_id", cmd.UserID,
		"plan", plan,
		"status", status)

	periodStart := q.EffectivePeriodStart(now)
	return &dto.UsageDTO{
		Plan:            string(q.Plan()),
		Status:          string(q.Status()),
		GenerationsUsed: q.GenerationsUsed(),
		GenerationLimit: dto.LimitValue(q.GenerationLimit()),
		LearningUsed:    q.LearningUsed(),
		LearningLimit:   dto.LimitValue(q.LearningLimit()),
		PeriodStart:     periodStart,
		PeriodEnd:       biztime.BillingPeriodEnd(periodStart),
	}, nil
}
