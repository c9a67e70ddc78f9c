package usecases

import (
	"context"
	"time"

	"github.com/hsaberwal/serunner/internal/application/subscription/dto"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type GetUsageQuery struct {
	UserID string
	Role   string
}

type GetUsageUseCase struct {
	quotaRepo subscription.QuotaRepository
	catalog   subscription.Catalog
	logger    logger.Interface
	now       func() time.Time
}

func NewGetUsageUseCase(
	quotaRepo subscription.QuotaRepository,
	catalog subscription.Catalog,
	logger logger.Interface,
) *GetUsageUseCase {
	return &GetUsageUseCase{
		quotaRepo: quotaRepo,
		catalog:   catalog,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// Execute reports usage as of now. A user who never consumed anything sees
// the default plan with zero usage; no row is created.
func (uc *GetUsageUseCase) Execute(ctx context.Context, query GetUsageQuery) (*dto.UsageDTO, error) {
	now := uc.now()

	q, err := uc.quotaRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load quota", "error", err, "user_id", query.UserID)
		return nil, err
	}
	if q == nil {
		plan := subscription.DefaultPlanFor(query.Role)
		q, err = subscription.NewQuota(query.UserID, plan, uc.catalog.LimitsFor(plan), now)
		if err != nil {
			return nil, err
		}
	}

	periodStart := q.EffectivePeriodStart(now)
	return &dto.UsageDTO{
		Plan:            string(q.Plan()),
		Status:          string(q.Status()),
		GenerationsUsed: q.EffectiveUsed(subscription.KindGeneration, now),
		GenerationLimit: dto.LimitValue(q.GenerationLimit()),
		LearningUsed:    q.EffectiveUsed(subscription.KindLearning, now),
		LearningLimit:   dto.LimitValue(q.LearningLimit()),
		PeriodStart:     periodStart,
		PeriodEnd:       biztime.BillingPeriodEnd(periodStart),
	}, nil
}
