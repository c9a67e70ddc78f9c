package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
	"github.com/hsaberwal/serunner/internal/shared/db"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// QuotaGate meters generation and learning calls. Reuse never passes
// through it.
type QuotaGate struct {
	quotaRepo subscription.QuotaRepository
	catalog   subscription.Catalog
	txMgr     db.Transactor
	logger    logger.Interface
	now       func() time.Time
}

func NewQuotaGate(
	quotaRepo subscription.QuotaRepository,
	catalog subscription.Catalog,
	txMgr db.Transactor,
	logger logger.Interface,
) *QuotaGate {
	return &QuotaGate{
		quotaRepo: quotaRepo,
		catalog:   catalog,
		txMgr:     txMgr,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// TryConsume charges one unit of kind to the user. The increment is a single
// conditional update, so concurrent callers can never push a counter past
// its limit. A user without a quota row gets one on the default plan for
// their role.
func (g *QuotaGate) TryConsume(ctx context.Context, userID, role string, kind subscription.Kind) (*subscription.Decision, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown quota kind %q", kind)
	}
	now := g.now()

	for attempt := 0; ; attempt++ {
		q, ok, err := g.consume(ctx, userID, kind, now)
		if err != nil {
			return nil, err
		}
		if ok {
			return &subscription.Decision{
				Allowed: true,
				Kind:    kind,
				Plan:    q.Plan(),
				Used:    q.EffectiveUsed(kind, now),
				Limit:   q.Limit(kind),
			}, nil
		}
		if q != nil {
			return g.deny(q, userID, kind, now), nil
		}
		if attempt > 0 {
			return nil, fmt.Errorf("quota for user %s missing after provisioning", userID)
		}
		if err := g.provision(ctx, userID, role, now); err != nil {
			return nil, err
		}
	}
}

// consume runs the conditional update and reads the row back in one
// transaction. The update keeps the row locked until commit, so an allowed
// read shows this caller's increment and no other.
func (g *QuotaGate) consume(ctx context.Context, userID string, kind subscription.Kind, now time.Time) (*subscription.Quota, bool, error) {
	var (
		q  *subscription.Quota
		ok bool
	)
	err := g.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		ok, err = g.quotaRepo.TryConsume(txCtx, userID, kind, now)
		if err != nil {
			g.logger.Errorw("failed to consume quota", "error", err, "user_id", userID, "kind", kind)
			return err
		}
		q, err = g.quotaRepo.FindByUserID(txCtx, userID)
		if err != nil {
			g.logger.Errorw("failed to load quota", "error", err, "user_id", userID)
			return err
		}
		if ok && q == nil {
			return fmt.Errorf("quota for user %s disappeared after consume", userID)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return q, ok, nil
}

func (g *QuotaGate) deny(q *subscription.Quota, userID string, kind subscription.Kind, now time.Time) *subscription.Decision {
	d := q.Evaluate(kind, now)
	if d.Allowed {
		// The row changed between the update and the read; report the
		// denial the update saw.
		d.Allowed, d.Reason = false, subscription.ReasonLimitReached
	}
	g.logger.Infow("quota denied",
		"user_id", userID,
		"kind", kind,
		"plan", d.Plan,
		"used", d.Used,
		"limit", d.Limit,
		"reason", d.Reason)
	return &d
}

func (g *QuotaGate) provision(ctx context.Context, userID, role string, now time.Time) error {
	plan := subscription.DefaultPlanFor(role)
	q, err := subscription.NewQuota(userID, plan, g.catalog.LimitsFor(plan), now)
	if err != nil {
		return err
	}
	if err := g.quotaRepo.CreateIfAbsent(ctx, q); err != nil {
		g.logger.Errorw("failed to provision quota", "error", err, "user_id", userID)
		return fmt.Errorf("failed to provision quota: %w", err)
	}
	g.logger.Infow("quota provisioned", "user_id", userID, "plan", plan)
	return nil
}
