package usecases

import (
	"context"
	"time"

	"github.com/hsaberwal/serunner/internal/domain/subscription"
)

type mockQuotaRepository struct {
	TryConsumeFunc     func(ctx context.Context, userID string, kind subscription.Kind, now time.Time) (bool, error)
	CreateIfAbsentFunc func(ctx context.Context, q *subscription.Quota) error
	FindByUserIDFunc   func(ctx context.Context, userID string) (*subscription.Quota, error)
	UpdateFunc         func(ctx context.Context, q *subscription.Quota) error
}

func (m *mockQuotaRepository) TryConsume(ctx context.Context, userID string, kind subscription.Kind, now time.Time) (bool, error) {
	if m.TryConsumeFunc != nil {
		return m.TryConsumeFunc(ctx, userID, kind, now)
	}
	return false, nil
}

func (m *mockQuotaRepository) CreateIfAbsent(ctx context.Context, q *subscription.Quota) error {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, q)
	}
	return nil
}

func (m *mockQuotaRepository) FindByUserID(ctx context.Context, userID string) (*subscription.Quota, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockQuotaRepository) Update(ctx context.Context, q *subscription.Quota) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, q)
	}
	return nil
}

type txCtxKey struct{}

// markingTransactor tags the context it hands to fn so tests can tell which
// repository calls ran inside the transaction.
type markingTransactor struct{ calls int }

func (t *markingTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(context.WithValue(ctx, txCtxKey{}, t.calls))
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(int)
	return ok
}

var testNow = time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func storedQuota(plan subscription.Plan, status subscription.Status, periodStart time.Time, genUsed, genLimit, learnUsed, learnLimit int) *subscription.Quota {
	return subscription.ReconstructQuota("q-1", "user-1", plan, status, periodStart,
		genUsed, genLimit, learnUsed, learnLimit, periodStart, periodStart)
}
