package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

var mayStart = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

func newGate(repo subscription.QuotaRepository) *QuotaGate {
	g := NewQuotaGate(repo, subscription.DefaultCatalog(), &markingTransactor{}, logger.NewNopLogger())
	g.now = fixedClock
	return g
}

func TestQuotaGate_Allowed(t *testing.T) {
	repo := &mockQuotaRepository{
		TryConsumeFunc: func(ctx context.Context, userID string, kind subscription.Kind, now time.Time) (bool, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, subscription.KindGeneration, kind)
			assert.Equal(t, testNow, now)
			return true, nil
		},
		FindByUserIDFunc: func(ctx context.Context, userID string) (*subscription.Quota, error) {
			return storedQuota(subscription.PlanFree, subscription.StatusActive, mayStart, 2, 2, 0, 3), nil
		},
	}

	d, err := newGate(repo).TryConsume(context.Background(), "user-1", "user", subscription.KindGeneration)

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Used)
	assert.Equal(t, 2, d.Limit)
	assert.Equal(t, subscription.PlanFree, d.Plan)
}

func TestQuotaGate_AllowedReadsCounterInConsumeTransaction(t *testing.T) {
	tx := &markingTransactor{}
	var consumeTx, readTx interface{}
	repo := &mockQuotaRepository{
		TryConsumeFunc: func(ctx context.Context, userID string, kind subscription.Kind, now time.Time) (bool, error) {
			require.True(t, inTx(ctx), "consume ran outside the transaction")
			consumeTx = ctx.Value(txCtxKey{})
			return true, nil
		},
		FindByUserIDFunc: func(ctx context.Context, userID string) (*subscription.Quota, error) {
			require.True(t, inTx(ctx), "counter read ran outside the transaction")
			readTx = ctx.Value(txCtxKey{})
			return storedQuota(subscription.PlanBasic, subscription.StatusActive, mayStart, 7, 15, 0, 20), nil
		},
	}
	g := NewQuotaGate(repo, subscription.DefaultCatalog(), tx, logger.NewNopLogger())
	g.now = fixedClock

	d, err := g.TryConsume(context.Background(), "user-1", "user", subscription.KindGeneration)

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 7, d.Used)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, consumeTx, readTx)
}

func TestQuotaGate_TransactionErrorPropagates(t *testing.T) {
	boom := errors.New("deadlock")
	repo := &mockQuotaRepository{
		TryConsumeFunc: func(context.Context, string, subscription.Kind, time.Time) (bool, error) { return true, nil },
		FindByUserIDFunc: func(context.Context, string) (*subscription.Quota, error) { return nil, boom },
	}

	_, err := newGate(repo).TryConsume(context.Background(), "user-1", "user", subscription.KindGeneration)
	assert.ErrorIs(t, err, boom)
}

func TestQuotaGate_DeniedAtLimit(t *testing.T) {
	repo := &mockQuotaRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*subscription.Quota, error) {
			return storedQuota(subscription.PlanFree, subscription.StatusActive, mayStart, 2, 2, 0, 3), nil
		},
	}

	d, err := newGate(repo).TryConsume(context.Background(), "user-1", "user", subscription.KindGeneration)

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, subscription.ReasonLimitReached, d.Reason)
	assert.Equal(t, 2, d.Used)
	assert.Equal(t, 2, d.Limit)
	assert.Equal(t, subscription.KindGeneration, d.Kind)
}

func TestQuotaGate_DeniedWhenInactive(t *testing.T) {
	repo := &mockQuotaRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*subscription.Quota, error) {
			return storedQuota(subscription.PlanBasic, subscription.StatusCanceled, mayStart, 0, 15, 0, 20), nil
		},
	}

	d, err := newGate(repo).TryConsume(context.Background(), "user-1", "user", subscription.KindLearning)

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, subscription.ReasonSubscriptionInactive, d.Reason)
}

func TestQuotaGate_RaceReportedAsLimitReached(t *testing.T) {
	// The update was refused but the re-read row looks consumable.
	repo := &mockQuotaRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*subscription.Quota, error) {
			return storedQuota(subscription.PlanFree, subscription.StatusActive, mayStart, 1, 2, 0, 3), nil
		},
	}

	d, err := newGate(repo).TryConsume(context.Background(), "user-1", "user", subscription.KindGeneration)

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, subscription.ReasonLimitReached, d.Reason)
}

func TestQuotaGate_ProvisionsDefaultPlan(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantPlan subscription.Plan
		wantGen  int
	}{
		{"regular user gets free", "user", subscription.PlanFree, 2},
		{"admin gets unlimited", "admin", subscription.PlanAdmin, subscription.Unlimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *subscription.Quota
			consumes := 0
			repo := &mockQuotaRepository{
				TryConsumeFunc: func(ctx context.Context, userID string, kind subscription.Kind, now time.Time) (bool, error) {
					consumes++
					return created != nil, nil
				},
				FindByUserIDFunc: func(ctx context.Context, userID string) (*subscription.Quota, error) {
					if created == nil {
						return nil, nil
					}
					return storedQuota(created.Plan(), created.Status(), created.PeriodStart(),
						1, created.GenerationLimit(), 0, created.LearningLimit()), nil
				},
				CreateIfAbsentFunc: func(ctx context.Context, q *subscription.Quota) error {
					created = q
					return nil
				},
			}

			d, err := newGate(repo).TryConsume(context.Background(), "user-1", tt.role, subscription.KindGeneration)

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tt.wantPlan, created.Plan())
			assert.Equal(t, tt.wantGen, created.GenerationLimit())
			assert.Equal(t, mayStart, created.PeriodStart())
			assert.Equal(t, 2, consumes)
			assert.True(t, d.Allowed)
			assert.Equal(t, 1, d.Used)
		})
	}
}

func TestQuotaGate_MissingAfterProvisioning(t *testing.T) {
	repo := &mockQuotaRepository{}

	_, err := newGate(repo).TryConsume(context.Background(), "user-1", "user", subscription.KindGeneration)
	assert.Error(t, err)
}

func TestQuotaGate_RepositoryErrors(t *testing.T) {
	boom := errors.New("db down")

	_, err := newGate(&mockQuotaRepository{
		TryConsumeFunc: func(context.Context, string, subscription.Kind, time.Time) (bool, error) { return false, boom },
	}).TryConsume(context.Background(), "user-1", "user", subscription.KindGeneration)
	assert.ErrorIs(t, err, boom)

	_, err = newGate(&mockQuotaRepository{
		FindByUserIDFunc: func(context.Context, string) (*subscription.Quota, error) { return nil, boom },
	}).TryConsume(context.Background(), "user-1", "user", subscription.KindGeneration)
	assert.ErrorIs(t, err, boom)
}

func TestQuotaGate_RejectsUnknownKind(t *testing.T) {
	_, err := newGate(&mockQuotaRepository{}).TryConsume(context.Background(), "user-1", "user", subscription.Kind("uploads"))
	assert.Error(t, err)
}
