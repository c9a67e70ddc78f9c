package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

func newSetPlan(repo subscription.QuotaRepository) *SetPlanUseCase {
	uc := NewSetPlanUseCase(repo, subscription.DefaultCatalog(), logger.NewNopLogger())
	uc.now = fixedClock
	return uc
}

func TestSetPlanUseCase_UpgradeResetsCounters(t *testing.T) {
	var updated *subscription.Quota
	repo := &mockQuotaRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*subscription.Quota, error) {
			return storedQuota(subscription.PlanFree, subscription.StatusActive, mayStart, 2, 2, 3, 3), nil
		},
		UpdateFunc: func(ctx context.Context, q *subscription.Quota) error {
			updated = q
			return nil
		},
	}

	usage, err := newSetPlan(repo).Execute(context.Background(), SetPlanCommand{UserID: "user-1", Plan: "basic"})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, subscription.PlanBasic, updated.Plan())
	assert.Equal(t, subscription.StatusActive, updated.Status())
	assert.Zero(t, updated.GenerationsUsed())
	assert.Equal(t, 15, updated.GenerationLimit())
	assert.Equal(t, "basic", usage.Plan)
	assert.Equal(t, 15, usage.GenerationLimit)
}

func TestSetPlanUseCase_CreatesMissingQuota(t *testing.T) {
	var stored *subscription.Quota
	repo := &mockQuotaRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*subscription.Quota, error) {
			return stored, nil
		},
		CreateIfAbsentFunc: func(ctx context.Context, q *subscription.Quota) error {
			stored = q
			return nil
		},
	}

	usage, err := newSetPlan(repo).Execute(context.Background(), SetPlanCommand{UserID: "user-1", Plan: "pro", Status: "trialing"})

	require.NoError(t, err)
	assert.Equal(t, "pro", usage.Plan)
	assert.Equal(t, "trialing", usage.Status)
	assert.Equal(t, "unlimited", usage.GenerationLimit)
}

func TestSetPlanUseCase_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  SetPlanCommand
	}{
		{"unknown plan", SetPlanCommand{UserID: "user-1", Plan: "enterprise"}},
		{"unknown status", SetPlanCommand{UserID: "user-1", Plan: "basic", Status: "paused"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newSetPlan(&mockQuotaRepository{}).Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
