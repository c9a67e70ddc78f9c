package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/mappers"
	"github.com/hsaberwal/serunner/internal/infrastructure/persistence/models"
	"github.com/hsaberwal/serunner/internal/shared/biztime"
	"github.com/hsaberwal/serunner/internal/shared/db"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// quotaColumns maps a kind to its (used, limit, other used) columns. Only
// these identifiers are ever interpolated into SQL.
var quotaColumns = map[subscription.Kind]struct{ used, limit, other string }{
	subscription.KindGeneration: {"generations_used", "generation_limit", "learning_used"},
	subscription.KindLearning:   {"learning_used", "learning_limit", "generations_used"},
}

type SubscriptionQuotaRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionQuotaMapper
	logger logger.Interface
}

func NewSubscriptionQuotaRepository(db *gorm.DB, logger logger.Interface) *SubscriptionQuotaRepository {
	return &SubscriptionQuotaRepository{
		db:     db,
		mapper: mappers.NewSubscriptionQuotaMapper(),
		logger: logger,
	}
}

// TryConsume increments the counter for kind in a single UPDATE guarded by
// the limit. A stale period resets both counters and advances period_start
// in the same statement. period_start is assigned last because MySQL
// evaluates SET clauses left to right against already-updated values.
func (r *SubscriptionQuotaRepository) TryConsume(ctx context.Context, userID string, kind subscription.Kind, now time.Time) (bool, error) {
	cols, ok := quotaColumns[kind]
	if !ok {
		return false, fmt.Errorf("unknown quota kind %q", kind)
	}

	periodStart := biztime.BillingPeriodStart(now).UnixMilli()
	sql := fmt.Sprintf(`UPDATE subscription_quotas SET
		%[1]s = CASE WHEN period_start < ? THEN 1 ELSE %[1]s + 1 END,
		%[3]s = CASE WHEN period_start < ? THEN 0 ELSE %[3]s END,
		updated_at = ?,
		period_start = CASE WHEN period_start < ? THEN ? ELSE period_start END
	WHERE user_id = ?
		AND (%[2]s < 0 OR (status IN (?, ?)
			AND (CASE WHEN period_start < ? THEN 0 ELSE %[1]s END) < %[2]s))`,
		cols.used, cols.limit, cols.other)

	result := db.GetTxFromContext(ctx, r.db).Exec(sql,
		periodStart,
		periodStart,
		now.UTC().UnixMilli(),
		periodStart, periodStart,
		userID,
		string(subscription.StatusActive), string(subscription.StatusTrialing),
		periodStart,
	)
	if result.Error != nil {
		return false, fmt.Errorf("failed to consume %s quota: %w", kind, result.Error)
	}
	return result.RowsAffected == 1, nil
}

// CreateIfAbsent inserts the quota, doing nothing if the user already has one.
func (r *SubscriptionQuotaRepository) CreateIfAbsent(ctx context.Context, q *subscription.Quota) error {
	model := r.mapper.ToModel(q)
	result := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create quota: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Debugw("quota already exists", "user_id", q.UserID())
	}
	return nil
}

func (r *SubscriptionQuotaRepository) FindByUserID(ctx context.Context, userID string) (*subscription.Quota, error) {
	var model models.SubscriptionQuotaModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find quota: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SubscriptionQuotaRepository) Update(ctx context.Context, q *subscription.Quota) error {
	model := r.mapper.ToModel(q)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionQuotaModel{}).
		Where("user_id = ?", model.UserID).
		Select("plan", "status", "period_start", "generations_used", "generation_limit",
			"learning_used", "learning_limit", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update quota: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("quota not found")
	}
	return nil
}
