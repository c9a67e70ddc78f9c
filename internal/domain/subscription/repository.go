package subscription

import (
	"context"
	"time"
)

// QuotaRepository persists quotas. FindByUserID returns (nil, nil) when missing.
type QuotaRepository interface {
	// TryConsume increments the kind's counter in one conditional statement,
	// rolling the period over first when stale. It reports whether a row
	// was updated.
	TryConsume(ctx context.Context, userID string, kind Kind, now time.Time) (bool, error)
	// CreateIfAbsent inserts q unless the user already has a quota row.
	CreateIfAbsent(ctx context.Context, q *Quota) error
	FindByUserID(ctx context.Context, userID string) (*Quota, error)
	Update(ctx context.Context, q *Quota) error
}
