package ratelimit

import (
	"context"
	"time"
)

// Policy bounds one caller per sliding window; zero disables a window.
type Policy struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

func (p Policy) Enabled() bool {
	return p.RequestsPerMinute > 0 || p.RequestsPerHour > 0 || p.RequestsPerDay > 0
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (bool, error)
	GetUsed(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
