package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hsaberwal/serunner/internal/shared/biztime"
)

var (
	ErrInvalidPlan   = errors.New("invalid subscription plan")
	ErrInvalidStatus = errors.New("invalid subscription status")
	ErrUserRequired  = errors.New("user ID is required")
)

// Quota is a user's monthly usage counters and limits.
type Quota struct {
	id              string
	userID          string
	plan            Plan
	status          Status
	periodStart     time.Time
	generationsUsed int
	generationLimit int
	learningUsed    int
	learningLimit   int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewQuota starts a fresh active quota in the billing period containing now.
func NewQuota(userID string, plan Plan, limits Limits, now time.Time) (*Quota, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	if !plan.IsValid() {
		return nil, ErrInvalidPlan
	}
	now = now.UTC()
	return &Quota{
		id:              uuid.NewString(),
		userID:          userID,
		plan:            plan,
		status:          StatusActive,
		periodStart:     biztime.BillingPeriodStart(now),
		generationLimit: limits.Generations,
		learningLimit:   limits.Learning,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructQuota(
	id, userID string,
	plan Plan,
	status Status,
	periodStart time.Time,
	generationsUsed, generationLimit int,
	learningUsed, learningLimit int,
	createdAt, updatedAt time.Time,
) *Quota {
	return &Quota{
		id:              id,
		userID:          userID,
		plan:            plan,
		status:          status,
		periodStart:     periodStart,
		generationsUsed: generationsUsed,
		generationLimit: generationLimit,
		learningUsed:    learningUsed,
		learningLimit:   learningLimit,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (q *Quota) ID() string { return q.id }
func (q *Quota) UserID() string { return q.userID }
func (q *Quota) Plan() Plan { return q.plan }
func (q *Quota) Status() Status { return q.status }
func (q *Quota) PeriodStart() time.Time { return q.periodStart }
func (q *Quota) GenerationsUsed() int { return q.generationsUsed }
func (q *Quota) GenerationLimit() int { return q.generationLimit }
func (q *Quota) LearningUsed() int { return q.learningUsed }
func (q *Quota) LearningLimit() int { return q.learningLimit }
func (q *Quota) CreatedAt() time.Time { return q.createdAt }
func (q *Quota) UpdatedAt() time.Time { return q.updatedAt }

// IsStale reports whether the stored period ended before the period containing now.
func (q *Quota) IsStale(now time.Time) bool {
	return q.periodStart.Before(biztime.BillingPeriodStart(now))
}

// EffectiveUsed is the counter as the next consume would see it: zero once
// the stored period has rolled over.
func (q *Quota) EffectiveUsed(kind Kind, now time.Time) int {
	if q.IsStale(now) {
		return 0
	}
	if kind == KindLearning {
		return q.learningUsed
	}
	return q.generationsUsed
}

func (q *Quota) Limit(kind Kind) int {
	if kind == KindLearning {
		return q.learningLimit
	}
	return q.generationLimit
}

// EffectivePeriodStart is the start of the period the counters apply to at now.
func (q *Quota) EffectivePeriodStart(now time.Time) time.Time {
	if q.IsStale(now) {
		return biztime.BillingPeriodStart(now)
	}
	return q.periodStart
}

// Evaluate explains why a consume at now would be denied. It mirrors the
// conditional update in the repository and is only used to build the
// response after the update affected no rows.
func (q *Quota) Evaluate(kind Kind, now time.Time) Decision {
	d := Decision{
		Allowed: true,
		Kind:    kind,
		Plan:    q.plan,
		Used:    q.EffectiveUsed(kind, now),
		Limit:   q.Limit(kind),
	}
	switch {
	case d.Limit == Unlimited:
	case !q.status.IsEntitled():
		d.Allowed, d.Reason = false, ReasonSubscriptionInactive
	case d.Used >= d.Limit:
		d.Allowed, d.Reason = false, ReasonLimitReached
	}
	return d
}

// ChangePlan applies a billing event: new plan, status and limits with
// counters reset for the current period.
func (q *Quota) ChangePlan(plan Plan, status Status, limits Limits, now time.Time) error {
	if !plan.IsValid() {
		return ErrInvalidPlan
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	now = now.UTC()
	q.plan = plan
	q.status = status
	q.generationLimit = limits.Generations
	q.learningLimit = limits.Learning
	q.generationsUsed = 0
	q.learningUsed = 0
	q.periodStart = biztime.BillingPeriodStart(now)
	q.updatedAt = now
	return nil
}
