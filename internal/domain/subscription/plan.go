package subscription

import "github.com/hsaberwal/serunner/internal/shared/authorization"

// Unlimited marks a plan allowance with no ceiling.
const Unlimited = -1

type Plan string

const (
	PlanFree  Plan = "free"
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
	PlanAdmin Plan = "admin"
)

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPro, PlanAdmin:
		return true
	}
	return false
}

// DefaultPlanFor is the plan given to a user with no quota row yet.
func DefaultPlanFor(role string) Plan {
	if authorization.ParseUserRole(role).IsAdmin() {
		return PlanAdmin
	}
	return PlanFree
}

// Kind is the metered resource a call consumes.
type Kind string

const (
	KindGeneration Kind = "generation"
	KindLearning   Kind = "learning"
)

func (k Kind) IsValid() bool {
	return k == KindGeneration || k == KindLearning
}

type Status string

const (
	StatusActive   Status = "active"
	StatusTrialing Status = "trialing"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusTrialing, StatusPastDue, StatusCanceled:
		return true
	}
	return false
}

// IsEntitled reports whether metered plans may consume under this status.
func (s Status) IsEntitled() bool {
	return s == StatusActive || s == StatusTrialing
}

// Limits is the monthly allowance of one plan.
type Limits struct {
	Generations int
	Learning    int
}

func (l Limits) For(kind Kind) int {
	if kind == KindLearning {
		return l.Learning
	}
	return l.Generations
}

// Catalog maps plans to their limits.
type Catalog map[Plan]Limits

// DefaultCatalog mirrors the built-in plan table.
func DefaultCatalog() Catalog {
	return Catalog{
		PlanFree:  {Generations: 2, Learning: 3},
		PlanBasic: {Generations: 15, Learning: 20},
		PlanPro:   {Generations: Unlimited, Learning: Unlimited},
		PlanAdmin: {Generations: Unlimited, Learning: Unlimited},
	}
}

// LimitsFor falls back to the free plan for unknown plans.
func (c Catalog) LimitsFor(p Plan) Limits {
	if l, ok := c[p]; ok {
		return l
	}
	if l, ok := c[PlanFree]; ok {
		return l
	}
	return DefaultCatalog()[PlanFree]
}
