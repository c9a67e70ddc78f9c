package dto

import (
	"time"

	"github.com/hsaberwal/serunner/internal/domain/subscription"
)

// UsageDTO reports a user's metered usage for the current billing month.
// Limits render as "unlimited" for unmetered plans.
type UsageDTO struct {
	Plan            string      `json:"plan"`
	Status          string      `json:"status"`
	GenerationsUsed int         `json:"generations_used"`
	GenerationLimit interface{} `json:"generation_limit"`
	LearningUsed    int         `json:"learning_used"`
	LearningLimit   interface{} `json:"learning_limit"`
	PeriodStart     time.Time   `json:"period_start"`
	PeriodEnd       time.Time   `json:"period_end"`
}

// LimitValue renders a limit for clients.
func LimitValue(limit int) interface{} {
	if limit == subscription.Unlimited {
		return "unlimited"
	}
	return limit
}

// DecisionMeta is the meta block of a usage_limit_reached response.
func DecisionMeta(d *subscription.Decision) map[string]interface{} {
	return map[string]interface{}{
		"plan":   string(d.Plan),
		"used":   d.Used,
		"limit":  LimitValue(d.Limit),
		"kind":   string(d.Kind),
		"reason": string(d.Reason),
	}
}
