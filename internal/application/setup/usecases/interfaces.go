package usecases

import (
	"context"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
)

// Generator produces a mixer configuration. Calls are slow and are not
// retried here.
type Generator interface {
	Generate(ctx context.Context, req setup.GenerationRequest) (setup.GeneratedConfig, error)
}

// QuotaGate charges metered calls.
type QuotaGate interface {
	TryConsume(ctx context.Context, userID, role string, kind subscription.Kind) (*subscription.Decision, error)
}

// TextSanitizer reduces user-supplied text to plain text.
type TextSanitizer interface {
	PlainText(input string) string
}

// Settings bounds the candidate and context queries.
type Settings struct {
	LookbackLimit        int
	LearningContextLimit int
	PastSetupsLimit      int
	PastSetupMinRating   int
}

func DefaultSettings() Settings {
	return Settings{
		LookbackLimit:        50,
		LearningContextLimit: 10,
		PastSetupsLimit:      3,
		PastSetupMinRating:   4,
	}
}

func (s Settings) normalized() Settings {
	d := DefaultSettings()
	if s.LookbackLimit <= 0 {
		s.LookbackLimit = d.LookbackLimit
	}
	if s.LearningContextLimit <= 0 {
		s.LearningContextLimit = d.LearningContextLimit
	}
	if s.PastSetupsLimit < 0 {
		s.PastSetupsLimit = d.PastSetupsLimit
	}
	if s.PastSetupMinRating < 1 || s.PastSetupMinRating > 5 {
		s.PastSetupMinRating = d.PastSetupMinRating
	}
	return s
}
