package usecases

import (
	"context"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
)

// Learner researches an instrument with the generator.
type Learner interface {
	LearnInstrument(ctx context.Context, name string, category instrument.Category, notes string) (instrument.Learned, error)
}

type QuotaGate interface {
	TryConsume(ctx context.Context, userID, role string, kind subscription.Kind) (*subscription.Decision, error)
}

type TextSanitizer interface {
	PlainText(input string) string
}
