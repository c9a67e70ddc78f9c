package setup

import (
	"fmt"
	"time"
)

// MatchRef identifies the winning candidate of a match check.
type MatchRef struct {
	SetupID   string
	EventName string
	EventDate *time.Time
	Rating    *int
	CreatedAt time.Time
}

// MatchResult is the outcome of a match check. It is never cached.
type MatchResult struct {
	HasMatch   bool
	Quality    MatchQuality
	Match      *MatchRef
	Suggestion string
}

// FindBestMatch classifies every candidate against the request lineup and
// keeps the best: higher tier, then higher rating (unrated lowest), then
// newer created_at, then lower ID.
func FindBestMatch(request Lineup, candidates []*Setup) MatchResult {
	var (
		best        *Setup
		bestQuality = MatchNone
	)
	for _, c := range candidates {
		q := Classify(request, c.Lineup())
		if q == MatchNone {
			continue
		}
		if best == nil || outranks(q, c, bestQuality, best) {
			best, bestQuality = c, q
		}
	}

	if best == nil {
		return MatchResult{Quality: MatchNone, Suggestion: suggestion(MatchNone, nil)}
	}

	ref := &MatchRef{
		SetupID:   best.ID(),
		EventName: best.EventName(),
		EventDate: best.EventDate(),
		Rating:    best.Rating(),
		CreatedAt: best.CreatedAt(),
	}
	return MatchResult{
		HasMatch:   bestQuality.Reusable(),
		Quality:    bestQuality,
		Match:      ref,
		Suggestion: suggestion(bestQuality, ref),
	}
}

func outranks(q MatchQuality, c *Setup, bestQ MatchQuality, best *Setup) bool {
	if q.rank() != bestQ.rank() {
		return q.rank() > bestQ.rank()
	}
	cr, br := ratingValue(c.Rating()), ratingValue(best.Rating())
	if cr != br {
		return cr > br
	}
	if !c.CreatedAt().Equal(best.CreatedAt()) {
		return c.CreatedAt().After(best.CreatedAt())
	}
	return c.ID() < best.ID()
}

func ratingValue(r *int) int {
	if r == nil {
		return 0
	}
	return *r
}

func suggestion(q MatchQuality, ref *MatchRef) string {
	if ref == nil || q == MatchNone {
		return "No previous setup at this venue fits this lineup. Generate a new setup."
	}

	name := ref.EventName
	if name == "" {
		name = "Untitled event"
	}
	date := "undated"
	if ref.EventDate != nil {
		date = ref.EventDate.UTC().Format("2006-01-02")
	}

	switch q {
	case MatchExact:
		return fmt.Sprintf("Exact match: %q (%s) used this lineup at this venue. Reuse it to skip generation.", name, date)
	case MatchSimilar:
		return fmt.Sprintf("Similar match: %q (%s) had nearly the same lineup. Reuse it and adjust the changed channels.", name, date)
	default:
		return fmt.Sprintf("Partial match: %q (%s) shares some performers. Generating a new setup is recommended.", name, date)
	}
}
