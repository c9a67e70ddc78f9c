package setup

import "slices"

// MatchQuality grades how closely a stored lineup fits a request.
type MatchQuality string

const (
	MatchExact   MatchQuality = "exact"
	MatchSimilar MatchQuality = "similar"
	MatchPartial MatchQuality = "partial"
	MatchNone    MatchQuality = "none"
)

func (q MatchQuality) rank() int {
	switch q {
	case MatchExact:
		return 3
	case MatchSimilar:
		return 2
	case MatchPartial:
		return 1
	default:
		return 0
	}
}

// Reusable reports whether the quality is good enough to offer reuse.
func (q MatchQuality) Reusable() bool {
	return q == MatchExact || q == MatchSimilar
}

// Classify compares two normalized lineups.
//
// Exact: identical (type, source) multisets. Similar: identical per-type
// totals with different sources, or exactly one extra/missing type of count 1
// when every shared type has equal totals and shared types are a strict
// majority of the union. Partial: shared types cover at least half of the
// request's types.
func Classify(request, candidate Lineup) MatchQuality {
	if len(request) == 0 || len(candidate) == 0 {
		return MatchNone
	}
	if slices.Equal(request, candidate) {
		return MatchExact
	}

	reqTotals := request.TypeTotals()
	candTotals := candidate.TypeTotals()

	shared := 0
	sharedEqual := true
	for typ, n := range reqTotals {
		if m, ok := candTotals[typ]; ok {
			shared++
			if m != n {
				sharedEqual = false
			}
		}
	}
	union := len(reqTotals) + len(candTotals) - shared

	if sharedEqual && shared == len(reqTotals) && shared == len(candTotals) {
		return MatchSimilar
	}

	if sharedEqual && union-shared == 1 && shared*2 > union {
		if singleDifference(reqTotals, candTotals) == 1 {
			return MatchSimilar
		}
	}

	if shared > 0 && shared*2 >= len(reqTotals) {
		return MatchPartial
	}
	return MatchNone
}

// singleDifference returns the count of the one type present in only one
// of the two lineups.
func singleDifference(a, b map[string]int) int {
	for typ, n := range a {
		if _, ok := b[typ]; !ok {
			return n
		}
	}
	for typ, n := range b {
		if _, ok := a[typ]; !ok {
			return n
		}
	}
	return 0
}
