package setup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// LineupEntry is one aggregated (type, input source) group of a normalized lineup.
type LineupEntry struct {
	Type        string
	InputSource string
	Count       int
}

// Lineup is a normalized lineup: identifiers folded, duplicates summed,
// sorted by type then input source.
type Lineup []LineupEntry

// Fingerprint is the comparable key of a (location, lineup) request.
type Fingerprint struct {
	LocationID string
	Lineup     Lineup
	Signature  string
}

// NormalizeIdentifier folds case, applies NFKC and trims surrounding space.
// A fresh Caser is used per call since casers keep internal state.
func NormalizeIdentifier(s string) string {
	folded := cases.Fold().String(s)
	return strings.TrimSpace(norm.NFKC.String(folded))
}

// BuildFingerprint normalizes a request lineup. Slots with an empty type are
// dropped; at least one slot must remain and every kept slot needs count >= 1.
func BuildFingerprint(locationID string, performers []PerformerSlot) (Fingerprint, error) {
	if strings.TrimSpace(locationID) == "" {
		return Fingerprint{}, ErrLocationRequired
	}
	lineup, err := NormalizeLineup(performers)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint{
		LocationID: locationID,
		Lineup:     lineup,
		Signature:  lineup.Signature(),
	}, nil
}

// NormalizeLineup is the strict normalization applied to requests.
func NormalizeLineup(performers []PerformerSlot) (Lineup, error) {
	return normalize(performers, true)
}

// normalizeStored is the lenient form used for stored candidates: invalid
// slots are skipped instead of failing the whole lineup.
func normalizeStored(performers []PerformerSlot) Lineup {
	lineup, _ := normalize(performers, false)
	return lineup
}

type slotKey struct {
	typ    string
	source string
}

func normalize(performers []PerformerSlot, strict bool) (Lineup, error) {
	counts := make(map[slotKey]int)
	for i, p := range performers {
		typ := NormalizeIdentifier(p.Type)
		if typ == "" {
			continue
		}
		if p.Count < 1 {
			if strict {
				return nil, fmt.Errorf("%w: performer %d (%s) has count %d", ErrInvalidCount, i, typ, p.Count)
			}
			continue
		}
		counts[slotKey{typ: typ, source: NormalizeIdentifier(p.InputSource)}] += p.Count
	}
	if len(counts) == 0 {
		if strict {
			return nil, ErrEmptyLineup
		}
		return Lineup{}, nil
	}

	lineup := make(Lineup, 0, len(counts))
	for k, n := range counts {
		lineup = append(lineup, LineupEntry{Type: k.typ, InputSource: k.source, Count: n})
	}
	sort.Slice(lineup, func(i, j int) bool {
		if lineup[i].Type != lineup[j].Type {
			return lineup[i].Type < lineup[j].Type
		}
		return lineup[i].InputSource < lineup[j].InputSource
	})
	return lineup, nil
}

var signatureEscaper = strings.NewReplacer(`\`, `\\`, ":", `\:`, "|", `\|`)

// Signature renders the lineup as type:source:count tuples joined by "|".
// Separators inside identifiers are backslash-escaped, so distinct lineups
// never share a signature.
func (l Lineup) Signature() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = signatureEscaper.Replace(e.Type) + ":" + signatureEscaper.Replace(e.InputSource) + ":" + strconv.Itoa(e.Count)
	}
	return strings.Join(parts, "|")
}

// TypeTotals sums counts per performer type, ignoring input sources.
func (l Lineup) TypeTotals() map[string]int {
	totals := make(map[string]int, len(l))
	for _, e := range l {
		totals[e.Type] += e.Count
	}
	return totals
}

// Types returns the distinct performer types in order.
func (l Lineup) Types() []string {
	var types []string
	for _, e := range l {
		if len(types) == 0 || types[len(types)-1] != e.Type {
			types = append(types, e.Type)
		}
	}
	return types
}
