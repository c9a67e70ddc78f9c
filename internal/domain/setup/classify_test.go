package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineup(t *testing.T, slots ...PerformerSlot) Lineup {
	t.Helper()
	l, err := NormalizeLineup(slots)
	require.NoError(t, err)
	return l
}

func TestClassify(t *testing.T) {
	base := []PerformerSlot{{Type: "vocal_female", Count: 1, InputSource: "beta_58a"}}

	tests := []struct {
		name      string
		request   []PerformerSlot
		candidate []PerformerSlot
		want      MatchQuality
	}{
		{
			name:      "same lineup is exact",
			request:   base,
			candidate: base,
			want:      MatchExact,
		},
		{
			name:      "different input source is similar",
			request:   []PerformerSlot{{Type: "vocal_female", Count: 1, InputSource: "sm58"}},
			candidate: base,
			want:      MatchSimilar,
		},
		{
			name:      "one added performer on a single-type lineup is partial",
			request:   append(append([]PerformerSlot{}, base...), PerformerSlot{Type: "tabla", Count: 1, InputSource: "beta_57a"}),
			candidate: base,
			want:      MatchPartial,
		},
		{
			name: "one added single performer on a larger lineup is similar",
			request: []PerformerSlot{
				{Type: "vocal", Count: 2, InputSource: "beta_58a"},
				{Type: "guitar", Count: 1, InputSource: "di"},
				{Type: "tabla", Count: 1, InputSource: "beta_57a"},
			},
			candidate: []PerformerSlot{
				{Type: "vocal", Count: 2, InputSource: "beta_58a"},
				{Type: "guitar", Count: 1, InputSource: "di"},
			},
			want: MatchSimilar,
		},
		{
			name: "one removed single performer is similar",
			request: []PerformerSlot{
				{Type: "vocal", Count: 2, InputSource: "beta_58a"},
				{Type: "guitar", Count: 1, InputSource: "di"},
			},
			candidate: []PerformerSlot{
				{Type: "vocal", Count: 2, InputSource: "beta_58a"},
				{Type: "guitar", Count: 1, InputSource: "di"},
				{Type: "flute", Count: 1, InputSource: "c1000s"},
			},
			want: MatchSimilar,
		},
		{
			name: "added type with count two is partial",
			request: []PerformerSlot{
				{Type: "vocal", Count: 2, InputSource: "beta_58a"},
				{Type: "guitar", Count: 1, InputSource: "di"},
				{Type: "tabla", Count: 2, InputSource: "beta_57a"},
			},
			candidate: []PerformerSlot{
				{Type: "vocal", Count: 2, InputSource: "beta_58a"},
				{Type: "guitar", Count: 1, InputSource: "di"},
			},
			want: MatchPartial,
		},
		{
			name: "different counts of the same types is partial",
			request: []PerformerSlot{
				{Type: "vocal", Count: 3, InputSource: "beta_58a"},
			},
			candidate: []PerformerSlot{
				{Type: "vocal", Count: 2, InputSource: "beta_58a"},
			},
			want: MatchPartial,
		},
		{
			name:      "disjoint lineups are none",
			request:   []PerformerSlot{{Type: "dhol", Count: 1}},
			candidate: base,
			want:      MatchNone,
		},
		{
			name: "less than half shared is none",
			request: []PerformerSlot{
				{Type: "vocal_female", Count: 1},
				{Type: "dhol", Count: 1},
				{Type: "sitar", Count: 1},
			},
			candidate: base,
			want:      MatchNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(lineup(t, tt.request...), lineup(t, tt.candidate...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_ExactIsSymmetric(t *testing.T) {
	a := lineup(t,
		PerformerSlot{Type: "vocal", Count: 1, InputSource: "beta_58a", Notes: "lead"},
		PerformerSlot{Type: "keys", Count: 1, InputSource: "di"},
	)
	b := lineup(t,
		PerformerSlot{Type: "keys", Count: 1, InputSource: "di"},
		PerformerSlot{Type: "vocal", Count: 1, InputSource: "beta_58a", Notes: "backing"},
	)

	assert.Equal(t, MatchExact, Classify(a, b))
	assert.Equal(t, MatchExact, Classify(b, a))
}

func TestClassify_SeparatorsInSourceAreNotExact(t *testing.T) {
	stored := []PerformerSlot{
		{Type: "a", Count: 1, InputSource: "x"},
		{Type: "b", Count: 1, InputSource: "y"},
	}
	request := lineup(t, PerformerSlot{Type: "a", Count: 1, InputSource: "x:1|b:y"})
	existing := lineup(t, stored...)

	assert.NotEqual(t, request.Signature(), existing.Signature())
	assert.NotEqual(t, MatchExact, Classify(request, existing))
	assert.NotEqual(t, MatchExact, Classify(existing, request))

	result := FindBestMatch(request, []*Setup{candidate("s1", intPtr(5), 1, stored...)})
	assert.NotEqual(t, MatchExact, result.Quality)
	assert.False(t, result.HasMatch)
}

func TestMatchQuality_Reusable(t *testing.T) {
	assert.True(t, MatchExact.Reusable())
	assert.True(t, MatchSimilar.Reusable())
	assert.False(t, MatchPartial.Reusable())
	assert.False(t, MatchNone.Reusable())
}
