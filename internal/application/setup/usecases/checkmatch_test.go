package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

func TestCheckMatch_Scenario(t *testing.T) {
	rated := storedSetup("s-1", owner.UserID, vocalLineup("beta_58a"), intPtr(5), false, false, eventDay)
	repo := &mockSetupRepository{
		ListMatchCandidatesFunc: func(ctx context.Context, locationID, userID string, limit int) ([]*setup.Setup, error) {
			if locationID != venueID {
				return nil, nil
			}
			assert.Equal(t, owner.UserID, userID)
			assert.Equal(t, 50, limit)
			return []*setup.Setup{rated}, nil
		},
	}
	uc := NewCheckMatchUseCase(repo, DefaultSettings(), logger.NewNopLogger())

	tests := []struct {
		name       string
		locationID string
		performers []setup.PerformerSlot
		quality    string
		hasMatch   bool
	}{
		{"same lineup", venueID, vocalLineup("beta_58a"), "exact", true},
		{"different mic", venueID, vocalLineup("sm58"), "similar", true},
		{"extra tabla", venueID, append(vocalLineup("beta_58a"), setup.PerformerSlot{Type: "tabla", Count: 1, InputSource: "beta_57a"}), "partial", false},
		{"other venue", "loc-2", vocalLineup("beta_58a"), "none", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), CheckMatchCommand{
				UserID:     owner.UserID,
				LocationID: tt.locationID,
				Performers: tt.performers,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.quality, result.MatchQuality)
			assert.Equal(t, tt.hasMatch, result.HasMatch)
			assert.NotEmpty(t, result.Suggestion)
			if tt.quality == "none" {
				assert.Nil(t, result.MatchingSetup)
			} else {
				require.NotNil(t, result.MatchingSetup)
				assert.Equal(t, "s-1", result.MatchingSetup.SetupID)
				assert.Equal(t, 5, *result.MatchingSetup.Rating)
			}
		})
	}
}

func TestCheckMatch_OrderAndNotesIgnored(t *testing.T) {
	stored := storedSetup("s-1", owner.UserID, []setup.PerformerSlot{
		{Type: "vocal_female", Count: 1, InputSource: "beta_58a"},
		{Type: "tabla", Count: 1, InputSource: "beta_57a"},
	}, nil, false, false, eventDay)
	repo := &mockSetupRepository{
		ListMatchCandidatesFunc: func(ctx context.Context, locationID, userID string, limit int) ([]*setup.Setup, error) {
			return []*setup.Setup{stored}, nil
		},
	}
	uc := NewCheckMatchUseCase(repo, DefaultSettings(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CheckMatchCommand{
		UserID:     owner.UserID,
		LocationID: venueID,
		Performers: []setup.PerformerSlot{
			{Type: "Tabla", Count: 1, InputSource: "Beta_57A", Notes: "left side"},
			{Type: "vocal_female", Count: 1, InputSource: "beta_58a", Notes: "lead"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "exact", result.MatchQuality)
	assert.True(t, result.HasMatch)
}

func TestCheckMatch_PrefersHigherRatingThenNewer(t *testing.T) {
	older := storedSetup("s-old", owner.UserID, vocalLineup("beta_58a"), intPtr(5), false, false, eventDay)
	newer := storedSetup("s-new", owner.UserID, vocalLineup("beta_58a"), intPtr(5), false, false, eventDay.Add(24*time.Hour))
	unrated := storedSetup("s-unrated", owner.UserID, vocalLineup("beta_58a"), nil, false, false, eventDay.Add(48*time.Hour))
	repo := &mockSetupRepository{
		ListMatchCandidatesFunc: func(ctx context.Context, locationID, userID string, limit int) ([]*setup.Setup, error) {
			return []*setup.Setup{unrated, older, newer}, nil
		},
	}
	uc := NewCheckMatchUseCase(repo, DefaultSettings(), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CheckMatchCommand{
		UserID:     owner.UserID,
		LocationID: venueID,
		Performers: vocalLineup("beta_58a"),
	})

	require.NoError(t, err)
	require.NotNil(t, result.MatchingSetup)
	assert.Equal(t, "s-new", result.MatchingSetup.SetupID)
}

func TestCheckMatch_EmptyLineupIsValidationError(t *testing.T) {
	repo := &mockSetupRepository{
		ListMatchCandidatesFunc: func(ctx context.Context, locationID, userID string, limit int) ([]*setup.Setup, error) {
			t.Fatal("repository must not be queried for an invalid lineup")
			return nil, nil
		},
	}
	uc := NewCheckMatchUseCase(repo, DefaultSettings(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CheckMatchCommand{
		UserID:     owner.UserID,
		LocationID: venueID,
		Performers: []setup.PerformerSlot{{Type: "  ", Count: 1}},
	})

	assert.True(t, errors.IsValidationError(err))
}
