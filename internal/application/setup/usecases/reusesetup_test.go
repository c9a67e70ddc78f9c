package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

func newReuseUseCase(setupRepo *mockSetupRepository) *ReuseSetupUseCase {
	locRepo := &mockLocationRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*location.Location, error) {
			if id == venueID {
				return testVenue(), nil
			}
			return nil, nil
		},
	}
	return NewReuseSetupUseCase(setupRepo, locRepo, ownerSharingPolicy{}, logger.NewNopLogger())
}

func TestReuseSetup_CopiesConfigurationOnly(t *testing.T) {
	source := storedSetup("s-1", stranger.UserID, vocalLineup("beta_58a"), intPtr(5), true, false, eventDay)
	source.SetNotes("feedback on ch 3")
	source.PutCorrection("1", setup.CorrectionEntry{Instrument: "vocal_female", Mic: "sm58"})

	var created *setup.Setup
	repo := &mockSetupRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*setup.Setup, error) {
			return source, nil
		},
		CreateFunc: func(ctx context.Context, s *setup.Setup) error {
			created = s
			return nil
		},
	}

	result, err := newReuseUseCase(repo).Execute(context.Background(), ReuseSetupCommand{
		Actor:          owner,
		MatchedSetupID: "s-1",
		LocationID:     venueID,
		EventName:      "Sunday Diwan",
		EventDate:      &eventDay,
		Performers:     vocalLineup("sm58"),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "s-1", result.ID)
	assert.Equal(t, owner.UserID, result.UserID)
	assert.Equal(t, "Sunday Diwan", result.EventName)
	assert.Equal(t, vocalLineup("sm58"), result.Performers)
	assert.JSONEq(t, string(source.Config().ChannelConfig), string(result.ChannelConfig))
	assert.JSONEq(t, string(source.Config().EQSettings), string(result.EQSettings))
	assert.Equal(t, source.Config().Instructions, result.Instructions)
	assert.Equal(t, source.Config().TroubleshootingTips, result.TroubleshootingTips)
	assert.Nil(t, result.Rating)
	assert.Empty(t, result.Notes)
	assert.Empty(t, result.Corrections)
	assert.False(t, result.IsShared)
	assert.False(t, result.SharedFullAccess)
	assert.True(t, result.IsOwner)
}

func TestReuseSetup_VanishedSourceIsStale(t *testing.T) {
	repo := &mockSetupRepository{}

	_, err := newReuseUseCase(repo).Execute(context.Background(), ReuseSetupCommand{
		Actor:          owner,
		MatchedSetupID: "gone",
		LocationID:     venueID,
		Performers:     vocalLineup("beta_58a"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsStaleMatchError(err))
}

func TestReuseSetup_UnreadableSourceIsForbidden(t *testing.T) {
	private := storedSetup("s-1", stranger.UserID, vocalLineup("beta_58a"), nil, false, false, eventDay)
	repo := &mockSetupRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*setup.Setup, error) { return private, nil },
		CreateFunc: func(ctx context.Context, s *setup.Setup) error {
			t.Fatal("no setup may be created")
			return nil
		},
	}

	_, err := newReuseUseCase(repo).Execute(context.Background(), ReuseSetupCommand{
		Actor:          owner,
		MatchedSetupID: "s-1",
		LocationID:     venueID,
		Performers:     vocalLineup("beta_58a"),
	})

	assert.True(t, errors.IsForbiddenError(err))
}

func TestReuseSetup_UnknownLocation(t *testing.T) {
	source := storedSetup("s-1", owner.UserID, vocalLineup("beta_58a"), nil, false, false, eventDay)
	repo := &mockSetupRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*setup.Setup, error) { return source, nil },
	}

	_, err := newReuseUseCase(repo).Execute(context.Background(), ReuseSetupCommand{
		Actor:          owner,
		MatchedSetupID: "s-1",
		LocationID:     "loc-missing",
		Performers:     vocalLineup("beta_58a"),
	})

	assert.True(t, errors.IsNotFoundError(err))
}
