package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/location"
	"github.com/hsaberwal/serunner/internal/domain/setup"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/shared/errors"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

type generateFixture struct {
	setups      *mockSetupRepository
	corrections *mockCorrectionRepository
	locations   *mockLocationRepository
	instruments *mockInstrumentRepository
	gate        *mockQuotaGate
	generator   *mockGenerator
}

func newGenerateFixture() *generateFixture {
	return &generateFixture{
		setups:      &mockSetupRepository{},
		corrections: &mockCorrectionRepository{},
		locations: &mockLocationRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*location.Location, error) {
				if id == venueID {
					return testVenue(), nil
				}
				return nil, nil
			},
		},
		instruments: &mockInstrumentRepository{},
		gate:        &mockQuotaGate{},
		generator:   &mockGenerator{},
	}
}

func (f *generateFixture) useCase() *GenerateSetupUseCase {
	return NewGenerateSetupUseCase(f.setups, f.corrections, f.locations, f.instruments,
		f.gate, f.generator, DefaultSettings(), logger.NewNopLogger())
}

func TestGenerateSetup_Success(t *testing.T) {
	f := newGenerateFixture()
	past := storedSetup("s-past", owner.UserID, vocalLineup("beta_58a"), intPtr(5), false, false, eventDay)
	f.setups.ListPastSetupsFunc = func(ctx context.Context, locationID, userID string, minRating, limit int) ([]*setup.Setup, error) {
		assert.Equal(t, 4, minRating)
		return []*setup.Setup{past}, nil
	}
	f.corrections.ListLearningContextFunc = func(ctx context.Context, q setup.LearningContextQuery) ([]setup.LearningCorrection, error) {
		assert.Equal(t, venueID, q.LocationID)
		assert.Equal(t, owner.UserID, q.RequesterID)
		assert.Equal(t, 10, q.Limit)
		return []setup.LearningCorrection{{SetupID: "s-past", Channel: "1", Entry: setup.CorrectionEntry{Instrument: "vocal_female", Mic: "sm58"}}}, nil
	}
	f.instruments.FindByValueKeysFunc = func(ctx context.Context, userID string, keys []string) ([]*instrument.Profile, error) {
		assert.Equal(t, []string{"vocal_female"}, keys)
		return nil, nil
	}
	f.generator.GenerateFunc = func(ctx context.Context, req setup.GenerationRequest) (setup.GeneratedConfig, error) {
		assert.Equal(t, "Gurdwara Hall", req.Location.Name)
		assert.Len(t, req.PastSetups, 1)
		assert.Len(t, req.PriorCorrections, 1)
		return testConfig("fresh"), nil
	}
	var created *setup.Setup
	f.setups.CreateFunc = func(ctx context.Context, s *setup.Setup) error {
		created = s
		return nil
	}

	result, err := f.useCase().Execute(context.Background(), GenerateSetupCommand{
		Actor:      owner,
		LocationID: venueID,
		EventName:  "Sunday Diwan",
		EventDate:  &eventDay,
		Performers: vocalLineup("beta_58a"),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID(), result.ID)
	assert.Equal(t, "fresh", result.Instructions)
	assert.Equal(t, "2026-05-09", *result.EventDate)
	assert.Equal(t, 1, f.gate.calls)
	assert.Equal(t, 1, f.generator.calls)
}

func TestGenerateSetup_DeniedDoesNotGenerate(t *testing.T) {
	f := newGenerateFixture()
	f.gate.TryConsumeFunc = func(ctx context.Context, userID, role string, kind subscription.Kind) (*subscription.Decision, error) {
		assert.Equal(t, subscription.KindGeneration, kind)
		return &subscription.Decision{Allowed: false, Reason: subscription.ReasonLimitReached, Kind: kind, Plan: subscription.PlanFree, Used: 2, Limit: 2}, nil
	}

	_, err := f.useCase().Execute(context.Background(), GenerateSetupCommand{
		Actor:      owner,
		LocationID: venueID,
		Performers: vocalLineup("beta_58a"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsUsageLimitError(err))
	appErr := errors.GetAppError(err)
	assert.Equal(t, 402, appErr.Code)
	assert.Equal(t, "free", appErr.Meta["plan"])
	assert.Equal(t, 2, appErr.Meta["used"])
	assert.Equal(t, 2, appErr.Meta["limit"])
	assert.Zero(t, f.generator.calls)
}

func TestGenerateSetup_GeneratorFailure(t *testing.T) {
	f := newGenerateFixture()
	f.generator.GenerateFunc = func(ctx context.Context, req setup.GenerationRequest) (setup.GeneratedConfig, error) {
		return setup.GeneratedConfig{}, stderrors.New("upstream timeout")
	}
	f.setups.CreateFunc = func(ctx context.Context, s *setup.Setup) error {
		t.Fatal("failed generation must not store a setup")
		return nil
	}

	_, err := f.useCase().Execute(context.Background(), GenerateSetupCommand{
		Actor:      owner,
		LocationID: venueID,
		Performers: vocalLineup("beta_58a"),
	})

	assert.True(t, errors.IsGenerationFailedError(err))
	assert.Equal(t, 1, f.gate.calls)
}

func TestGenerateSetup_ValidationBeforeCharging(t *testing.T) {
	f := newGenerateFixture()

	_, err := f.useCase().Execute(context.Background(), GenerateSetupCommand{
		Actor:      owner,
		LocationID: venueID,
		Performers: []setup.PerformerSlot{{Type: "tabla", Count: 0}},
	})

	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, f.gate.calls)
}

func TestGenerateSetup_UnknownLocation(t *testing.T) {
	f := newGenerateFixture()

	_, err := f.useCase().Execute(context.Background(), GenerateSetupCommand{
		Actor:      owner,
		LocationID: "loc-missing",
		Performers: vocalLineup("beta_58a"),
	})

	assert.True(t, errors.IsNotFoundError(err))
	assert.Zero(t, f.gate.calls)
}

func TestGenerateSetup_InstrumentLookupFailureIsTolerated(t *testing.T) {
	f := newGenerateFixture()
	f.instruments.FindByValueKeysFunc = func(ctx context.Context, userID string, keys []string) ([]*instrument.Profile, error) {
		return nil, stderrors.New("db down")
	}

	_, err := f.useCase().Execute(context.Background(), GenerateSetupCommand{
		Actor:      owner,
		LocationID: venueID,
		Performers: vocalLineup("beta_58a"),
	})

	assert.NoError(t, err)
}
