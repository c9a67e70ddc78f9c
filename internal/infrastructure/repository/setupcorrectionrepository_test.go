package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaberwal/serunner/internal/domain/setup"
)

func upsertCorrection(t *testing.T, repo *SetupCorrectionRepository, setupID, channel string, entry setup.CorrectionEntry, at time.Time) {
	t.Helper()
	c, err := setup.NewCorrection(setupID, channel, "u1", entry)
	require.NoError(t, err)
	c.UpdatedAt = at
	require.NoError(t, repo.Upsert(context.Background(), c))
}

func TestSetupCorrectionRepository_UpsertIsLastWriteWins(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSetupCorrectionRepository(gdb, testLogger())
	ctx := context.Background()
	t0 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	upsertCorrection(t, repo, "s1", "3", setup.CorrectionEntry{
		Instrument: "vocal_female",
		EQChanges:  map[string]string{"low_mid": "-3dB"},
		GainChange: "+2dB",
	}, t0)
	upsertCorrection(t, repo, "s1", "3", setup.CorrectionEntry{
		Instrument: "vocal_female",
		Mic:        "sm58",
	}, t0.Add(time.Minute))

	got, err := repo.ListBySetup(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sm58", got[0].Entry.Mic)
	assert.Empty(t, got[0].Entry.EQChanges, "second write replaces the entry without merging")
	assert.Empty(t, got[0].Entry.GainChange)
}

func TestSetupCorrectionRepository_ListLearningContext(t *testing.T) {
	gdb := setupTestDB(t)
	setups := NewSetupRepository(gdb, testLogger())
	repo := NewSetupCorrectionRepository(gdb, testLogger())
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, setups.Create(ctx, newStoredSetup("mine", "u1", "loc", nil, false, base)))
	require.NoError(t, setups.Create(ctx, newStoredSetup("shared", "u2", "loc", nil, true, base)))
	require.NoError(t, setups.Create(ctx, newStoredSetup("private", "u2", "loc", nil, false, base)))
	require.NoError(t, setups.Create(ctx, newStoredSetup("other-venue", "u1", "elsewhere", nil, false, base)))

	upsertCorrection(t, repo, "mine", "1", setup.CorrectionEntry{Instrument: "Vocal_Female"}, base.Add(1*time.Hour))
	upsertCorrection(t, repo, "shared", "2", setup.CorrectionEntry{Instrument: "tabla"}, base.Add(3*time.Hour))
	upsertCorrection(t, repo, "mine", "4", setup.CorrectionEntry{Instrument: "tabla"}, base.Add(2*time.Hour))
	upsertCorrection(t, repo, "private", "1", setup.CorrectionEntry{Instrument: "tabla"}, base.Add(4*time.Hour))
	upsertCorrection(t, repo, "other-venue", "1", setup.CorrectionEntry{Instrument: "tabla"}, base.Add(5*time.Hour))

	all, err := repo.ListLearningContext(ctx, setup.LearningContextQuery{LocationID: "loc", RequesterID: "u1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "shared", all[0].SetupID)
	assert.Equal(t, "mine", all[1].SetupID)
	assert.Equal(t, "4", all[1].Channel)
	assert.Equal(t, "Event mine", all[2].EventName)

	tabla, err := repo.ListLearningContext(ctx, setup.LearningContextQuery{LocationID: "loc", RequesterID: "u1", InstrumentKey: "tabla", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, tabla, 2)

	vocal, err := repo.ListLearningContext(ctx, setup.LearningContextQuery{LocationID: "loc", RequesterID: "u1", InstrumentKey: setup.NormalizeIdentifier("VOCAL_FEMALE"), Limit: 10})
	require.NoError(t, err)
	require.Len(t, vocal, 1)
	assert.Equal(t, "1", vocal[0].Channel)

	bounded, err := repo.ListLearningContext(ctx, setup.LearningContextQuery{LocationID: "loc", RequesterID: "u1", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, bounded, 1)
}
