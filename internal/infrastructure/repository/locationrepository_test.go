package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaberwal/serunner/internal/domain/instrument"
	"github.com/hsaberwal/serunner/internal/domain/location"
)

func TestLocationRepository(t *testing.T) {
	repo := NewLocationRepository(setupTestDB(t))
	ctx := context.Background()

	l, err := location.NewLocation("u1", "Community Hall", "hall", "Low ceiling", json.RawMessage(`{"foh":"2x K12"}`), false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.GetByID(ctx, l.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Community Hall", got.Name())
	assert.JSONEq(t, `{"foh":"2x K12"}`, string(got.SpeakerSetup()))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInstrumentProfileRepository_SaveReplacesByValueKey(t *testing.T) {
	repo := NewInstrumentProfileRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := instrument.NewProfile("u1", "Dhol", instrument.CategoryPercussion, "")
	require.NoError(t, err)
	first.ApplyLearned(instrument.Learned{MixingNotes: "v1"})
	require.NoError(t, repo.Save(ctx, first))

	second, err := instrument.NewProfile("u1", "dhol", instrument.CategoryPercussion, "louder")
	require.NoError(t, err)
	second.ApplyLearned(instrument.Learned{MixingNotes: "v2"})
	require.NoError(t, repo.Save(ctx, second))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "v2", list[0].Learned().MixingNotes)
	assert.Equal(t, "louder", list[0].UserNotes())

	found, err := repo.FindByValueKeys(ctx, "u1", []string{"dhol", "sitar"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := repo.FindByValueKeys(ctx, "u2", []string{"dhol"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
