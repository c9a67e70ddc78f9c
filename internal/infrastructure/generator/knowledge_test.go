package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnowledge_Embedded(t *testing.T) {
	k, err := LoadKnowledge("")
	require.NoError(t, err)

	prompt := k.SystemPrompt()
	assert.Contains(t, prompt, "Allen & Heath QuPac")
	assert.Contains(t, prompt, "Shure Beta 58A")
	assert.Contains(t, prompt, "troubleshooting_tips")
	assert.NotEmpty(t, k.Instruments)
}

func TestLoadKnowledge_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mixer:\n  name: Test Desk\nprinciples:\n  - Gain before EQ\n"), 0o600))

	k, err := LoadKnowledge(path)
	require.NoError(t, err)
	assert.Contains(t, k.SystemPrompt(), "Test Desk")
	assert.Contains(t, k.SystemPrompt(), "1. Gain before EQ")
}

func TestLoadKnowledge_Errors(t *testing.T) {
	_, err := LoadKnowledge(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("principles: []\n"), 0o600))
	_, err = LoadKnowledge(path)
	assert.Error(t, err)
}
