package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 50, cfg.Matching.LookbackLimit)
	assert.Equal(t, 10, cfg.Matching.LearningContextLimit)
	assert.Equal(t, 2, cfg.Subscription.Plans["free"].Generations)
	assert.Equal(t, 3, cfg.Subscription.Plans["free"].Learning)
	assert.Equal(t, -1, cfg.Subscription.Plans["pro"].Generations)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  sqlite_path: /tmp/serunner-test.db
matching:
  lookback_limit: 20
subscription:
  plans:
    basic:
      generations: 30
      learning: 40
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "sqlite3", cfg.Database.GooseDialect())
	assert.Equal(t, 20, cfg.Matching.LookbackLimit)
	assert.Equal(t, 30, cfg.Subscription.Plans["basic"].Generations)
	assert.Equal(t, 40, cfg.Subscription.Plans["basic"].Learning)
}

func TestLoad_EnvOverridesMode(t *testing.T) {
	path := writeConfig(t, "server:\n  mode: debug\n")

	cfg, err := Load("release", path)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_EnvironmentVariable(t *testing.T) {
	t.Setenv("SERUNNER_MATCHING_LOOKBACK_LIMIT", "75")
	path := writeConfig(t, "server:\n  port: 8080\n")

	cfg, err := Load("", path)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.Matching.LookbackLimit)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
