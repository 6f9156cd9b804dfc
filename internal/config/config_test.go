package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/Peritract/meld/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meld.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvPort, EnvSeed, EnvDB} {
		t.Setenv(k, "")
	}
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: "9000"
game:
  seed: 42
  turn_order: speed
  log_limit: 50
  mutation:
    threshold: 80
    affinity_weighted: true
world:
  area: 0
storage:
  database: saves.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, engine.TurnOrderSpeed, cfg.Game.TurnOrder)
	assert.Equal(t, 50, cfg.Game.LogLimit)
	assert.Equal(t, 80, cfg.Game.Mutation.Threshold)
	assert.True(t, cfg.Game.Mutation.AffinityWeighted)
	assert.Equal(t, uint16(0), cfg.World.Area)
	assert.Equal(t, "saves.db", cfg.Storage.Database)
	// Не указанное в файле остается по умолчанию
	assert.Equal(t, "replays", cfg.Storage.ReplayDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "game:\n  seed: 1\n")
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvDB, "other.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, "other.db", cfg.Storage.Database)
}

func TestLoad_WordSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "banana")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, utils.StringToSeed("banana"), cfg.Game.Seed)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfig, writeConfig(t, "server:\n  port: \"1234\"\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "1234", cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "explicit file missing",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
		},
		{
			name: "broken yaml",
			path: func(t *testing.T) string { return writeConfig(t, "game: [") },
		},
		{
			name: "unknown turn order",
			path: func(t *testing.T) string { return writeConfig(t, "game:\n  turn_order: random\n") },
		},
		{
			name: "port is not a number",
			path: func(t *testing.T) string { return writeConfig(t, "server:\n  port: http\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(tt.path(t))
			assert.Error(t, err)
		})
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Server, cfg.Server)
	assert.Equal(t, engine.TurnOrderFixed, cfg.Game.TurnOrder)
}
