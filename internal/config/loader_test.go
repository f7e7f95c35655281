package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	require.Equal(t, DefaultSnakeConfig(), cfg)
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadSnake("")
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Grid.TileCount)
	require.Equal(t, 150*time.Millisecond, cfg.InitialInterval())
	require.Equal(t, 50*time.Millisecond, cfg.MinInterval())
	require.Equal(t, 2*time.Millisecond, cfg.Step())
	require.Equal(t, 10, cfg.Scoring.PointsPerFood)
}

func TestLoadSnakeCustomPathPartialOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  tile_count: 12\n"), 0o600))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Grid.TileCount)
	require.Equal(t, 150, cfg.Speed.InitialIntervalMs, "keys absent from the file keep their defaults")
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	_, err := LoadSnake(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [unterminated"), 0o600))
	_, err = LoadSnake(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("grid:\n  tile_count: 1\n"), 0o600))
	_, err = LoadSnake(invalid)
	require.ErrorContains(t, err, "tile_count")
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	dir := isolate(t)

	local := filepath.Join(dir, "configs")
	require.NoError(t, os.MkdirAll(local, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(local, "snake.yaml"), []byte("grid:\n  tile_count: 30\n"), 0o600))

	cfg, err := LoadSnake("")
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Grid.TileCount, "local configs dir should be used")

	user := filepath.Join(dir, ".snake", "configs")
	require.NoError(t, os.MkdirAll(user, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(user, "snake.yaml"), []byte("grid:\n  tile_count: 40\n"), 0o600))

	cfg, err = LoadSnake("")
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Grid.TileCount, "user config should win over local")
}

func TestLoadSnakeSkipsBrokenImplicitFile(t *testing.T) {
	dir := isolate(t)
	local := filepath.Join(dir, "configs")
	require.NoError(t, os.MkdirAll(local, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(local, "snake.yaml"), []byte("speed:\n  min_interval_ms: 500\n"), 0o600))

	cfg, err := LoadSnake("")
	require.NoError(t, err)
	require.Equal(t, DefaultSnakeConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		field  string
	}{
		{"tiny grid", func(c *SnakeConfig) { c.Grid.TileCount = 1 }, "tile_count"},
		{"zero interval", func(c *SnakeConfig) { c.Speed.InitialIntervalMs = 0 }, "initial_interval_ms"},
		{"zero floor", func(c *SnakeConfig) { c.Speed.MinIntervalMs = 0 }, "min_interval_ms"},
		{"floor above initial", func(c *SnakeConfig) { c.Speed.MinIntervalMs = 200 }, "exceeds"},
		{"negative step", func(c *SnakeConfig) { c.Speed.StepMs = -1 }, "step_ms"},
		{"negative points", func(c *SnakeConfig) { c.Scoring.PointsPerFood = -10 }, "points_per_food"},
		{"negative samples", func(c *SnakeConfig) { c.Food.MaxSamples = -1 }, "max_samples"},
	}

	require.NoError(t, DefaultSnakeConfig().Validate())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tc.field)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.TileCount = 16

	data, err := Marshal(cfg)
	require.NoError(t, err)
	require.Contains(t, string(data), "tile_count: 16")

	back, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
