package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in rules: a 20x20 grid, 150ms ticks
// shrinking by 2ms per food down to 50ms, and 10 points per food.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			TileCount: 20,
		},
		Speed: SnakeSpeed{
			InitialIntervalMs: 150,
			MinIntervalMs:     50,
			StepMs:            2,
		},
		Scoring: SnakeScoring{
			PointsPerFood: 10,
		},
		Food: SnakeFood{
			MaxSamples: 64,
		},
	}
}

// DefaultYAML returns the embedded default rules file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
