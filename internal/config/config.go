// Package config provides YAML-based rules configuration for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all tunable rules of a snake session.
type SnakeConfig struct {
	Grid    SnakeGrid    `yaml:"grid"`
	Speed   SnakeSpeed   `yaml:"speed"`
	Scoring SnakeScoring `yaml:"scoring"`
	Food    SnakeFood    `yaml:"food"`
}

// SnakeGrid defines the playfield. The grid is square.
type SnakeGrid struct {
	TileCount int `yaml:"tile_count"`
}

// SnakeSpeed defines the tick pacing. Each food eaten shortens the interval
// by StepMs until it reaches MinIntervalMs.
type SnakeSpeed struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
	StepMs            int `yaml:"step_ms"`
}

// SnakeScoring defines how points are awarded.
type SnakeScoring struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// SnakeFood defines food placement. MaxSamples bounds the random draws before
// placement falls back to scanning for free cells.
type SnakeFood struct {
	MaxSamples int `yaml:"max_samples"`
}

// InitialInterval returns the starting tick interval.
func (c SnakeConfig) InitialInterval() time.Duration {
	return time.Duration(c.Speed.InitialIntervalMs) * time.Millisecond
}

// MinInterval returns the floor of the tick interval.
func (c SnakeConfig) MinInterval() time.Duration {
	return time.Duration(c.Speed.MinIntervalMs) * time.Millisecond
}

// Step returns how much the interval shrinks per food eaten.
func (c SnakeConfig) Step() time.Duration {
	return time.Duration(c.Speed.StepMs) * time.Millisecond
}

// Validate reports every rule that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.TileCount < 2 {
		errs = append(errs, fmt.Errorf("grid.tile_count must be at least 2, got %d", c.Grid.TileCount))
	}
	if c.Speed.InitialIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("speed.initial_interval_ms must be positive, got %d", c.Speed.InitialIntervalMs))
	}
	if c.Speed.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("speed.min_interval_ms must be positive, got %d", c.Speed.MinIntervalMs))
	}
	if c.Speed.MinIntervalMs > c.Speed.InitialIntervalMs {
		errs = append(errs, fmt.Errorf("speed.min_interval_ms (%d) exceeds initial_interval_ms (%d)",
			c.Speed.MinIntervalMs, c.Speed.InitialIntervalMs))
	}
	if c.Speed.StepMs < 0 {
		errs = append(errs, fmt.Errorf("speed.step_ms must not be negative, got %d", c.Speed.StepMs))
	}
	if c.Scoring.PointsPerFood < 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_food must not be negative, got %d", c.Scoring.PointsPerFood))
	}
	if c.Food.MaxSamples < 0 {
		errs = append(errs, fmt.Errorf("food.max_samples must not be negative, got %d", c.Food.MaxSamples))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake rules: %w", errors.Join(errs...))
	}
	return nil
}
