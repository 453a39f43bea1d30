// Package config provides YAML-based game configuration loading and
// the score-driven difficulty curve.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// DragonConfig contains all configuration for the game.
type DragonConfig struct {
	Screen    Screen    `yaml:"screen"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Timing    Timing    `yaml:"timing"`
}

// Screen defines the playfield size in cells.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines how the entity falls and flaps.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`        // Velocity added per simulation step
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // Velocity cap while falling
	BoostVelocity float64 `yaml:"boost_velocity"` // Velocity set by a flap (negative = up)
}

// Obstacles defines obstacle generation and the gap-size curve.
type Obstacles struct {
	GapCenterMin int `yaml:"gap_center_min"` // Inclusive lower bound of the gap center
	GapCenterMax int `yaml:"gap_center_max"` // Exclusive upper bound of the gap center
	GapBase      int `yaml:"gap_base"`       // Gap size at difficulty 0
	GapStep      int `yaml:"gap_step"`       // Difficulty points per one-cell shrink
	GapMin       int `yaml:"gap_min"`        // Smallest gap ever generated
	Lookahead    int `yaml:"lookahead"`      // Added to the score for replacement obstacles
}

// Timing defines the simulation and frame rates.
type Timing struct {
	StepMs float64 `yaml:"step_ms"` // Accumulated frame time that triggers one simulation step
	FPS    int     `yaml:"fps"`     // Frames rendered per second
}

// Validate checks that the configuration can drive a run.
func (c DragonConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("config: screen %dx%d: %w", c.Screen.Width, c.Screen.Height, ErrInvalid)
	case c.Obstacles.GapCenterMax <= c.Obstacles.GapCenterMin:
		return fmt.Errorf("config: gap center range [%d, %d): %w",
			c.Obstacles.GapCenterMin, c.Obstacles.GapCenterMax, ErrInvalid)
	case c.Obstacles.GapStep <= 0:
		return fmt.Errorf("config: obstacles.gap_step must be positive, got %d: %w", c.Obstacles.GapStep, ErrInvalid)
	case c.Obstacles.GapMin < 1:
		return fmt.Errorf("config: obstacles.gap_min must be at least 1, got %d: %w", c.Obstacles.GapMin, ErrInvalid)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("config: physics.max_fall_speed must be positive: %w", ErrInvalid)
	case c.Timing.StepMs <= 0:
		return fmt.Errorf("config: timing.step_ms must be positive: %w", ErrInvalid)
	case c.Timing.FPS <= 0:
		return fmt.Errorf("config: timing.fps must be positive: %w", ErrInvalid)
	}
	return nil
}
