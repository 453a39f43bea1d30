package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the built-in configuration.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Screen: Screen{
			Width:  80,
			Height: 50,
		},
		Physics: Physics{
			Gravity:       0.2,
			MaxFallSpeed:  2.0,
			BoostVelocity: -2.0,
		},
		Obstacles: Obstacles{
			GapCenterMin: 10,
			GapCenterMax: 40,
			GapBase:      25,
			GapStep:      4,
			GapMin:       2,
			Lookahead:    3,
		},
		Timing: Timing{
			StepMs: 50,
			FPS:    60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
