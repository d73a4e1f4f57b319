package config

import (
	_ "embed"
)

//go:embed defaults/capyrun.yaml
var defaultYAML []byte

// Default returns the default configuration.
// Matches defaults/capyrun.yaml; used as the last-resort fallback if the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:     -0.30,
			JumpImpulse: 2.50,
		},
		Obstacles: Obstacles{
			Width:       3,
			Height:      4,
			Speed:       0.55,
			MinGap:      32,
			SpawnMargin: 4,
		},
		Player: Player{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Score: Score{
			Rate:      0.1,
			Milestone: 100,
		},
	}
}
