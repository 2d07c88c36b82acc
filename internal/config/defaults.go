package config

import (
	_ "embed"
)

//go:embed defaults/ferretbox.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Game: GameSettings{
			Boxes: 5,
			Speed: 1,
		},
		Limits: LimitsConfig{
			MaxBoxes: 16,
			MaxSpeed: 9,
		},
	}
}
