// Package config provides YAML-based settings loading for ferretbox.
package config

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Game   GameSettings `yaml:"game"`
	Limits LimitsConfig `yaml:"limits"`
}

// GameSettings defines the starting board.
type GameSettings struct {
	Boxes int `yaml:"boxes"` // Starting number of boxes
	Speed int `yaml:"speed"` // Starting ferret speed
}

// LimitsConfig bounds what the control panel will offer. These are
// presentation limits only; the game core never enforces an upper bound.
type LimitsConfig struct {
	MaxBoxes int `yaml:"max_boxes"`
	MaxSpeed int `yaml:"max_speed"`
}

// Normalize clamps the configuration into usable ranges: starting values at
// least 1 and limits no smaller than the starting values.
func (c *GameConfig) Normalize() {
	if c.Game.Boxes < 1 {
		c.Game.Boxes = 1
	}
	if c.Game.Speed < 1 {
		c.Game.Speed = 1
	}
	if c.Limits.MaxBoxes < c.Game.Boxes {
		c.Limits.MaxBoxes = c.Game.Boxes
	}
	if c.Limits.MaxSpeed < c.Game.Speed {
		c.Limits.MaxSpeed = c.Game.Speed
	}
}
