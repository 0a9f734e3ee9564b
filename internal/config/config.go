// Package config provides YAML-based configuration loading and difficulty
// presets for the tetris front end.
package config

import "fmt"

// Gravity tables accepted in gravity.table.
const (
	GravityGameBoy = "gameboy"
	GravityLinear  = "linear"
)

// TetrisConfig contains all tunables that live outside the rules engine.
type TetrisConfig struct {
	Timing     TimingConfig  `yaml:"timing"`
	Gravity    GravityConfig `yaml:"gravity"`
	Randomizer string        `yaml:"randomizer"` // "uniform" or "bag"
	Audio      AudioConfig   `yaml:"audio"`
	Display    DisplayConfig `yaml:"display"`
}

// TimingConfig defines the fixed-step loop and the timers the driver owns.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`        // Simulation ticks per second
	LineClearTicks int `yaml:"line_clear_ticks"` // Row flash length in 60 Hz frames
}

// GravityConfig selects the fall speed curve.
type GravityConfig struct {
	Table           string  `yaml:"table"`            // "gameboy" or "linear"
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // >1 falls faster
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	Bell    bool `yaml:"bell"` // Ring the terminal bell on audible cues
}

// DisplayConfig controls optional board decorations.
type DisplayConfig struct {
	Ghost bool `yaml:"ghost"` // Show where the piece would land
}

// Normalize replaces zero or out-of-range values with defaults so a partial
// YAML file still produces a playable configuration.
func (c *TetrisConfig) Normalize() {
	def := DefaultTetrisConfig()
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Timing.LineClearTicks <= 0 {
		c.Timing.LineClearTicks = def.Timing.LineClearTicks
	}
	if c.Gravity.Table == "" {
		c.Gravity.Table = def.Gravity.Table
	}
	if c.Gravity.SpeedMultiplier <= 0 {
		c.Gravity.SpeedMultiplier = def.Gravity.SpeedMultiplier
	}
	if c.Randomizer == "" {
		c.Randomizer = def.Randomizer
	}
}

// Validate reports the first unknown enum value.
func (c TetrisConfig) Validate() error {
	switch c.Gravity.Table {
	case GravityGameBoy, GravityLinear:
	default:
		return fmt.Errorf("config: unknown gravity table %q", c.Gravity.Table)
	}
	switch c.Randomizer {
	case "uniform", "bag":
	default:
		return fmt.Errorf("config: unknown randomizer %q", c.Randomizer)
	}
	return nil
}
