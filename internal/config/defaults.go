package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration used when no YAML
// file can be read.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickRate:       60,
			LineClearTicks: 30,
		},
		Gravity: GravityConfig{
			Table:           GravityGameBoy,
			SpeedMultiplier: 1.0,
		},
		Randomizer: "uniform",
		Audio: AudioConfig{
			Enabled: true,
			Bell:    false,
		},
		Display: DisplayConfig{
			Ghost: true,
		},
	}
}
