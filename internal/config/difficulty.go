package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset accepts a preset name case-insensitively. The empty string
// means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// MultiplierForPreset returns the gravity speed multiplier for a preset.
func MultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyPreset scales the configured gravity by the preset's multiplier.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if cfg.Gravity.SpeedMultiplier <= 0 {
		cfg.Gravity.SpeedMultiplier = 1.0
	}
	cfg.Gravity.SpeedMultiplier *= MultiplierForPreset(preset)

	// Hard mode also shortens the row flash.
	if preset == DifficultyHard && cfg.Timing.LineClearTicks > 1 {
		cfg.Timing.LineClearTicks /= 2
	}
}
