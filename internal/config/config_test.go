package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(defaultTetrisYAML, &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
timing:
  tick_rate: 30
gravity:
  table: linear
randomizer: bag
audio:
  enabled: false
`)

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Timing.TickRate)
	assert.Equal(t, GravityLinear, cfg.Gravity.Table)
	assert.Equal(t, "bag", cfg.Randomizer)
	assert.False(t, cfg.Audio.Enabled)
	// Unset keys keep their defaults.
	assert.Equal(t, 30, cfg.Timing.LineClearTicks)
	assert.Equal(t, 1.0, cfg.Gravity.SpeedMultiplier)
	assert.True(t, cfg.Display.Ghost)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "config: read")

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "timing: [oops")
	_, err = LoadTetris(bad)
	assert.ErrorContains(t, err, "config: parse")

	unknown := filepath.Join(dir, "unknown.yaml")
	writeFile(t, unknown, "gravity:\n  table: nes\n")
	_, err = LoadTetris(unknown)
	assert.ErrorContains(t, err, `unknown gravity table "nes"`)
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg, "falls back to embedded defaults")

	writeFile(t, filepath.Join(work, "configs", "tetris.yaml"), "randomizer: bag\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, "bag", cfg.Randomizer)

	writeFile(t, filepath.Join(home, ".tetris", "configs", "tetris.yaml"), "timing:\n  tick_rate: 120\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Timing.TickRate, "user config wins over ./configs")
	assert.Equal(t, "uniform", cfg.Randomizer)
}

func TestLoadTetrisSkipsMalformedUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	writeFile(t, filepath.Join(home, ".tetris", "configs", "tetris.yaml"), "timing: [oops")

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestNormalize(t *testing.T) {
	cfg := TetrisConfig{
		Timing:  TimingConfig{TickRate: -5},
		Gravity: GravityConfig{SpeedMultiplier: 0},
	}
	cfg.Normalize()

	def := DefaultTetrisConfig()
	assert.Equal(t, def.Timing, cfg.Timing)
	assert.Equal(t, def.Gravity, cfg.Gravity)
	assert.Equal(t, def.Randomizer, cfg.Randomizer)
	assert.NoError(t, cfg.Validate())
}

func TestValidateRandomizer(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Randomizer = "tgm"
	assert.ErrorContains(t, cfg.Validate(), `unknown randomizer "tgm"`)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		multiplier float64
		clearTicks int
	}{
		{DifficultyEasy, 0.75, 30},
		{DifficultyNormal, 1.0, 30},
		{DifficultyHard, 1.5, 15},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyPreset(&cfg, tt.preset)
			assert.InDelta(t, tt.multiplier, cfg.Gravity.SpeedMultiplier, 1e-9)
			assert.Equal(t, tt.clearTicks, cfg.Timing.LineClearTicks)
		})
	}
}

func TestApplyPresetScalesCustomMultiplier(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gravity.SpeedMultiplier = 2
	ApplyPreset(&cfg, DifficultyEasy)
	assert.InDelta(t, 1.5, cfg.Gravity.SpeedMultiplier, 1e-9)
}
