package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
}

func TestLoadGameConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := loadGameConfig(gameOptions{})
	if err != nil {
		t.Fatalf("loadGameConfig: %v", err)
	}
	if cfg != config.DefaultTetrisConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadGameConfigFlagsOverride(t *testing.T) {
	isolate(t)

	cfg, err := loadGameConfig(gameOptions{
		Difficulty: "easy",
		Randomizer: "bag",
		FPS:        30,
		Mute:       true,
	})
	if err != nil {
		t.Fatalf("loadGameConfig: %v", err)
	}
	if cfg.Randomizer != "bag" {
		t.Errorf("randomizer = %q", cfg.Randomizer)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("tick rate = %d", cfg.Timing.TickRate)
	}
	if cfg.Audio.Enabled {
		t.Error("audio still enabled with mute")
	}
	if cfg.Gravity.SpeedMultiplier != 0.75 {
		t.Errorf("multiplier = %v, want 0.75", cfg.Gravity.SpeedMultiplier)
	}
}

func TestLoadGameConfigErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		opts gameOptions
	}{
		{"bad difficulty", gameOptions{Difficulty: "insane"}},
		{"bad randomizer", gameOptions{Randomizer: "seven"}},
		{"missing file", gameOptions{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadGameConfig(tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}

	if _, err := newLogger(&buf, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store, "bag", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty output %q", buf.String())
	}

	for _, rec := range []storage.ScoreRecord{
		{Mode: "bag", Score: 800, Lines: 4, Level: 1},
		{Mode: "bag", Score: 1200, Lines: 9, Level: 1},
		{Mode: "uniform", Score: 5000, Lines: 30, Level: 4},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	buf.Reset()
	if err := printScores(&buf, store, "bag", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "5000") {
		t.Error("other mode leaked into output")
	}
	if strings.Index(out, "1200") > strings.Index(out, "800") {
		t.Error("scores not sorted")
	}
	if !strings.Contains(out, "Best: 1200  Games: 2") {
		t.Errorf("missing stats line:\n%s", out)
	}
}

func TestOpenLogFile(t *testing.T) {
	isolate(t)

	f, err := openLogFile()
	if err != nil {
		t.Fatalf("openLogFile: %v", err)
	}
	f.Close()

	if _, err := os.Stat(filepath.Join(os.Getenv("HOME"), ".tetris", "tetris.log")); err != nil {
		t.Errorf("log file missing: %v", err)
	}
}
