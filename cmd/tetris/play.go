package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/session"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls:
  ←/→ or A/D     - Move
  ↓ or S         - Soft drop
  Space          - Hard drop
  ↑/X and Z      - Rotate clockwise / counter-clockwise
  P/Esc          - Pause
  Enter/R        - Restart (after game over)
  G              - Toggle ghost piece
  M              - Mute
  Tab            - High scores (while paused or after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower gravity
  normal - Standard speed
  hard   - Faster gravity and shorter line clears

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --randomizer bag --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(flagGameOptions())
	if err != nil {
		exitf("%v", err)
	}

	var logOut io.Writer = io.Discard
	if f, fileErr := openLogFile(); fileErr == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", fileErr)
	}
	logger, err := newLogger(logOut, flagLogLevel)
	if err != nil {
		exitf("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	player := audio.NewPlayer(audio.Options{
		Enabled: cfg.Audio.Enabled,
		Bell:    cfg.Audio.Bell,
		Out:     os.Stderr,
		Logger:  logger,
	})
	sess := session.New(session.Options{
		Config: cfg,
		Logger: logger,
		Audio:  player,
	})

	runErr := tui.Run(tui.Options{
		Session: sess,
		Store:   store,
		Logger:  logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
