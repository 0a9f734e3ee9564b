// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play a game (same as "tetris play")
//	tetris play              - Play a game
//	tetris scores [mode]     - Browse high scores
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: config timing.tick_rate)
//	--seed <value>        - RNG seed for reproducible piece sequences
//	--db <path>           - Database path (default: ~/.tetris/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--randomizer <name>   - uniform or bag
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Start with sound cues off
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagRandomizer string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Running tetris with no command starts a game.

Available commands:
  play     - Play a game
  scores   - Browse high scores
  serve    - Start SSH server for remote play

Examples:
  tetris
  tetris --difficulty hard --randomizer bag
  tetris scores bag
  tetris serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = config timing.tick_rate)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagRandomizer, "randomizer", "", "Piece randomizer: uniform, bag (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound cues")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// gameOptions carries the flag values that shape the game config.
type gameOptions struct {
	ConfigPath string
	Difficulty string
	Randomizer string
	FPS        int
	Mute       bool
}

func flagGameOptions() gameOptions {
	return gameOptions{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Randomizer: flagRandomizer,
		FPS:        flagFPS,
		Mute:       flagMute,
	}
}

// loadGameConfig loads the config file and layers the flags on top.
func loadGameConfig(opts gameOptions) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if opts.Randomizer != "" {
		cfg.Randomizer = opts.Randomizer
	}
	if opts.FPS > 0 {
		cfg.Timing.TickRate = opts.FPS
	}
	if opts.Mute {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

// newLogger builds a logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           lvl,
	}), nil
}

// openLogFile opens ~/.tetris/tetris.log for appending. The alt screen owns
// the terminal while playing, so local games log there.
func openLogFile() (*os.File, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("log: cannot create %s: %w", dir, err)
	}
	path := filepath.Join(dir, "tetris.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}
	return f, nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
