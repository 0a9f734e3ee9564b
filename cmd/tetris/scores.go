package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Browse high scores",
	Long: `Browse saved runs. Scores are grouped by mode, the piece randomizer the
game was played with (uniform or bag).

Without --plain an interactive scoreboard opens; tab switches modes.

Examples:
  tetris scores
  tetris scores bag
  tetris scores --plain
  tetris scores uniform --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete saved runs for the mode (all modes if none given)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		n, clearErr := store.ClearScores(mode)
		if clearErr != nil {
			store.Close()
			exitf("%v", clearErr)
		}
		fmt.Printf("Removed %d run(s) from %s.\n", n, modeLabel(mode))

	case flagPlain:
		if printErr := printScores(os.Stdout, store, mode, flagLimit); printErr != nil {
			store.Close()
			exitf("%v", printErr)
		}

	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if runErr := tui.RunScoreboard(store, mode, width, height); runErr != nil {
			store.Close()
			exitf("running scoreboard: %v", runErr)
		}
	}
}

func modeLabel(mode string) string {
	if mode == "" {
		return "all modes"
	}
	return "mode " + mode
}

// printScores writes the top runs and aggregate stats for mode.
func printScores(w io.Writer, store *storage.Store, mode string, limit int) error {
	scores, err := store.TopScores(mode, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", modeLabel(mode))
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'tetris' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-10s  %-5s  %-5s  %s\n", "Rank", "Mode", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-10s  %-5s  %-5s  %s\n", "----", "----", "-----", "-----", "-----", "----")
	for i, s := range scores {
		fmt.Fprintf(w, "  %-4d  %-8s  %-10d  %-5d  %-5d  %s\n",
			i+1, s.Mode, s.Score, s.Lines, s.Level, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats(mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Games: %d  Average: %.0f  Lines: %d\n",
		st.HighScore, st.Games, st.AvgScore, st.TotalLines)
	return nil
}
