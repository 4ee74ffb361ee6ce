package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history and best score",
	Long: `Display the best recorded runs, the stored best score and
aggregate statistics.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --tui
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (the best score is kept)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	title := flappy.New(registry.Deps{Store: store}).Title()

	if flagScoresClear {
		if err := store.ClearScores(flappy.GameID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, flappy.GameID, title, tickRate(), width, height)
	}

	runs, err := store.TopScores(flappy.GameID, flagScoresLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flappy play' to set the first high score!")
	} else {
		fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-8s  %s\n", "Rank", "Score", "Tier", "Time", "Played")
		fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "----", "------")

		now := time.Now()
		for i, r := range runs {
			row := tui.ScoreRow(i+1, r, tickRate(), now)
			fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-8s  %s\n", row[0], row[1], row[2], row[3], row[4])
		}
	}

	// The stored best survives a cleared history; the history covers
	// databases written before the best score was kept
	fmt.Fprintln(out)
	best, err := bestScore(store)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Best: %s\n", humanize.Comma(int64(best)))

	stats, err := store.Stats(flappy.GameID)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		played := time.Duration(stats.TotalTicks) * time.Second / time.Duration(tickRate())
		fmt.Fprintf(out, "Runs: %s  Average: %.1f  Time flown: %s  Last played: %s\n",
			humanize.Comma(int64(stats.GamesCount)),
			stats.AvgScore,
			played.Round(time.Second),
			humanize.Time(stats.LastPlayed),
		)
	}
	return nil
}

// bestScore returns the stored best, or the highest recorded run when no
// valid best is stored.
func bestScore(store *storage.Store) (int, error) {
	v, ok, err := store.Get(flappy.BestScoreKey)
	if err != nil {
		return 0, err
	}
	if ok {
		if best, convErr := strconv.Atoi(v); convErr == nil && best >= 0 {
			return best, nil
		}
	}
	return store.HighScore(flappy.GameID)
}

func tickRate() int {
	if flagFPS <= 0 {
		return 60
	}
	return flagFPS
}
