package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best runs for a variant (default: flappy).

Examples:
  flappy scores
  flappy scores flappy_stream --limit 20
  flappy scores --tui
  flappy scores flappy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flappy list' to see variants", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintf(out, "Play 'flappy play %s' to set the first high score!\n", gameID)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Rank\tScore\tPairs\tPlayer\tDate")
	fmt.Fprintln(w, "  ----\t-----\t-----\t------\t----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %d\t%d\t%d\t%s\t%s\n", i+1, r.Score, r.Pairs, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Fprintf(out, "\nBest: %d  Runs: %d  Avg: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}
