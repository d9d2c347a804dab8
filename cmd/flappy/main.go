// flappy plays a Flappy Bird-style game in the terminal.
//
// Usage:
//
//	flappy list              - List game variants
//	flappy play [variant]    - Play a variant (default: flappy)
//	flappy menu              - Pick variants interactively
//	flappy serve             - Start SSH server for remote play
//	flappy scores [variant]  - Show high scores
//	flappy config            - Print or install the game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.tui-flappy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register game variants
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const defaultGameID = "flappy"

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - steer a bird through pipes in your terminal",
	Long: `Flappy is a terminal take on the classic pipe-dodging game.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print or install the game config

Examples:
  flappy play
  flappy play flappy_stream --seed 42
  flappy serve --ssh :2222
  flappy scores --tui`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-flappy/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
