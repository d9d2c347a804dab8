package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game variant",
	Long: `Start playing. Without an argument the classic variant starts.

Controls:
  Space/Up   - Flap (also starts the run)
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play flappy_stream
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log ./flappy.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write a log of the session to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every spawned pair")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flappy list' to see variants", gameID)
	}

	// Game.Reset falls back to defaults silently, so a broken file is
	// reported here instead
	if _, err := config.LoadFlappy(flagConfig); err != nil {
		return err
	}
	flappy.SetConfigPath(flagConfig)

	logger, closeLog, err := openLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "game", gameID, "seed", flagSeed, "fps", flagFPS)
	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:     store,
		Logger:    logger,
		FixedSeed: flagSeed != 0,
	})
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLogger returns a file logger, or a discarding one when path is empty.
// The alternate screen owns the terminal, so logs never go to stderr here.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
