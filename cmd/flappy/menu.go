package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in menu mode. After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Play
  Tab          - High scores
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagLogFile, "log", "", "Write a log of the session to this file")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := config.LoadFlappy(flagConfig); err != nil {
		return err
	}
	flappy.SetConfigPath(flagConfig)

	logger, closeLog, err := openLogger(flagLogFile, false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return err
			}
			if err := tui.Run(game, cfg, tui.Options{
				Store:     store,
				Logger:    logger,
				FixedSeed: flagSeed != 0,
			}); err != nil {
				return err
			}
		}
	}
}
