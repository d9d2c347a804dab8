package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	flagConfigWrite bool
	flagConfigForce bool
	flagConfigCheck string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print, install or check the game config",
	Long: `Without flags, prints the built-in config YAML.

Examples:
  flappy config > my-flappy.yaml
  flappy config --write          # Install to ~/.tui-flappy/configs/flappy.yaml
  flappy config --check ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the defaults to the user config directory")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing user config with --write")
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate a config file and exit")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagConfigCheck != "" {
		if _, err := config.LoadFlappy(flagConfigCheck); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s is valid.\n", flagConfigCheck)
		return nil
	}

	data := config.GetDefaultYAML(defaultGameID)
	if !flagConfigWrite {
		_, err := out.Write(data)
		return err
	}

	path := config.UserPath("configs", "flappy.yaml")
	if path == "" {
		return errors.New("cannot resolve home directory")
	}
	if _, err := os.Stat(path); err == nil && !flagConfigForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
