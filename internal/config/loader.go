package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appDir is the per-user directory holding configs, scores and keys.
const appDir = ".tui-flappy"

// LoadFlappy loads Flappy configuration and validates it.
// Search order: customPath -> ~/.tui-flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first; failures here are reported, not skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFlappy(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return FlappyConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{
		UserPath("configs", "flappy.yaml"),
		filepath.Join("configs", "flappy.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseFlappy(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseFlappy(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFlappy decodes YAML on top of the hardcoded defaults.
func parseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// UserPath joins elems under ~/.tui-flappy, or returns empty if home is unavailable.
func UserPath(elems ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, appDir}, elems...)...)
}

// Validate checks that the configuration describes a playable world.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w, o, p := c.World, c.Obstacles, c.Player

	check(w.Width > 0, "world.width must be positive, got %d", w.Width)
	check(w.Height > 0, "world.height must be positive, got %d", w.Height)
	check(w.PlayableHeight > 0 && w.PlayableHeight <= w.Height,
		"world.playable_height must be in (0, %d], got %d", w.Height, w.PlayableHeight)

	check(o.Width > 0, "obstacles.width must be positive, got %d", o.Width)
	check(o.Height > 0, "obstacles.height must be positive, got %d", o.Height)
	check(o.ScrollSpeed > 0, "obstacles.scroll_speed must be positive, got %g", o.ScrollSpeed)
	check(o.GapMin > 0, "obstacles.gap_min must be positive, got %d", o.GapMin)
	check(o.GapMax >= o.GapMin, "obstacles.gap_max (%d) must not be below gap_min (%d)", o.GapMax, o.GapMin)
	check(o.CenterMargin >= 0, "obstacles.center_margin must not be negative, got %d", o.CenterMargin)
	check(w.PlayableHeight-o.CenterMargin >= o.CenterMargin,
		"obstacles.center_margin %d leaves no room for gap centers in playable height %d",
		o.CenterMargin, w.PlayableHeight)

	switch o.Spawn.Policy {
	case SpawnPolicyEmpty:
	case SpawnPolicyDistance:
		check(o.Spawn.Spacing > 0, "obstacles.spawn.spacing must be positive, got %d", o.Spawn.Spacing)
	default:
		errs = append(errs, fmt.Errorf("obstacles.spawn.policy: unknown policy %q", o.Spawn.Policy))
	}

	check(p.Width > 0 && p.Height > 0, "player size must be positive, got %dx%d", p.Width, p.Height)
	check(p.X >= 0 && p.X+p.Width <= w.Width, "player.x %d puts the player outside the world", p.X)
	check(p.MaxFallSpeed > 0, "player.max_fall_speed must be positive, got %g", p.MaxFallSpeed)

	check(c.Ground.TileWidth > 0, "ground.tile_width must be positive, got %d", c.Ground.TileWidth)

	return errors.Join(errs...)
}
