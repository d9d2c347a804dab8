package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file is unreadable.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:          400,
			Height:         600,
			PlayableHeight: 520,
		},
		Obstacles: FlappyObstacles{
			Width:        52,
			Height:       400,
			ScrollSpeed:  4,
			GapMin:       150,
			GapMax:       250,
			CenterMargin: 80,
			Spawn: FlappySpawn{
				Policy:  SpawnPolicyEmpty,
				Spacing: 220,
			},
		},
		Player: FlappyPlayer{
			X:            60,
			Width:        34,
			Height:       24,
			Gravity:      0.5,
			JumpImpulse:  -8,
			MaxFallSpeed: 10,
		},
		Ground: FlappyGround{
			TileWidth: 24,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
// Both variants share one file.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy", "flappy_stream":
		return defaultFlappyYAML
	default:
		return nil
	}
}
