// Package config provides YAML-based game configuration loading and
// validation.
package config

// Spawn policy names accepted in obstacles.spawn.policy.
const (
	SpawnPolicyEmpty    = "empty"
	SpawnPolicyDistance = "distance"
)

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
	Ground    FlappyGround    `yaml:"ground"`
}

// FlappyWorld defines the fixed world geometry the simulation runs in.
type FlappyWorld struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	PlayableHeight int `yaml:"playable_height"`
}

// FlappyObstacles defines obstacle geometry and generation parameters.
type FlappyObstacles struct {
	Width        int         `yaml:"width"`
	Height       int         `yaml:"height"`
	ScrollSpeed  float64     `yaml:"scroll_speed"`
	GapMin       int         `yaml:"gap_min"`
	GapMax       int         `yaml:"gap_max"`
	CenterMargin int         `yaml:"center_margin"`
	Spawn        FlappySpawn `yaml:"spawn"`
}

// FlappySpawn selects when new obstacle pairs enter the screen.
type FlappySpawn struct {
	Policy  string `yaml:"policy"`
	Spacing int    `yaml:"spacing"`
}

// FlappyPlayer defines player geometry and vertical motion.
type FlappyPlayer struct {
	X            int     `yaml:"x"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// FlappyGround defines the scrolling ground strip.
type FlappyGround struct {
	TileWidth int `yaml:"tile_width"`
}
