// Package flappy implements a Flappy Bird-style game.
// The player steers a bird through gaps in a stream of pipe pairs while the
// ground scrolls underneath.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Flappy game logic.
type Game struct {
	id     string
	title  string
	stream bool                 // Force the distance spawn policy
	preset *config.FlappyConfig // Used instead of loading from disk when set

	cfg       config.FlappyConfig
	geom      Geometry
	assets    *Assets
	queue     *ObstacleQueue
	player    Player
	ground    Ground
	score     ScoreTracker
	phase     core.Phase
	tickCount int
}

// New creates the classic game: a new pair only once the screen is clear.
func New() *Game {
	return &Game{id: "flappy", title: "Flappy"}
}

// NewStream creates the variant where pairs arrive at a fixed spacing.
func NewStream() *Game {
	return &Game{id: "flappy_stream", title: "Flappy Stream", stream: true}
}

// NewWithConfig creates a classic game that always uses cfg.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	g := New()
	g.preset = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	var cfg config.FlappyConfig
	if g.preset != nil {
		cfg = *g.preset
	} else {
		loaded, err := config.LoadFlappy(configPath)
		if err != nil {
			loaded = config.DefaultFlappyConfig()
		}
		cfg = loaded
	}
	if g.stream {
		cfg.Obstacles.Spawn.Policy = config.SpawnPolicyDistance
	}

	g.cfg = cfg
	g.geom = GeometryFromConfig(cfg)
	g.assets = DefaultAssets()
	g.player = NewPlayer(cfg.Player, cfg.World.PlayableHeight)
	g.ground = NewGround(&g.geom, cfg.Ground.TileWidth)
	g.score = ScoreTracker{}
	g.phase = core.PhaseReady
	g.tickCount = 0

	// The queue keeps a pointer to g.geom, so it is rebuilt with it
	g.queue = NewObstacleQueue(runtime.Seed, &g.geom, g.assets, PolicyFromConfig(cfg.Obstacles.Spawn))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case core.PhaseGameOver:
		return core.StepResult{State: g.State()}
	case core.PhaseReady:
		if !in.Has(core.ActionJump) {
			return core.StepResult{State: g.State()}
		}
		g.phase = core.PhasePlaying
		events = append(events, core.Event{Kind: core.EventStarted})
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.phase == core.PhasePaused {
			g.phase = core.PhasePlaying
		} else {
			g.phase = core.PhasePaused
		}
	}
	if g.phase == core.PhasePaused {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tickCount++

	if in.Has(core.ActionJump) {
		g.player.Flap()
	}
	g.player.Advance()
	g.ground.Advance()
	g.queue.Update()

	if g.score.Observe(g.queue.PairCount()) {
		events = append(events, core.Event{Kind: core.EventScored, Value: g.score.Score()})
	}

	if g.crashed() {
		g.phase = core.PhaseGameOver
		events = append(events, core.Event{Kind: core.EventCrashed, Value: g.score.Score()})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// crashed reports whether the player touches the ground or any obstacle.
func (g *Game) crashed() bool {
	hitbox := g.player.Bounds()
	if hitbox.Bottom() >= float64(g.geom.PlayableHeight) {
		return true
	}
	for _, o := range g.queue.Obstacles() {
		if hitbox.Intersects(o.Bounds()) {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score.Score(),
		Phase: g.phase,
	}
}

// PairsSpawned returns how many obstacle pairs this run has produced.
func (g *Game) PairsSpawned() int {
	if g.queue == nil {
		return 0
	}
	return g.queue.PairCount()
}

// Ticks returns how many ticks the current run has simulated.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Register the game variants with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
	registry.Register("flappy_stream", func() registry.Game {
		return NewStream()
	})
}
