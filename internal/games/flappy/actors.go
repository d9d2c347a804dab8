package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player is the bird: fixed x, vertical motion under gravity.
type Player struct {
	x, y    float64 // Top-left corner
	w, h    float64
	vel     float64 // Vertical velocity, positive is down
	gravity float64
	jump    float64
	maxFall float64
}

// NewPlayer places the player at its configured x, vertically centered in
// the playable area.
func NewPlayer(cfg config.FlappyPlayer, playableHeight int) Player {
	return Player{
		x:       float64(cfg.X),
		y:       (float64(playableHeight) - float64(cfg.Height)) / 2,
		w:       float64(cfg.Width),
		h:       float64(cfg.Height),
		gravity: cfg.Gravity,
		jump:    cfg.JumpImpulse,
		maxFall: cfg.MaxFallSpeed,
	}
}

// Flap replaces the current velocity with the jump impulse.
func (p *Player) Flap() {
	p.vel = p.jump
}

// Advance applies one tick of gravity and motion. The ceiling stops the
// player without ending the run.
func (p *Player) Advance() {
	p.vel = math.Min(p.vel+p.gravity, p.maxFall)
	p.y += p.vel
	if p.y < 0 {
		p.y = 0
		p.vel = 0
	}
}

// Bounds returns the player's world-space hitbox.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.x, p.y, p.w, p.h)
}

// Ground is the strip below the playable area. It scrolls at the obstacle
// speed; only its tile phase changes.
type Ground struct {
	offset float64 // Scroll phase in [0, tile)
	tile   float64
	speed  float64
	bounds core.RectF
}

// NewGround creates the ground strip for the given world.
func NewGround(geom *Geometry, tileWidth int) Ground {
	return Ground{
		tile:  float64(tileWidth),
		speed: geom.ScrollSpeed,
		bounds: core.NewRectF(0, float64(geom.PlayableHeight),
			float64(geom.WorldWidth), float64(geom.WorldHeight-geom.PlayableHeight)),
	}
}

// Advance scrolls the tile pattern by one tick.
func (g *Ground) Advance() {
	g.offset = math.Mod(g.offset+g.speed, g.tile)
}

// Offset returns the current scroll phase in world units.
func (g *Ground) Offset() float64 {
	return g.offset
}

// Bounds returns the ground's world-space area.
func (g *Ground) Bounds() core.RectF {
	return g.bounds
}

// ScoreTracker turns the queue's monotonically increasing pair counter into
// a score that grows by one for each observed increase.
type ScoreTracker struct {
	seen  int
	score int
}

// Observe records the latest pair count and reports whether the score moved.
func (s *ScoreTracker) Observe(pairCount int) bool {
	if pairCount <= s.seen {
		return false
	}
	s.seen = pairCount
	s.score++
	return true
}

// Score returns the current score.
func (s *ScoreTracker) Score() int {
	return s.score
}
