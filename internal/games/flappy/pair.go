package flappy

import "math/rand"

// ObstaclePair is a top and a bottom obstacle spawned together around one gap.
// Both halves start at the same x and scroll in lock-step.
type ObstaclePair struct {
	top       *Obstacle // OpeningDown
	bottom    *Obstacle // OpeningUp
	gapSize   float64
	gapCenter float64
}

// NewObstaclePair creates a pair at the right edge of the world with a gap
// size drawn from [GapMin, GapMax] and a gap center drawn from
// [CenterMargin, PlayableHeight-CenterMargin]. Both draws are inclusive and
// independent of any earlier pair.
func NewObstaclePair(rng *rand.Rand, geom *Geometry, assets *Assets) *ObstaclePair {
	gapSize := float64(randInclusive(rng, geom.GapMin, geom.GapMax))
	gapCenter := float64(randInclusive(rng, geom.CenterMargin, geom.PlayableHeight-geom.CenterMargin))

	x := geom.SpawnX()
	return &ObstaclePair{
		top:       NewObstacle(x, gapCenter-gapSize/2, OpeningDown, geom, assets.PipeSprite(OpeningDown)),
		bottom:    NewObstacle(x, gapCenter+gapSize/2, OpeningUp, geom, assets.PipeSprite(OpeningUp)),
		gapSize:   gapSize,
		gapCenter: gapCenter,
	}
}

// randInclusive returns a uniform integer in [lo, hi].
func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Advance scrolls both obstacles by one tick.
func (p *ObstaclePair) Advance() {
	p.top.Advance()
	p.bottom.Advance()
}

// IsAlive reports whether at least one obstacle is still on screen.
// A dead pair is retired by its queue.
func (p *ObstaclePair) IsAlive() bool {
	return !p.top.HasExpired() || !p.bottom.HasExpired()
}

// Obstacles returns the top and bottom obstacles for drawing and collision.
// Callers must not move them other than through Advance.
func (p *ObstaclePair) Obstacles() (top, bottom *Obstacle) {
	return p.top, p.bottom
}

// X returns the shared left edge of both obstacles.
func (p *ObstaclePair) X() float64 {
	return p.bottom.X()
}

// GapSize returns the vertical distance between the opening edges.
func (p *ObstaclePair) GapSize() float64 {
	return p.gapSize
}

// GapCenter returns the vertical midpoint of the gap.
func (p *ObstaclePair) GapCenter() float64 {
	return p.gapCenter
}
