package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Geometry holds the world constants shared by every obstacle in a session.
// All values are world units; ScrollSpeed is units per tick.
type Geometry struct {
	WorldWidth     int
	WorldHeight    int
	PlayableHeight int // Height above the ground strip

	ObstacleWidth  int
	ObstacleHeight int
	ScrollSpeed    float64

	GapMin       int // Smallest gap between a pair's opening edges
	GapMax       int // Largest gap between a pair's opening edges
	CenterMargin int // Minimum distance of a gap center from the playable edges
}

// GeometryFromConfig extracts the obstacle geometry from a game config.
func GeometryFromConfig(cfg config.FlappyConfig) Geometry {
	return Geometry{
		WorldWidth:     cfg.World.Width,
		WorldHeight:    cfg.World.Height,
		PlayableHeight: cfg.World.PlayableHeight,
		ObstacleWidth:  cfg.Obstacles.Width,
		ObstacleHeight: cfg.Obstacles.Height,
		ScrollSpeed:    cfg.Obstacles.ScrollSpeed,
		GapMin:         cfg.Obstacles.GapMin,
		GapMax:         cfg.Obstacles.GapMax,
		CenterMargin:   cfg.Obstacles.CenterMargin,
	}
}

// SpawnX is where new obstacles enter: the right edge of the world.
func (g *Geometry) SpawnX() float64 {
	return float64(g.WorldWidth)
}

// Orientation tells which way an obstacle's opening faces.
type Orientation int

const (
	// OpeningUp is a bottom obstacle whose mouth faces up into the gap.
	OpeningUp Orientation = iota + 1
	// OpeningDown is a top obstacle whose mouth faces down into the gap.
	OpeningDown
)

// Valid reports whether o is one of the two defined orientations.
func (o Orientation) Valid() bool {
	return o == OpeningUp || o == OpeningDown
}

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case OpeningUp:
		return "OpeningUp"
	case OpeningDown:
		return "OpeningDown"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Obstacle is a single rectangular pipe scrolling toward the left edge.
type Obstacle struct {
	orientation Orientation
	x           float64 // Left edge
	top         float64 // Top edge of the body
	geom        *Geometry
	sprite      *Sprite
}

// NewObstacle creates an obstacle whose left edge is at x and whose opening
// edge is at gapEdgeY. Panics on an invalid orientation.
func NewObstacle(x, gapEdgeY float64, o Orientation, geom *Geometry, sprite *Sprite) *Obstacle {
	if !o.Valid() {
		panic("flappy: invalid obstacle orientation " + o.String())
	}
	ob := &Obstacle{
		orientation: o,
		x:           x,
		geom:        geom,
		sprite:      sprite,
	}
	ob.SetGapEdgeY(gapEdgeY)
	return ob
}

// Orientation returns which way the opening faces.
func (o *Obstacle) Orientation() Orientation {
	return o.orientation
}

// X returns the left edge.
func (o *Obstacle) X() float64 {
	return o.x
}

// GapEdgeY returns the y of the opening edge: the top edge for OpeningUp,
// the bottom edge for OpeningDown.
func (o *Obstacle) GapEdgeY() float64 {
	if o.orientation == OpeningUp {
		return o.top
	}
	return o.top + float64(o.geom.ObstacleHeight)
}

// SetGapEdgeY moves the obstacle vertically so its opening edge sits at y.
func (o *Obstacle) SetGapEdgeY(y float64) {
	if o.orientation == OpeningUp {
		o.top = y
		return
	}
	o.top = y - float64(o.geom.ObstacleHeight)
}

// Advance scrolls the obstacle left by one tick. Expired obstacles stay put.
func (o *Obstacle) Advance() {
	if o.HasExpired() {
		return
	}
	o.x -= o.geom.ScrollSpeed
}

// HasExpired reports whether the obstacle has fully left the visible area.
func (o *Obstacle) HasExpired() bool {
	return o.x+float64(o.geom.ObstacleWidth) < 0
}

// Bounds returns the obstacle's world-space bounding box.
func (o *Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.x, o.top, float64(o.geom.ObstacleWidth), float64(o.geom.ObstacleHeight))
}

// Sprite returns the shared sprite this obstacle is drawn with.
func (o *Obstacle) Sprite() *Sprite {
	return o.sprite
}
