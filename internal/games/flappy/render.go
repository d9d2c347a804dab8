package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// groundFill is drawn below the ground's top row.
const groundFill = '░'

// Render draws the current game state to the screen.
// The fixed-size world is stretched over whatever the screen size is.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.queue == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sx := float64(dst.Width()) / float64(g.geom.WorldWidth)
	sy := float64(dst.Height()) / float64(g.geom.WorldHeight)

	for _, o := range g.queue.Obstacles() {
		drawObstacle(dst, o, sx, sy)
	}
	g.drawGround(dst, sx, sy)
	g.drawPlayer(dst, sx, sy)

	// Draw HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score.Score()), core.ColorWhite)

	switch g.phase {
	case core.PhaseReady:
		g.drawCenteredMessage(dst, g.title, "Press Space to start")
	case core.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Score()))
	}
}

// drawObstacle fills the obstacle's cells and marks its mouth row.
func drawObstacle(dst *core.Screen, o *Obstacle, sx, sy float64) {
	cells := o.Bounds().ToCells(sx, sy)
	if cells.Empty() {
		return
	}
	sp := o.Sprite()
	dst.DrawRect(cells, sp.Body, sp.Color)

	mouthY := cells.Y
	if o.Orientation() == OpeningDown {
		mouthY = cells.Bottom() - 1
	}
	for x := cells.X; x < cells.Right(); x++ {
		dst.SetColored(x, mouthY, sp.Edge, sp.EdgeColor)
	}
}

// drawGround draws the tiled top row, scrolled by the ground offset, and
// fills the rows beneath it.
func (g *Game) drawGround(dst *core.Screen, sx, sy float64) {
	sp := &g.assets.Ground
	cells := g.ground.Bounds().ToCells(sx, sy)
	top := core.Clamp(cells.Y, 0, dst.Height()-1)

	tileCells := max(1, int(math.Round(g.ground.tile*sx)))
	shift := int(g.ground.Offset() * sx)
	for x := 0; x < dst.Width(); x++ {
		if (x+shift)%tileCells == 0 {
			dst.SetColored(x, top, sp.Edge, sp.EdgeColor)
		} else {
			dst.SetColored(x, top, sp.Body, sp.Color)
		}
	}
	dst.DrawRect(core.NewRect(0, top+1, dst.Width(), dst.Height()-top-1), groundFill, core.ColorGray)
}

// drawPlayer draws the bird with its beak on the top-right cell.
func (g *Game) drawPlayer(dst *core.Screen, sx, sy float64) {
	sp := &g.assets.Bird
	cells := g.player.Bounds().ToCells(sx, sy)
	dst.DrawRect(cells, sp.Body, sp.Color)
	dst.SetColored(cells.Right()-1, cells.Y, sp.Edge, sp.EdgeColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
