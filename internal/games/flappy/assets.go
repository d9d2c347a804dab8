package flappy

import (
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sprite describes how one kind of entity is drawn in the terminal.
type Sprite struct {
	Body      rune       // Fill for the entity's area
	Edge      rune       // Glyph for the distinguished edge (pipe mouth, bird beak)
	Color     core.Color // Body color
	EdgeColor core.Color // Edge color
}

// Assets is the table of sprites shared by every entity in every session.
// It is built once and never modified afterwards.
type Assets struct {
	PipeUp   Sprite // Bottom pipe, mouth on top
	PipeDown Sprite // Top pipe, mouth at the bottom
	Bird     Sprite
	Ground   Sprite
}

var (
	assetsOnce sync.Once
	assets     *Assets
)

// DefaultAssets returns the process-wide sprite table.
func DefaultAssets() *Assets {
	assetsOnce.Do(func() {
		assets = &Assets{
			PipeUp: Sprite{
				Body:      '█',
				Edge:      '▀',
				Color:     core.ColorGreen,
				EdgeColor: core.ColorBrightGreen,
			},
			PipeDown: Sprite{
				Body:      '█',
				Edge:      '▄',
				Color:     core.ColorGreen,
				EdgeColor: core.ColorBrightGreen,
			},
			Bird: Sprite{
				Body:      '●',
				Edge:      '▶',
				Color:     core.ColorBrightYellow,
				EdgeColor: core.ColorOrange,
			},
			Ground: Sprite{
				Body:      '═',
				Edge:      '╪',
				Color:     core.ColorYellow,
				EdgeColor: core.ColorOrange,
			},
		}
	})
	return assets
}

// PipeSprite returns the sprite for an obstacle of the given orientation.
func (a *Assets) PipeSprite(o Orientation) *Sprite {
	switch o {
	case OpeningUp:
		return &a.PipeUp
	case OpeningDown:
		return &a.PipeDown
	default:
		panic("flappy: invalid obstacle orientation " + o.String())
	}
}
