package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// arrows go clockwise from east, the world y axis points down like the terminal rows.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

const obstacleRune = 'O'

var (
	boidStyle     = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// arrowFor picks the glyph closest to heading, in degrees.
func arrowFor(heading float64) rune {
	if math.IsNaN(heading) {
		return arrows[0]
	}
	i := int(math.Round(heading/45)) % len(arrows)
	if i < 0 {
		i += len(arrows)
	}
	return arrows[i]
}

// Viewport maps world coordinates onto a cols x rows grid of cells.
type Viewport struct {
	WorldWidth, WorldHeight float64
	Cols, Rows              int
}

// Cell returns the cell containing pos. Positions outside the world are clamped.
func (v Viewport) Cell(pos geometry.Vector2D) (int, int) {
	x := int(pos.X / v.WorldWidth * float64(v.Cols))
	y := int(pos.Y / v.WorldHeight * float64(v.Rows))
	return clampInt(x, 0, v.Cols-1), clampInt(y, 0, v.Rows-1)
}

// World returns the world position at the center of a cell.
func (v Viewport) World(x, y int) geometry.Vector2D {
	return geometry.Vector2D{
		X: (float64(x) + 0.5) * v.WorldWidth / float64(v.Cols),
		Y: (float64(y) + 0.5) * v.WorldHeight / float64(v.Rows),
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
