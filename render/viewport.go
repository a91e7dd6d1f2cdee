package render

import (
	"math"

	"github.com/lixenwraith/skullblast/physics"
	"github.com/lixenwraith/skullblast/vmath"
)

// HUDRows is the number of rows reserved for the status bar
const HUDRows = 1

// cellAspect is terminal cell height over width
const cellAspect = 2.0

// Viewport maps play-area coordinates onto terminal cells, preserving aspect
type Viewport struct {
	Scale      float64 // World units per column
	OffsetX    int
	OffsetY    int
	Cols, Rows int
}

// NewViewport fits area into a cols x rows screen below the HUD
func NewViewport(area physics.Area, cols, rows int) Viewport {
	usable := max(rows-HUDRows, 1)
	cols = max(cols, 1)

	s := math.Max(area.Width/float64(cols), area.Height/(cellAspect*float64(usable)))
	if s <= 0 {
		s = 1
	}
	w := int(math.Ceil(area.Width / s))
	h := int(math.Ceil(area.Height / (cellAspect * s)))

	return Viewport{
		Scale:   s,
		OffsetX: max((cols-w)/2, 0),
		OffsetY: HUDRows + max((usable-h)/2, 0),
		Cols:    cols,
		Rows:    rows,
	}
}

// ToCell returns the cell containing p, ok false when off screen
func (v Viewport) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	x = v.OffsetX + int(math.Floor(p.X/v.Scale))
	y = v.OffsetY + int(math.Floor(p.Y/(cellAspect*v.Scale)))
	ok = x >= 0 && x < v.Cols && y >= HUDRows && y < v.Rows
	return x, y, ok
}

// CellSpan returns how many columns a world length covers, at least 1
func (v Viewport) CellSpan(length float64) int {
	return max(int(length/v.Scale), 1)
}
