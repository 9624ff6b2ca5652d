package draw

import (
	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/vmath"
)

// eraseMarker is the preview cue for cells about to be wiped: an
// opaque blank, independent of the active paint style
var eraseMarker = core.Cell{}.
	WithChar(' ').
	WithBg(core.Color{R: 127, G: 127, B: 127, A: 255})

// Erase wipes visited cells back to the transparent default. This is a
// hard reset, not painting with a transparent style.
type Erase struct {
	Visited map[core.Point]struct{}
	Last    core.Point
}

// StartErase begins an erase stroke at p
func StartErase(p core.Point) *Erase {
	return &Erase{
		Visited: map[core.Point]struct{}{p: {}},
		Last:    p,
	}
}

// Continue interpolates the motion from the last seen coordinate to p,
// collecting every cell on the way
func (e *Erase) Continue(p core.Point) {
	if p == e.Last {
		return
	}
	vmath.Line(e.Last.X, e.Last.Y, p.X, p.Y, func(x, y int) bool {
		e.Visited[core.Point{X: x, Y: y}] = struct{}{}
		return true
	})
	e.Last = p
}

// Commit clears every visited cell; the paint style is ignored
func (e *Erase) Commit(r *core.Raster, _ core.Cell) {
	for p := range e.Visited {
		r.Clear(p)
	}
}

// Preview marks every visited cell with the erase marker
func (e *Erase) Preview(_ *core.Raster, _ core.Cell, visit func(core.Point, core.Cell)) {
	for p := range e.Visited {
		visit(p, eraseMarker)
	}
}
