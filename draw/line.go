package draw

import (
	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/vmath"
)

// Line is a straight stroke between two endpoints. Dragging moves the
// end point; only the final endpoints matter at commit.
type Line struct {
	From core.Point
	To   core.Point
}

// StartLine begins a line with both endpoints at p
func StartLine(p core.Point) *Line {
	return &Line{From: p, To: p}
}

// Continue moves the end point to p
func (e *Line) Continue(p core.Point) {
	e.To = p
}

// Commit applies style once to every cell on the line, both endpoints
// included
func (e *Line) Commit(r *core.Raster, style core.Cell) {
	vmath.Line(e.From.X, e.From.Y, e.To.X, e.To.Y, func(x, y int) bool {
		r.Set(core.Point{X: x, Y: y}, style)
		return true
	})
}

// Preview reports every cell on the line with style composed onto the
// raster's current content
func (e *Line) Preview(r *core.Raster, style core.Cell, visit func(core.Point, core.Cell)) {
	vmath.Line(e.From.X, e.From.Y, e.To.X, e.To.Y, func(x, y int) bool {
		p := core.Point{X: x, Y: y}
		visit(p, core.Compose(r.Get(p), style))
		return true
	})
}
