package draw

import (
	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/vmath"
)

// Pencil is a freehand stroke. Each visited cell carries a visit
// count; passing over a cell again composites the style onto it again,
// so translucent ink builds up. Counts never reach zero.
type Pencil struct {
	Counts map[core.Point]int
	Last   core.Point
}

// StartPencil begins a stroke at p with a single visit
func StartPencil(p core.Point) *Pencil {
	return &Pencil{
		Counts: map[core.Point]int{p: 1},
		Last:   p,
	}
}

// Continue interpolates the motion from the last seen coordinate to p,
// counting every cell strictly after the last coordinate up to and
// including p
func (e *Pencil) Continue(p core.Point) {
	if p == e.Last {
		return
	}
	from := e.Last
	vmath.Line(from.X, from.Y, p.X, p.Y, func(x, y int) bool {
		q := core.Point{X: x, Y: y}
		if q != from {
			e.Counts[q]++
		}
		return true
	})
	e.Last = p
}

// Commit applies style once per recorded visit. Repeated
// self-composition is deliberate: N translucent passes darken more
// than one, matching what the live preview showed.
func (e *Pencil) Commit(r *core.Raster, style core.Cell) {
	for p, n := range e.Counts {
		for i := 0; i < n; i++ {
			r.Set(p, style)
		}
	}
}

// Preview reports each recorded cell with the style composed onto the
// raster's current content once per visit
func (e *Pencil) Preview(r *core.Raster, style core.Cell, visit func(core.Point, core.Cell)) {
	for p, n := range e.Counts {
		c := r.Get(p)
		for i := 0; i < n; i++ {
			c = core.Compose(c, style)
		}
		visit(p, c)
	}
}
