package draw

import (
	"github.com/lixenwraith/grid-painter/core"
)

// Fill is a flood fill from a seed coordinate. The region is never
// stored; it is recomputed against the raster at commit time, so
// dragging just moves the seed.
type Fill struct {
	Seed core.Point
}

// StartFill begins a fill seeded at p
func StartFill(p core.Point) *Fill {
	return &Fill{Seed: p}
}

// Continue moves the seed to p
func (e *Fill) Continue(p core.Point) {
	e.Seed = p
}

// Commit applies style once to every cell structurally equal to and
// 4-connected with the seed's cell
func (e *Fill) Commit(r *core.Raster, style core.Cell) {
	// Collect the region before writing; composing while exploring
	// would change the equality the fill is matching against
	for _, p := range r.FloodFill(e.Seed) {
		r.Set(p, style)
	}
}

// Preview reports the fill region with style composed onto each cell
func (e *Fill) Preview(r *core.Raster, style core.Cell, visit func(core.Point, core.Cell)) {
	for _, p := range r.FloodFill(e.Seed) {
		visit(p, core.Compose(r.Get(p), style))
	}
}
