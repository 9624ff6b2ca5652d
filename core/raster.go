package core

import "fmt"

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Raster is a fixed-size 2D grid of composited cells. Dimensions are
// set at construction and never change. Writes outside the grid are
// silently dropped.
type Raster struct {
	width  int
	height int
	lines  [][]Cell
}

// NewRaster creates a raster with every cell fully transparent
func NewRaster(width, height int) *Raster {
	lines := make([][]Cell, height)
	for y := range lines {
		lines[y] = make([]Cell, width)
	}
	return &Raster{
		width:  width,
		height: height,
		lines:  lines,
	}
}

// Width returns the raster width
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height
func (r *Raster) Height() int {
	return r.height
}

// In reports whether p lies inside the grid
func (r *Raster) In(p Point) bool {
	return p.X >= 0 && p.X < r.width && p.Y >= 0 && p.Y < r.height
}

// Get returns the cell at p, or the transparent cell when out of bounds
func (r *Raster) Get(p Point) Cell {
	if !r.In(p) {
		return Cell{}
	}
	return r.lines[p.Y][p.X]
}

// Set composes c over the stored cell at p. Out of bounds is a no-op
func (r *Raster) Set(p Point, c Cell) {
	if !r.In(p) {
		return
	}
	r.lines[p.Y][p.X] = Compose(r.lines[p.Y][p.X], c)
}

// Clear resets the cell at p to fully transparent. Unlike Set with a
// transparent cell this zeroes every channel. Out of bounds is a no-op
func (r *Raster) Clear(p Point) {
	if !r.In(p) {
		return
	}
	r.lines[p.Y][p.X] = Cell{}
}

// Clone returns a deep copy of the raster
func (r *Raster) Clone() *Raster {
	out := &Raster{
		width:  r.width,
		height: r.height,
		lines:  make([][]Cell, r.height),
	}
	for y := range r.lines {
		out.lines[y] = make([]Cell, r.width)
		copy(out.lines[y], r.lines[y])
	}
	return out
}

// Each visits every cell in row-major order
func (r *Raster) Each(visit func(Point, Cell)) {
	for y, line := range r.lines {
		for x, c := range line {
			visit(Point{X: x, Y: y}, c)
		}
	}
}

// FloodFill returns every coordinate 4-connected to seed whose stored
// cell is structurally equal to the cell stored at seed. The seed must
// be in bounds; an out-of-bounds seed is a caller contract violation
// and panics.
func (r *Raster) FloodFill(seed Point) []Point {
	if !r.In(seed) {
		panic(fmt.Sprintf("flood fill seed %+v outside %dx%d raster", seed, r.width, r.height))
	}

	target := r.lines[seed.Y][seed.X]
	seen := map[Point]bool{seed: true}
	region := []Point{seed}

	// BFS over cardinal neighbors; seen guards both termination and
	// the visit-at-most-once guarantee
	queue := []Point{seed}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, n := range [4]Point{
			{X: p.X + 1, Y: p.Y},
			{X: p.X - 1, Y: p.Y},
			{X: p.X, Y: p.Y + 1},
			{X: p.X, Y: p.Y - 1},
		} {
			if seen[n] || !r.In(n) {
				continue
			}
			seen[n] = true
			if r.lines[n.Y][n.X] != target {
				continue
			}
			region = append(region, n)
			queue = append(queue, n)
		}
	}

	return region
}
