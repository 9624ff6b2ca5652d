package vmath

import "math"

// Line visits every grid cell intersected by the segment between the
// centers of cell (x1, y1) and cell (x2, y2), endpoints included.
// Uses Supercover DDA so no cell along the segment is skipped, and the
// target bounds are checked before each step so termination is
// guaranteed. The callback returns false to stop early.
func Line(x1, y1, x2, y2 int, visit func(x, y int) bool) {
	// Cell centers in Q32.32
	fx1 := fromInt(x1) + half
	fy1 := fromInt(y1) + half
	fx2 := fromInt(x2) + half
	fy2 := fromInt(y2) + half

	ix, iy := x1, y1
	if ix == x2 && iy == y2 {
		visit(ix, iy)
		return
	}

	dx := fx2 - fx1
	dy := fy2 - fy1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	var tMaxX, tMaxY, tDeltaX, tDeltaY int64
	if dx == 0 {
		tMaxX = math.MaxInt64
	} else {
		tDeltaX = div(scale, dx)
		if stepX > 0 {
			tMaxX = mul(scale-(fx1&mask), tDeltaX)
		} else {
			tMaxX = mul(fx1&mask, tDeltaX)
		}
	}

	if dy == 0 {
		tMaxY = math.MaxInt64
	} else {
		tDeltaY = div(scale, dy)
		if stepY > 0 {
			tMaxY = mul(scale-(fy1&mask), tDeltaY)
		} else {
			tMaxY = mul(fy1&mask, tDeltaY)
		}
	}

	if !visit(ix, iy) {
		return
	}

	for ix != x2 || iy != y2 {
		if tMaxX < tMaxY {
			if ix != x2 {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			if iy != y2 {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step
			if ix != x2 {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != y2 {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !visit(ix, iy) {
			return
		}
	}
}
