package world

import "github.com/delvegame/delve/internal/component"

// Line rasterizes the discrete cell path from (x0,y0) to (x1,y1) inclusive
// using Bresenham's algorithm. The same rasterizer backs FOV rays, targeting
// previews, AI line-of-sight checks, and projectile paths, so all four agree
// on which cells a line crosses.
func Line(x0, y0, x1, y1 int) []component.Position {
	points := make([]component.Position, 0, 16)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		points = append(points, component.Position{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DistSq is the squared Euclidean distance between two cells. Range checks
// compare squared values so no root is ever taken.
func DistSq(x0, y0, x1, y1 int) int {
	dx := x1 - x0
	dy := y1 - y0
	return dx*dx + dy*dy
}

// Sign collapses a delta to a single-cell step: -1, 0, or 1.
func Sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
