package mapgen

import (
	"math/rand"

	"github.com/delvegame/delve/internal/world"
)

// GenerateCaves carves an organic cavern with cellular automata: random
// noise smoothed over a few generations, then reduced to its largest
// connected region so every floor cell is reachable.
func GenerateCaves(g *world.Grid, rng *rand.Rand) {
	fillWalls(g)

	// Seed interior noise, 45% wall.
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if rng.Intn(100) >= 45 {
				g.Set(x, y, world.TileFloor)
			}
		}
	}

	for i := 0; i < 4; i++ {
		smooth(g)
	}
	keepLargestRegion(g)
}

func smooth(g *world.Grid) {
	next := make([]uint8, len(g.Cells))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			walls := wallNeighbors(g, x, y)
			idx := y*g.W + x
			if x == 0 || y == 0 || x == g.W-1 || y == g.H-1 {
				next[idx] = world.TileWall
				continue
			}
			if walls >= 5 {
				next[idx] = world.TileWall
			} else {
				next[idx] = world.TileFloor
			}
		}
	}
	g.Cells = next
}

func wallNeighbors(g *world.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsWall(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// keepLargestRegion flood-fills every floor region and walls off all but
// the biggest one.
func keepLargestRegion(g *world.Grid) {
	seen := make([]bool, len(g.Cells))
	var best []int

	for start := range g.Cells {
		if seen[start] || g.Cells[start] != world.TileFloor {
			continue
		}
		region := floodFill(g, seen, start)
		if len(region) > len(best) {
			best = region
		}
	}

	for i := range g.Cells {
		if g.Cells[i] == world.TileFloor {
			g.Cells[i] = world.TileWall
		}
	}
	for _, i := range best {
		g.Cells[i] = world.TileFloor
	}
}

func floodFill(g *world.Grid, seen []bool, start int) []int {
	region := []int{start}
	seen[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		x, y := idx%g.W, idx/g.W
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := ny*g.W + nx
			if seen[ni] || g.Cells[ni] != world.TileFloor {
				continue
			}
			seen[ni] = true
			region = append(region, ni)
			queue = append(queue, ni)
		}
	}
	return region
}
