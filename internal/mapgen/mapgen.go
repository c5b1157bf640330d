package mapgen

import (
	"errors"
	"math/rand"

	"github.com/delvegame/delve/internal/world"
)

// ErrNoFloor is returned when a placement scan cannot find a free tile.
var ErrNoFloor = errors.New("mapgen: no floor tile available")

// FindRandomFloorTile picks a random floor cell for which ok returns true.
// It tries random probes first and falls back to a full scan, so it fails
// only when no qualifying tile exists at all.
func FindRandomFloorTile(g *world.Grid, rng *rand.Rand, ok func(x, y int) bool) (int, int, error) {
	for i := 0; i < 200; i++ {
		x := rng.Intn(g.W)
		y := rng.Intn(g.H)
		if g.At(x, y) == world.TileFloor && ok(x, y) {
			return x, y, nil
		}
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) == world.TileFloor && ok(x, y) {
				return x, y, nil
			}
		}
	}
	return 0, 0, ErrNoFloor
}

// DoorCandidates finds corridor chokepoints: floor cells with walls on
// exactly one axis, so a door there closes the passage.
func DoorCandidates(g *world.Grid) [][2]int {
	var out [][2]int
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if g.At(x, y) != world.TileFloor {
				continue
			}
			horizWalls := g.IsWall(x-1, y) && g.IsWall(x+1, y)
			vertWalls := g.IsWall(x, y-1) && g.IsWall(x, y+1)
			if horizWalls == vertWalls {
				continue
			}
			if horizWalls && !g.IsWall(x, y-1) && !g.IsWall(x, y+1) {
				out = append(out, [2]int{x, y})
			}
			if vertWalls && !g.IsWall(x-1, y) && !g.IsWall(x+1, y) {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// FloorCount returns the number of walkable cells.
func FloorCount(g *world.Grid) int {
	n := 0
	for _, c := range g.Cells {
		if c == world.TileFloor {
			n++
		}
	}
	return n
}

func fillWalls(g *world.Grid) {
	for i := range g.Cells {
		g.Cells[i] = world.TileWall
	}
}
