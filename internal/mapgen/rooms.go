package mapgen

import (
	"math/rand"

	"github.com/delvegame/delve/internal/world"
)

// Room is an axis-aligned rectangle of floor, walls exclusive.
type Room struct {
	X, Y, W, H int
}

func (r Room) CenterX() int { return r.X + r.W/2 }
func (r Room) CenterY() int { return r.Y + r.H/2 }

func (r Room) intersects(o Room) bool {
	return r.X <= o.X+o.W && r.X+r.W >= o.X &&
		r.Y <= o.Y+o.H && r.Y+r.H >= o.Y
}

// GenerateRooms carves a classic rooms-and-corridors dungeon: random
// non-overlapping rectangles joined by L-shaped tunnels in placement order.
// Returns the rooms so the caller can place stairs and spawns.
func GenerateRooms(g *world.Grid, rng *rand.Rand, maxRooms, minSize, maxSize int) []Room {
	fillWalls(g)

	var rooms []Room
	for i := 0; i < maxRooms; i++ {
		w := minSize + rng.Intn(maxSize-minSize+1)
		h := minSize + rng.Intn(maxSize-minSize+1)
		if g.W-w-2 <= 0 || g.H-h-2 <= 0 {
			continue
		}
		x := 1 + rng.Intn(g.W-w-2)
		y := 1 + rng.Intn(g.H-h-2)
		room := Room{X: x, Y: y, W: w, H: h}

		overlaps := false
		for _, other := range rooms {
			if room.intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(g, room)
		if len(rooms) > 0 {
			prev := rooms[len(rooms)-1]
			carveTunnel(g, rng, prev.CenterX(), prev.CenterY(), room.CenterX(), room.CenterY())
		}
		rooms = append(rooms, room)
	}
	return rooms
}

func carveRoom(g *world.Grid, r Room) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.Set(x, y, world.TileFloor)
		}
	}
}

func carveTunnel(g *world.Grid, rng *rand.Rand, x0, y0, x1, y1 int) {
	if rng.Intn(2) == 0 {
		carveH(g, x0, x1, y0)
		carveV(g, y0, y1, x1)
	} else {
		carveV(g, y0, y1, x0)
		carveH(g, x0, x1, y1)
	}
}

func carveH(g *world.Grid, x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		if g.InBounds(x, y) {
			g.Set(x, y, world.TileFloor)
		}
	}
}

func carveV(g *world.Grid, y0, y1, x int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		if g.InBounds(x, y) {
			g.Set(x, y, world.TileFloor)
		}
	}
}
