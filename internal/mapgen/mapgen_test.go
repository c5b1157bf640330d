package mapgen

import (
	"math/rand"
	"testing"

	"github.com/delvegame/delve/internal/world"
)

func TestGenerateRoomsProducesFloor(t *testing.T) {
	g := world.NewGrid(64, 36)
	rng := rand.New(rand.NewSource(7))
	rooms := GenerateRooms(g, rng, 10, 4, 8)
	if len(rooms) < 2 {
		t.Fatalf("generated %d rooms, want at least 2", len(rooms))
	}
	if FloorCount(g) == 0 {
		t.Fatal("no floor carved")
	}
	for _, r := range rooms {
		if g.At(r.CenterX(), r.CenterY()) != world.TileFloor {
			t.Errorf("room center (%d,%d) is not floor", r.CenterX(), r.CenterY())
		}
	}
}

func TestGenerateRoomsKeepsBorderWalls(t *testing.T) {
	g := world.NewGrid(48, 32)
	GenerateRooms(g, rand.New(rand.NewSource(3)), 12, 4, 8)
	for x := 0; x < g.W; x++ {
		if !g.IsWall(x, 0) || !g.IsWall(x, g.H-1) {
			t.Fatalf("border breached at column %d", x)
		}
	}
	for y := 0; y < g.H; y++ {
		if !g.IsWall(0, y) || !g.IsWall(g.W-1, y) {
			t.Fatalf("border breached at row %d", y)
		}
	}
}

func TestGenerateRoomsConnected(t *testing.T) {
	g := world.NewGrid(64, 36)
	GenerateRooms(g, rand.New(rand.NewSource(11)), 10, 4, 8)
	assertSingleRegion(t, g)
}

func TestGenerateCavesConnected(t *testing.T) {
	g := world.NewGrid(64, 36)
	GenerateCaves(g, rand.New(rand.NewSource(5)))
	if FloorCount(g) < 100 {
		t.Fatalf("cave too small: %d floor cells", FloorCount(g))
	}
	assertSingleRegion(t, g)
}

func assertSingleRegion(t *testing.T, g *world.Grid) {
	t.Helper()
	seen := make([]bool, len(g.Cells))
	var start = -1
	for i, c := range g.Cells {
		if c == world.TileFloor {
			start = i
			break
		}
	}
	if start == -1 {
		t.Fatal("no floor at all")
	}
	reached := len(floodFill(g, seen, start))
	if total := FloorCount(g); reached != total {
		t.Fatalf("reachable %d of %d floor cells", reached, total)
	}
}

func TestDoorCandidatesFindChokepoints(t *testing.T) {
	g := world.NewGrid(9, 5)
	for i := range g.Cells {
		g.Cells[i] = world.TileWall
	}
	// Two open chambers joined by a one-cell corridor at (4,2).
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			g.Set(x, y, world.TileFloor)
		}
		for x := 5; x <= 7; x++ {
			g.Set(x, y, world.TileFloor)
		}
	}
	g.Set(4, 2, world.TileFloor)

	cands := DoorCandidates(g)
	found := false
	for _, c := range cands {
		if c[0] == 4 && c[1] == 2 {
			found = true
		}
		if g.At(c[0], c[1]) != world.TileFloor {
			t.Errorf("candidate (%d,%d) is not floor", c[0], c[1])
		}
	}
	if !found {
		t.Fatalf("chokepoint (4,2) missing from %v", cands)
	}
}

func TestFindRandomFloorTile(t *testing.T) {
	g := world.NewGrid(8, 8)
	for i := range g.Cells {
		g.Cells[i] = world.TileWall
	}
	g.Set(3, 4, world.TileFloor)

	rng := rand.New(rand.NewSource(9))
	x, y, err := FindRandomFloorTile(g, rng, func(int, int) bool { return true })
	if err != nil {
		t.Fatal(err)
	}
	if x != 3 || y != 4 {
		t.Fatalf("found (%d,%d), want the only floor cell (3,4)", x, y)
	}

	_, _, err = FindRandomFloorTile(g, rng, func(int, int) bool { return false })
	if err != ErrNoFloor {
		t.Fatalf("err = %v, want ErrNoFloor when nothing qualifies", err)
	}
}
