package world

// Tile values in the walkability grid.
const (
	TileFloor uint8 = 0
	TileWall  uint8 = 1
)

// Grid is the walkability map, row-major (row = y, column = x).
type Grid struct {
	W, H  int
	Cells []uint8
}

func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Cells: make([]uint8, w*h)}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

func (g *Grid) At(x, y int) uint8 {
	return g.Cells[y*g.W+x]
}

func (g *Grid) Set(x, y int, v uint8) {
	g.Cells[y*g.W+x] = v
}

// IsWall reports whether the cell is non-walkable terrain. Out-of-bounds
// counts as wall.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.At(x, y) == TileWall
}

// Visibility values of the tri-valued FOV grid.
const (
	Unseen   uint8 = 0
	Explored uint8 = 1
	Visible  uint8 = 2
)

// VisGrid is the tri-valued visibility buffer, row-major like Grid.
type VisGrid struct {
	W, H  int
	Cells []uint8
}

func NewVisGrid(w, h int) *VisGrid {
	return &VisGrid{W: w, H: h, Cells: make([]uint8, w*h)}
}

func (v *VisGrid) InBounds(x, y int) bool {
	return x >= 0 && x < v.W && y >= 0 && y < v.H
}

func (v *VisGrid) At(x, y int) uint8 {
	return v.Cells[y*v.W+x]
}

func (v *VisGrid) Set(x, y int, val uint8) {
	v.Cells[y*v.W+x] = val
}

// IsVisible reports whether the cell is currently in the field of view.
// Out-of-bounds cells are never visible.
func (v *VisGrid) IsVisible(x, y int) bool {
	return v.InBounds(x, y) && v.At(x, y) == Visible
}

// IsExplored reports whether the cell has ever been seen.
func (v *VisGrid) IsExplored(x, y int) bool {
	return v.InBounds(x, y) && v.At(x, y) != Unseen
}

// DemoteVisible turns every currently-visible cell into explored. Step one of
// each FOV recomputation.
func (v *VisGrid) DemoteVisible() {
	for i, c := range v.Cells {
		if c == Visible {
			v.Cells[i] = Explored
		}
	}
}
