package system

import (
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// VisibilitySystem recomputes the player's field of view at the end of any
// frame where the player acted, plus frames flagged stale (fresh levels,
// arrivals). Permissive raycasting: a ray runs from the player to each cell
// in the radius, cells stay visible up to and including the first opaque
// cell, and everything seen once stays explored.
type VisibilitySystem struct{}

func NewVisibilitySystem() *VisibilitySystem { return &VisibilitySystem{} }

func (sys *VisibilitySystem) Phase() coresys.Phase { return coresys.PhaseVisibility }

func (sys *VisibilitySystem) Update(s *world.State) {
	if !s.PlayerActed && !s.FOVStale {
		return
	}
	s.FOVStale = false
	pos, ok := s.PlayerPos()
	if !ok {
		return
	}
	v := s.Visibility
	v.DemoteVisible()
	v.Set(pos.X, pos.Y, world.Visible)

	r := s.FOVRadius
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			tx, ty := pos.X+dx, pos.Y+dy
			if !v.InBounds(tx, ty) {
				continue
			}
			sys.castRay(s, pos.X, pos.Y, tx, ty)
		}
	}
}

func (sys *VisibilitySystem) castRay(s *world.State, x0, y0, x1, y1 int) {
	for _, p := range world.Line(x0, y0, x1, y1) {
		s.Visibility.Set(p.X, p.Y, world.Visible)
		if !s.TransparentAt(p.X, p.Y) {
			return
		}
	}
}
