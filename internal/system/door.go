package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// DoorSystem toggles doors that were bumped this turn. An open door neither
// blocks movement nor sight; closing is only possible on an empty cell.
type DoorSystem struct{}

func NewDoorSystem() *DoorSystem { return &DoorSystem{} }

func (sys *DoorSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *DoorSystem) Update(s *world.State) {
	st := s.Stores
	var toggled []ecs.EntityID
	st.ToggleDoorState.EachID(func(id ecs.EntityID) {
		toggled = append(toggled, id)
	})
	for _, id := range toggled {
		st.ToggleDoorState.Remove(id)
		door, ok := st.Door.Get(id)
		if !ok {
			continue
		}
		if door.Open {
			if p, ok := st.Position.Get(id); ok {
				if occupant, occupied := s.BlockerAt(p.X, p.Y); occupied && occupant != id {
					continue
				}
			}
			door.Open = false
			st.BlocksMovement.Set(id, &component.BlocksMovement{})
			st.Opaque.Set(id, &component.Opaque{})
			setGlyph(s, id, '+')
			s.Log.Append("The door closes.")
		} else {
			door.Open = true
			st.BlocksMovement.Remove(id)
			st.Opaque.Remove(id)
			setGlyph(s, id, '\'')
			s.Log.Append("The door opens.")
		}
	}
}

func setGlyph(s *world.State, id ecs.EntityID, glyph rune) {
	if r, ok := s.Stores.Renderable.Get(id); ok {
		r.Glyph = glyph
	}
}
