package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// PickupSystem moves the topmost loose item on the picker's cell into their
// inventory. Carried items lose their Position; that is what keeps them off
// the map.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem { return &PickupSystem{} }

func (sys *PickupSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *PickupSystem) Update(s *world.State) {
	st := s.Stores
	var pickers []ecs.EntityID
	st.WantsToPickup.EachID(func(id ecs.EntityID) {
		pickers = append(pickers, id)
	})
	for _, picker := range pickers {
		st.WantsToPickup.Remove(picker)
		pos, ok := st.Position.Get(picker)
		if !ok {
			continue
		}
		items := s.ItemsAt(pos.X, pos.Y)
		if len(items) == 0 {
			s.Log.Append("There is nothing here to pick up.")
			continue
		}
		item := items[0]
		inv, ok := st.Inventory.Get(picker)
		if !ok {
			st.Inventory.Set(picker, &component.Inventory{})
			inv, _ = st.Inventory.Get(picker)
		}
		inv.Items = append(inv.Items, item)
		st.Position.Remove(item)
		s.Log.Appendf("%s picks up the %s.", s.DisplayName(picker), s.DisplayName(item))
	}
}
