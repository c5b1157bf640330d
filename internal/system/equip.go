package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// EquipSystem resolves equip intents: equipping into an occupied slot swaps
// the old item out, and selecting an already-worn item takes it off.
type EquipSystem struct{}

func NewEquipSystem() *EquipSystem { return &EquipSystem{} }

func (sys *EquipSystem) Phase() coresys.Phase { return coresys.PhaseModal }

func (sys *EquipSystem) Update(s *world.State) {
	st := s.Stores
	var pending []ecs.EntityID
	st.WantsToEquip.EachID(func(id ecs.EntityID) {
		pending = append(pending, id)
	})
	for _, owner := range pending {
		intent, _ := st.WantsToEquip.Get(owner)
		st.WantsToEquip.Remove(owner)
		sys.resolve(s, owner, intent.Item)
	}
}

func (sys *EquipSystem) resolve(s *world.State, owner, item ecs.EntityID) {
	st := s.Stores
	eqp, ok := st.Equippable.Get(item)
	if !ok {
		return
	}
	eq, ok := st.Equipment.Get(owner)
	if !ok {
		st.Equipment.Set(owner, component.NewEquipment())
		eq, _ = st.Equipment.Get(owner)
	}

	if worn, ok := eq.Slots[eqp.Slot]; ok {
		delete(eq.Slots, eqp.Slot)
		st.Equipped.Remove(worn)
		if worn == item {
			s.Log.Appendf("You take off the %s.", s.DisplayName(item))
			return
		}
		s.Log.Appendf("You put away the %s.", s.DisplayName(worn))
	}

	eq.Slots[eqp.Slot] = item
	st.Equipped.Set(item, &component.Equipped{Owner: owner, Slot: eqp.Slot})
	s.Log.Appendf("You equip the %s.", s.DisplayName(item))
}
