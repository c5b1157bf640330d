package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// InventoryMenuSystem drives the letter-keyed item menu. Selection emits the
// intent matching the menu's purpose; throwable and area items selected from
// the use menu reroute into targeting instead of firing blind.
type InventoryMenuSystem struct{}

func NewInventoryMenuSystem() *InventoryMenuSystem { return &InventoryMenuSystem{} }

func (sys *InventoryMenuSystem) Phase() coresys.Phase { return coresys.PhaseModal }

func (sys *InventoryMenuSystem) Update(s *world.State) {
	menu, ok := s.Stores.InventoryMenu.Get(s.Player)
	if !ok {
		return
	}
	if menu.FirstFrame {
		menu.FirstFrame = false
		return
	}
	for _, ev := range s.Input.Events {
		if ev.Kind != world.EventKey {
			continue
		}
		if ev.Key == world.KeyCancel {
			s.Stores.InventoryMenu.Remove(s.Player)
			return
		}
		if ev.Rune >= 'a' && ev.Rune <= 'z' {
			if sys.selectItem(s, menu, int(ev.Rune-'a')) {
				return
			}
		}
	}
}

func (sys *InventoryMenuSystem) selectItem(s *world.State, menu *component.InventoryMenu, index int) bool {
	st := s.Stores
	inv, ok := st.Inventory.Get(s.Player)
	if !ok || index < 0 || index >= len(inv.Items) {
		return false
	}
	item := inv.Items[index]
	st.InventoryMenu.Remove(s.Player)

	switch menu.Purpose {
	case component.MenuUse:
		if needsAim(s, item) {
			sys.openThrowTargeting(s, item)
			return true
		}
		st.WantsToUseItem.Set(s.Player, &component.WantsToUseItem{Item: item})
		s.PlayerActed = true
	case component.MenuEquip:
		if !st.Equippable.Has(item) {
			s.Log.Appendf("You cannot equip the %s.", s.DisplayName(item))
			return true
		}
		st.WantsToEquip.Set(s.Player, &component.WantsToEquip{Item: item})
		s.PlayerActed = true
	case component.MenuDrop:
		st.WantsToDropItem.Set(s.Player, &component.WantsToDropItem{Item: item})
		s.PlayerActed = true
	case component.MenuThrow:
		if !st.InflictsDamage.Has(item) && !st.InflictsPoison.Has(item) {
			s.Log.Appendf("Throwing the %s would achieve nothing.", s.DisplayName(item))
			return true
		}
		sys.openThrowTargeting(s, item)
	}
	return true
}

// needsAim reports whether an item picked from the use menu must be aimed
// rather than applied to the drinker.
func needsAim(s *world.State, item ecs.EntityID) bool {
	st := s.Stores
	if st.Healing.Has(item) || st.Teleportation.Has(item) || st.FullHealing.Has(item) {
		return false
	}
	return st.InflictsDamage.Has(item) || st.AreaOfEffect.Has(item)
}

func (sys *InventoryMenuSystem) openThrowTargeting(s *world.State, item ecs.EntityID) {
	rng := 5
	if r, ok := s.Stores.Ranged.Get(item); ok {
		rng = r.Range
	}
	s.Stores.Targeting.Set(s.Player, &component.Targeting{
		Range:   rng,
		Purpose: component.TargetThrow,
		Item:    item,
	})
}
