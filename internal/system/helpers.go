package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/world"
)

// applyDamage subtracts HP, floored at zero. Death is resolved later in the
// frame by the death system, so callers never destroy entities here.
func applyDamage(s *world.State, target ecs.EntityID, amount int) {
	h, ok := s.Stores.Health.Get(target)
	if !ok {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// effectivePower is base power plus equipped weapon bonuses.
func effectivePower(s *world.State, id ecs.EntityID) int {
	c, ok := s.Stores.CombatStats.Get(id)
	if !ok {
		return 0
	}
	pw, _ := s.EquippedBonuses(id)
	return c.Power + pw
}

// effectiveDefense is base defense plus equipped armor bonuses.
func effectiveDefense(s *world.State, id ecs.EntityID) int {
	c, ok := s.Stores.CombatStats.Get(id)
	if !ok {
		return 0
	}
	_, df := s.EquippedBonuses(id)
	return c.Defense + df
}

// basePower is the unequipped power stat, used by ranged and spell damage.
func basePower(s *world.State, id ecs.EntityID) int {
	c, ok := s.Stores.CombatStats.Get(id)
	if !ok {
		return 0
	}
	return c.Power
}

// hasLineOfSight walks the ray between two cells; every intermediate cell
// must be transparent.
func hasLineOfSight(s *world.State, x0, y0, x1, y1 int) bool {
	path := world.Line(x0, y0, x1, y1)
	for i := 1; i < len(path)-1; i++ {
		if !s.TransparentAt(path[i].X, path[i].Y) {
			return false
		}
	}
	return true
}

// flightPath is the projectile course from a shooter to a target cell: the
// ray minus its starting cell, truncated at the first wall.
func flightPath(s *world.State, x0, y0, x1, y1 int) []component.Position {
	full := world.Line(x0, y0, x1, y1)
	var path []component.Position
	for _, p := range full[1:] {
		if s.Map.IsWall(p.X, p.Y) {
			break
		}
		path = append(path, p)
	}
	return path
}

// spawnBolt creates an ephemeral projectile entity flying the given path on
// the source's behalf. Payload components control what the impact does.
func spawnBolt(s *world.State, source ecs.EntityID, path []component.Position, glyph rune, color string, damage int) ecs.EntityID {
	st := s.Stores
	id := s.ECS.Create()
	st.Projectile.Set(id, &component.Projectile{Path: path, Source: source})
	st.Renderable.Set(id, &component.Renderable{Glyph: glyph, Color: color, Visible: true})
	if len(path) > 0 {
		st.Position.Set(id, &component.Position{X: path[0].X, Y: path[0].Y})
	}
	if damage > 0 {
		st.InflictsDamage.Set(id, &component.InflictsDamage{Damage: damage})
	}
	return id
}

// findAmmo returns the first carried item that is ammunition of the given
// type.
func findAmmo(s *world.State, owner ecs.EntityID, ammoType string) (ecs.EntityID, bool) {
	inv, ok := s.Stores.Inventory.Get(owner)
	if !ok {
		return 0, false
	}
	for _, item := range inv.Items {
		if a, ok := s.Stores.Ammunition.Get(item); ok && a.Type == ammoType {
			return item, true
		}
	}
	return 0, false
}

// findHealingItem returns the first carried item with a healing effect.
func findHealingItem(s *world.State, owner ecs.EntityID) (ecs.EntityID, bool) {
	inv, ok := s.Stores.Inventory.Get(owner)
	if !ok {
		return 0, false
	}
	for _, item := range inv.Items {
		if s.Stores.Healing.Has(item) {
			return item, true
		}
	}
	return 0, false
}

// removeFromInventory drops the id from the owner's item list, unequipping
// it first if worn.
func removeFromInventory(s *world.State, owner, item ecs.EntityID) {
	st := s.Stores
	if eq, ok := st.Equipment.Get(owner); ok {
		for slot, worn := range eq.Slots {
			if worn == item {
				delete(eq.Slots, slot)
			}
		}
	}
	st.Equipped.Remove(item)
	inv, ok := st.Inventory.Get(owner)
	if !ok {
		return
	}
	for i, it := range inv.Items {
		if it == item {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return
		}
	}
}
