package world

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
)

// PlayerSnapshot carries the player's progress across depth switches. Item
// entities do not survive the switch; they are rebuilt from ItemSnapshots.
// Equipped slots are recorded by inventory index so the rebuilt items can be
// re-worn without knowing their new ids.
type PlayerSnapshot struct {
	Health     component.Health
	Mana       component.Mana
	Stats      component.CombatStats
	Experience component.Experience
	Spell      *component.KnowsSpell
	Cooldown   int
	Items      []ItemSnapshot
	Equipped   map[component.EquipSlot]int // slot -> inventory index
}

// ItemSnapshot is everything needed to reconstruct a carried item.
type ItemSnapshot struct {
	Name       string
	Glyph      rune
	Color      string
	Consumable bool

	Healing       int
	Heals         bool
	Teleports     bool
	Damage        int
	Damages       bool
	Radius        int
	HasRadius     bool
	Range         int
	HasRange      bool
	PoisonDamage  int
	PoisonTurns   int
	Poisons       bool
	AmmoType      string
	NeedsAmmoType string

	Equippable *component.Equippable
}

// ExtractPlayer snapshots the player entity of s.
func ExtractPlayer(s *State) PlayerSnapshot {
	st := s.Stores
	snap := PlayerSnapshot{Equipped: make(map[component.EquipSlot]int)}

	if h, ok := st.Health.Get(s.Player); ok {
		snap.Health = *h
	}
	if m, ok := st.Mana.Get(s.Player); ok {
		snap.Mana = *m
	}
	if c, ok := st.CombatStats.Get(s.Player); ok {
		snap.Stats = *c
	}
	if xp, ok := st.Experience.Get(s.Player); ok {
		snap.Experience = *xp
	}
	if sp, ok := st.KnowsSpell.Get(s.Player); ok {
		cp := *sp
		snap.Spell = &cp
	}
	if cd, ok := st.OnCooldown.Get(s.Player); ok {
		snap.Cooldown = cd.Turns
	}

	inv, ok := st.Inventory.Get(s.Player)
	if !ok {
		return snap
	}
	eq, _ := st.Equipment.Get(s.Player)
	for i, itemID := range inv.Items {
		snap.Items = append(snap.Items, snapshotItem(st, itemID))
		if eq == nil {
			continue
		}
		for slot, worn := range eq.Slots {
			if worn == itemID {
				snap.Equipped[slot] = i
			}
		}
	}
	return snap
}

func snapshotItem(st *Stores, id ecs.EntityID) ItemSnapshot {
	var is ItemSnapshot
	if n, ok := st.Name.Get(id); ok {
		is.Name = n.Value
	}
	if r, ok := st.Renderable.Get(id); ok {
		is.Glyph, is.Color = r.Glyph, r.Color
	}
	is.Consumable = st.Consumable.Has(id)
	if h, ok := st.Healing.Get(id); ok {
		is.Heals, is.Healing = true, h.Amount
	}
	is.Teleports = st.Teleportation.Has(id)
	if d, ok := st.InflictsDamage.Get(id); ok {
		is.Damages, is.Damage = true, d.Damage
	}
	if a, ok := st.AreaOfEffect.Get(id); ok {
		is.HasRadius, is.Radius = true, a.Radius
	}
	if r, ok := st.Ranged.Get(id); ok {
		is.HasRange, is.Range = true, r.Range
	}
	if p, ok := st.InflictsPoison.Get(id); ok {
		is.Poisons, is.PoisonDamage, is.PoisonTurns = true, p.Damage, p.Duration
	}
	if a, ok := st.Ammunition.Get(id); ok {
		is.AmmoType = a.Type
	}
	if r, ok := st.RequiresAmmo.Get(id); ok {
		is.NeedsAmmoType = r.Type
	}
	if e, ok := st.Equippable.Get(id); ok {
		cp := *e
		is.Equippable = &cp
	}
	return is
}

// ApplyPlayer writes a snapshot onto the player entity of s, rebuilding
// carried items as fresh entities in the target world.
func ApplyPlayer(s *State, snap PlayerSnapshot) {
	st := s.Stores
	h := snap.Health
	st.Health.Set(s.Player, &h)
	m := snap.Mana
	st.Mana.Set(s.Player, &m)
	c := snap.Stats
	st.CombatStats.Set(s.Player, &c)
	xp := snap.Experience
	st.Experience.Set(s.Player, &xp)
	if snap.Spell != nil {
		sp := *snap.Spell
		st.KnowsSpell.Set(s.Player, &sp)
	}
	if snap.Cooldown > 0 {
		st.OnCooldown.Set(s.Player, &component.OnCooldown{Turns: snap.Cooldown})
	} else {
		st.OnCooldown.Remove(s.Player)
	}

	inv := &component.Inventory{}
	eq := component.NewEquipment()
	for i, is := range snap.Items {
		id := rebuildItem(s, is)
		inv.Items = append(inv.Items, id)
		for slot, idx := range snap.Equipped {
			if idx == i {
				eq.Slots[slot] = id
				st.Equipped.Set(id, &component.Equipped{Owner: s.Player, Slot: slot})
			}
		}
	}
	st.Inventory.Set(s.Player, inv)
	st.Equipment.Set(s.Player, eq)
}

func rebuildItem(s *State, is ItemSnapshot) ecs.EntityID {
	st := s.Stores
	id := s.ECS.Create()
	st.Item.Set(id, &component.Item{})
	st.Name.Set(id, &component.Name{Value: is.Name})
	st.Renderable.Set(id, &component.Renderable{Glyph: is.Glyph, Color: is.Color, Visible: true})
	if is.Consumable {
		st.Consumable.Set(id, &component.Consumable{})
	}
	if is.Heals {
		st.Healing.Set(id, &component.ProvidesHealing{Amount: is.Healing})
	}
	if is.Teleports {
		st.Teleportation.Set(id, &component.ProvidesTeleportation{})
	}
	if is.Damages {
		st.InflictsDamage.Set(id, &component.InflictsDamage{Damage: is.Damage})
	}
	if is.HasRadius {
		st.AreaOfEffect.Set(id, &component.AreaOfEffect{Radius: is.Radius})
	}
	if is.HasRange {
		st.Ranged.Set(id, &component.Ranged{Range: is.Range})
	}
	if is.Poisons {
		st.InflictsPoison.Set(id, &component.InflictsPoison{Damage: is.PoisonDamage, Duration: is.PoisonTurns})
	}
	if is.AmmoType != "" {
		st.Ammunition.Set(id, &component.Ammunition{Type: is.AmmoType})
	}
	if is.NeedsAmmoType != "" {
		st.RequiresAmmo.Set(id, &component.RequiresAmmunition{Type: is.NeedsAmmoType})
	}
	if is.Equippable != nil {
		e := *is.Equippable
		st.Equippable.Set(id, &e)
	}
	return id
}
