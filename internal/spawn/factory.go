package spawn

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/data"
	"github.com/delvegame/delve/internal/world"
)

// Factory builds entities from loaded content tables.
type Factory struct {
	creatures *data.CreatureTable
	items     *data.ItemTable
	traps     *data.TrapTable
	log       *zap.Logger
}

func NewFactory(creatures *data.CreatureTable, items *data.ItemTable, traps *data.TrapTable, log *zap.Logger) *Factory {
	return &Factory{creatures: creatures, items: items, traps: traps, log: log}
}

// Player creates the player entity at the given cell. Starting stats are
// fixed; progression is driven by the leveling system.
func (f *Factory) Player(s *world.State, x, y int) ecs.EntityID {
	st := s.Stores
	id := s.ECS.Create()
	st.Player.Set(id, &component.Player{})
	st.Name.Set(id, &component.Name{Value: "Hero"})
	st.Position.Set(id, &component.Position{X: x, Y: y})
	st.Renderable.Set(id, &component.Renderable{Glyph: '@', Color: "yellow", Visible: true})
	st.BlocksMovement.Set(id, &component.BlocksMovement{})
	st.Health.Set(id, &component.Health{Current: 50, Max: 50})
	st.Mana.Set(id, &component.Mana{Current: 20, Max: 20})
	st.CombatStats.Set(id, &component.CombatStats{Power: 5, Defense: 2})
	st.Experience.Set(id, &component.Experience{Level: 1, NextLevelXP: 200, MaxDepth: 1})
	st.Inventory.Set(id, &component.Inventory{})
	st.Equipment.Set(id, component.NewEquipment())
	st.KnowsSpell.Set(id, &component.KnowsSpell{
		Name: "Magic Missile", Damage: 6, Range: 5, Cooldown: 2, ManaCost: 4,
	})
	s.Player = id
	return id
}

// Creature spawns a hostile creature from its template, rolling starting
// gear into its inventory.
func (f *Factory) Creature(s *world.State, tmplID string, x, y int) (ecs.EntityID, error) {
	tmpl := f.creatures.Get(tmplID)
	if tmpl == nil {
		return 0, fmt.Errorf("spawn creature: unknown template %q", tmplID)
	}
	st := s.Stores
	id := s.ECS.Create()
	st.Name.Set(id, &component.Name{Value: tmpl.Name})
	st.Position.Set(id, &component.Position{X: x, Y: y})
	st.Renderable.Set(id, &component.Renderable{Glyph: tmpl.Rune(), Color: tmpl.Color, Visible: true})
	st.BlocksMovement.Set(id, &component.BlocksMovement{})
	st.Hostile.Set(id, &component.Hostile{})
	st.Health.Set(id, &component.Health{Current: tmpl.HP, Max: tmpl.HP})
	st.CombatStats.Set(id, &component.CombatStats{Power: tmpl.Power, Defense: tmpl.Defense})
	st.GivesExperience.Set(id, &component.GivesExperience{Amount: tmpl.XP})
	if tmpl.Mana > 0 {
		st.Mana.Set(id, &component.Mana{Current: tmpl.Mana, Max: tmpl.Mana})
	}
	if tmpl.Spell != nil {
		st.KnowsSpell.Set(id, &component.KnowsSpell{
			Name:     tmpl.Spell.Name,
			Damage:   tmpl.Spell.Damage,
			Range:    tmpl.Spell.Range,
			Cooldown: tmpl.Spell.Cooldown,
			ManaCost: tmpl.Spell.ManaCost,
		})
	}
	for _, gear := range tmpl.Gear {
		if s.Rng.Float64() >= gear.Chance {
			continue
		}
		itemID, err := f.CarriedItem(s, gear.ItemID)
		if err != nil {
			f.log.Warn("creature gear skipped", zap.String("creature", tmplID), zap.Error(err))
			continue
		}
		inv, ok := st.Inventory.Get(id)
		if !ok {
			st.Inventory.Set(id, &component.Inventory{})
			inv, _ = st.Inventory.Get(id)
		}
		inv.Items = append(inv.Items, itemID)
		if eqp, ok := st.Equippable.Get(itemID); ok {
			eq, ok := st.Equipment.Get(id)
			if !ok {
				st.Equipment.Set(id, component.NewEquipment())
				eq, _ = st.Equipment.Get(id)
			}
			eq.Slots[eqp.Slot] = itemID
			st.Equipped.Set(itemID, &component.Equipped{Owner: id, Slot: eqp.Slot})
		}
	}
	return id, nil
}

// Item spawns a loose item on the floor.
func (f *Factory) Item(s *world.State, tmplID string, x, y int) (ecs.EntityID, error) {
	id, err := f.CarriedItem(s, tmplID)
	if err != nil {
		return 0, err
	}
	s.Stores.Position.Set(id, &component.Position{X: x, Y: y})
	return id, nil
}

// CarriedItem builds an item entity with no Position, ready to sit in an
// inventory.
func (f *Factory) CarriedItem(s *world.State, tmplID string) (ecs.EntityID, error) {
	tmpl := f.items.Get(tmplID)
	if tmpl == nil {
		return 0, fmt.Errorf("spawn item: unknown template %q", tmplID)
	}
	st := s.Stores
	id := s.ECS.Create()
	st.Item.Set(id, &component.Item{})
	st.Name.Set(id, &component.Name{Value: tmpl.Name})
	st.Renderable.Set(id, &component.Renderable{Glyph: tmpl.Rune(), Color: tmpl.Color, Visible: true})
	if tmpl.Consumable {
		st.Consumable.Set(id, &component.Consumable{})
	}
	if tmpl.Healing > 0 {
		st.Healing.Set(id, &component.ProvidesHealing{Amount: tmpl.Healing})
	}
	if tmpl.Teleports {
		st.Teleportation.Set(id, &component.ProvidesTeleportation{})
	}
	if tmpl.Damage > 0 {
		st.InflictsDamage.Set(id, &component.InflictsDamage{Damage: tmpl.Damage})
	}
	if tmpl.Radius > 0 {
		st.AreaOfEffect.Set(id, &component.AreaOfEffect{Radius: tmpl.Radius})
	}
	if tmpl.Range > 0 {
		st.Ranged.Set(id, &component.Ranged{Range: tmpl.Range})
	}
	if tmpl.Slot != "" {
		slot := component.SlotWeapon
		if tmpl.Slot == "armor" {
			slot = component.SlotArmor
		}
		st.Equippable.Set(id, &component.Equippable{
			Slot:         slot,
			PowerBonus:   tmpl.PowerBonus,
			DefenseBonus: tmpl.DefenseBonus,
		})
	}
	if tmpl.AmmoType != "" {
		st.Ammunition.Set(id, &component.Ammunition{Type: tmpl.AmmoType})
	}
	if tmpl.RequiresAmmo != "" {
		st.RequiresAmmo.Set(id, &component.RequiresAmmunition{Type: tmpl.RequiresAmmo})
	}
	if tmpl.Poison != nil {
		st.InflictsPoison.Set(id, &component.InflictsPoison{
			Damage:   tmpl.Poison.Damage,
			Duration: tmpl.Poison.Duration,
		})
	}
	return id, nil
}

// Trap places a hidden floor trap.
func (f *Factory) Trap(s *world.State, tmplID string, x, y int) (ecs.EntityID, error) {
	tmpl := f.traps.Get(tmplID)
	if tmpl == nil {
		return 0, fmt.Errorf("spawn trap: unknown template %q", tmplID)
	}
	st := s.Stores
	id := s.ECS.Create()
	st.Name.Set(id, &component.Name{Value: tmpl.Name})
	st.Position.Set(id, &component.Position{X: x, Y: y})
	st.Renderable.Set(id, &component.Renderable{Glyph: tmpl.Rune(), Color: tmpl.Color, Visible: false})
	st.Trap.Set(id, &component.Trap{Damage: tmpl.Damage})
	st.Hidden.Set(id, &component.Hidden{})
	if tmpl.Poison != nil {
		st.InflictsPoison.Set(id, &component.InflictsPoison{
			Damage:   tmpl.Poison.Damage,
			Duration: tmpl.Poison.Duration,
		})
	}
	return id, nil
}

// Door places a closed door: it blocks movement and sight until opened.
func (f *Factory) Door(s *world.State, x, y int) ecs.EntityID {
	st := s.Stores
	id := s.ECS.Create()
	st.Name.Set(id, &component.Name{Value: "Door"})
	st.Position.Set(id, &component.Position{X: x, Y: y})
	st.Renderable.Set(id, &component.Renderable{Glyph: '+', Color: "brown", Visible: true})
	st.Door.Set(id, &component.Door{Open: false})
	st.BlocksMovement.Set(id, &component.BlocksMovement{})
	st.Opaque.Set(id, &component.Opaque{})
	return id
}

// StairsDown places a descending staircase.
func (f *Factory) StairsDown(s *world.State, x, y int) ecs.EntityID {
	st := s.Stores
	id := s.ECS.Create()
	st.Name.Set(id, &component.Name{Value: "Stairs down"})
	st.Position.Set(id, &component.Position{X: x, Y: y})
	st.Renderable.Set(id, &component.Renderable{Glyph: '>', Color: "white", Visible: true})
	st.StairsDown.Set(id, &component.StairsDown{})
	return id
}

// StairsUp places an ascending staircase.
func (f *Factory) StairsUp(s *world.State, x, y int) ecs.EntityID {
	st := s.Stores
	id := s.ECS.Create()
	st.Name.Set(id, &component.Name{Value: "Stairs up"})
	st.Position.Set(id, &component.Position{X: x, Y: y})
	st.Renderable.Set(id, &component.Renderable{Glyph: '<', Color: "white", Visible: true})
	st.StairsUp.Set(id, &component.StairsUp{})
	return id
}

// Innkeeper places the hub NPC that fully restores the player on bump.
func (f *Factory) Innkeeper(s *world.State, x, y int) ecs.EntityID {
	st := s.Stores
	id := s.ECS.Create()
	st.Name.Set(id, &component.Name{Value: "Innkeeper"})
	st.Position.Set(id, &component.Position{X: x, Y: y})
	st.Renderable.Set(id, &component.Renderable{Glyph: 'I', Color: "cyan", Visible: true})
	st.BlocksMovement.Set(id, &component.BlocksMovement{})
	st.FullHealing.Set(id, &component.ProvidesFullHealing{})
	return id
}

// Merchant places the hub NPC that restocks supplies on bump.
func (f *Factory) Merchant(s *world.State, x, y int) ecs.EntityID {
	st := s.Stores
	id := s.ECS.Create()
	st.Name.Set(id, &component.Name{Value: "Merchant"})
	st.Position.Set(id, &component.Position{X: x, Y: y})
	st.Renderable.Set(id, &component.Renderable{Glyph: 'M', Color: "cyan", Visible: true})
	st.BlocksMovement.Set(id, &component.BlocksMovement{})
	st.Supplies.Set(id, &component.ProvidesSupplies{})
	return id
}
