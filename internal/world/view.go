package world

import (
	"fmt"
	"sort"

	"github.com/delvegame/delve/internal/core/ecs"
)

// EntityView is the flattened per-entity draw record handed to the frontend.
// The frontend never touches stores directly.
type EntityView struct {
	ID    ecs.EntityID
	X, Y  int
	Glyph rune
	Color string
	// Overlay views (target indicators) draw above everything else.
	Overlay bool
}

// RenderOrder: items under creatures, player on top of creatures, overlays
// above all. Stable within a layer by id so draws don't flicker.
func (s *State) RenderViews() []EntityView {
	var views []EntityView
	s.Stores.Renderable.EachID(func(id ecs.EntityID) {
		r, _ := s.Stores.Renderable.Get(id)
		if !r.Visible {
			return
		}
		p, ok := s.Stores.Position.Get(id)
		if !ok {
			return
		}
		if !s.Visibility.IsVisible(p.X, p.Y) && !s.Stores.TargetIndicator.Has(id) {
			return
		}
		views = append(views, EntityView{
			ID: id, X: p.X, Y: p.Y,
			Glyph: r.Glyph, Color: r.Color,
			Overlay: s.Stores.TargetIndicator.Has(id),
		})
	})
	sort.Slice(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if la, lb := s.layerOf(a), s.layerOf(b); la != lb {
			return la < lb
		}
		return a.ID < b.ID
	})
	return views
}

func (s *State) layerOf(v EntityView) int {
	switch {
	case v.Overlay:
		return 3
	case v.ID == s.Player:
		return 2
	case s.Stores.Health.Has(v.ID):
		return 1
	}
	return 0
}

// InventoryLine is one menu row. Index is the stable inventory slot used to
// select the item with a letter key.
type InventoryLine struct {
	Index int
	Name  string
	Worn  bool
}

// InventoryLines lists the player's carried items in pickup order. Equipped
// items are flagged so the menu can annotate them.
func (s *State) InventoryLines() []InventoryLine {
	inv, ok := s.Stores.Inventory.Get(s.Player)
	if !ok {
		return nil
	}
	eq, _ := s.Stores.Equipment.Get(s.Player)
	lines := make([]InventoryLine, 0, len(inv.Items))
	for i, id := range inv.Items {
		name := "?"
		if n, ok := s.Stores.Name.Get(id); ok {
			name = n.Value
		}
		worn := false
		if eq != nil {
			for _, w := range eq.Slots {
				if w == id {
					worn = true
				}
			}
		}
		lines = append(lines, InventoryLine{Index: i, Name: name, Worn: worn})
	}
	return lines
}

// CharacterSheet renders the character screen body one line per stat.
func (s *State) CharacterSheet() []string {
	st := s.Stores
	var out []string
	xp, _ := st.Experience.Get(s.Player)
	if xp != nil {
		out = append(out,
			fmt.Sprintf("Level: %d", xp.Level),
			fmt.Sprintf("XP: %d / %d", xp.CurrentXP, xp.NextLevelXP),
		)
	}
	if h, ok := st.Health.Get(s.Player); ok {
		out = append(out, fmt.Sprintf("Health: %d / %d", h.Current, h.Max))
	}
	if m, ok := st.Mana.Get(s.Player); ok {
		out = append(out, fmt.Sprintf("Mana: %d / %d", m.Current, m.Max))
	}
	if c, ok := st.CombatStats.Get(s.Player); ok {
		pw, df := c.Power, c.Defense
		if eq, ok := st.Equipment.Get(s.Player); ok {
			for _, id := range eq.Slots {
				if e, ok := st.Equippable.Get(id); ok {
					pw += e.PowerBonus
					df += e.DefenseBonus
				}
			}
		}
		out = append(out,
			fmt.Sprintf("Power: %d (%d base)", pw, c.Power),
			fmt.Sprintf("Defense: %d (%d base)", df, c.Defense),
		)
	}
	if sp, ok := st.KnowsSpell.Get(s.Player); ok {
		line := fmt.Sprintf("Spell: %s (dmg %d, rng %d, cost %d)",
			sp.Name, sp.Damage, sp.Range, sp.ManaCost)
		if cd, ok := st.OnCooldown.Get(s.Player); ok && cd.Turns > 0 {
			line += fmt.Sprintf(" [cooldown %d]", cd.Turns)
		}
		out = append(out, line)
	}
	if xp != nil {
		out = append(out, fmt.Sprintf("Deepest level: %d", xp.MaxDepth))
	}
	return out
}

// HelpLines is the static keybinding reference shown by the help screen.
func HelpLines() []string {
	return []string{
		"Arrows / hjkl  move or attack",
		"space          wait a turn",
		"g              pick up item",
		"u              use item",
		"e              equip or remove item",
		"d              drop item",
		"t              throw item",
		"f              fire ranged weapon",
		"z              cast spell",
		"c              character screen",
		">              descend stairs",
		"<              ascend stairs",
		"esc            close menu / cancel",
		"q              quit",
	}
}

// EquippedBonuses sums the power and defense bonuses of everything the
// entity is wearing.
func (s *State) EquippedBonuses(id ecs.EntityID) (power, defense int) {
	eq, ok := s.Stores.Equipment.Get(id)
	if !ok {
		return 0, 0
	}
	for _, worn := range eq.Slots {
		if e, ok := s.Stores.Equippable.Get(worn); ok {
			power += e.PowerBonus
			defense += e.DefenseBonus
		}
	}
	return power, defense
}

// DisplayName returns the entity's name or a placeholder.
func (s *State) DisplayName(id ecs.EntityID) string {
	if n, ok := s.Stores.Name.Get(id); ok {
		return n.Value
	}
	return "something"
}
