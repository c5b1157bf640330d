package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// PlayerControlSystem turns key presses into player intents while no modal
// mode is open. Committing an action opens the turn gate; keys that only
// open menus do not.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem { return &PlayerControlSystem{} }

func (sys *PlayerControlSystem) Phase() coresys.Phase { return coresys.PhaseModal }

func (sys *PlayerControlSystem) Update(s *world.State) {
	if s.ModalActive() || s.Stores.Projectile.Len() > 0 {
		return
	}
	if !s.ECS.Alive(s.Player) {
		return
	}
	for _, ev := range s.Input.Events {
		if ev.Kind != world.EventKey {
			continue
		}
		if sys.handleKey(s, ev.Key) {
			return
		}
	}
}

// handleKey reports whether the key was consumed, acting or not.
func (sys *PlayerControlSystem) handleKey(s *world.State, key world.Key) bool {
	switch key {
	case world.KeyUp:
		sys.bump(s, 0, -1)
	case world.KeyDown:
		sys.bump(s, 0, 1)
	case world.KeyLeft:
		sys.bump(s, -1, 0)
	case world.KeyRight:
		sys.bump(s, 1, 0)
	case world.KeyWait:
		s.PlayerActed = true
	case world.KeyPickup:
		s.Stores.WantsToPickup.Set(s.Player, &component.WantsToPickup{})
		s.PlayerActed = true
	case world.KeyUse:
		sys.openMenu(s, "Use which item?", component.MenuUse)
	case world.KeyEquip:
		sys.openMenu(s, "Equip which item?", component.MenuEquip)
	case world.KeyDrop:
		sys.openMenu(s, "Drop which item?", component.MenuDrop)
	case world.KeyThrow:
		sys.openMenu(s, "Throw which item?", component.MenuThrow)
	case world.KeyFire:
		sys.startShooting(s)
	case world.KeyCast:
		sys.startCasting(s)
	case world.KeyCharacter:
		s.Stores.CharacterScreen.Set(s.Player, &component.CharacterScreen{FirstFrame: true})
	case world.KeyHelp:
		s.Stores.HelpScreen.Set(s.Player, &component.HelpScreen{FirstFrame: true})
	case world.KeyDescend:
		sys.useStairs(s, true)
	case world.KeyAscend:
		sys.useStairs(s, false)
	default:
		return false
	}
	return true
}

// bump issues a one-turn move toward the pressed direction. What the move
// means when the cell is occupied (attack, open, talk) is the movement
// resolver's call; walking into bare wall costs no turn.
func (sys *PlayerControlSystem) bump(s *world.State, dx, dy int) {
	pos, ok := s.PlayerPos()
	if !ok {
		return
	}
	if s.Map.IsWall(pos.X+dx, pos.Y+dy) {
		return
	}
	s.Stores.Velocity.Set(s.Player, &component.Velocity{DX: dx, DY: dy})
	s.PlayerActed = true
}

func (sys *PlayerControlSystem) openMenu(s *world.State, title string, purpose component.MenuPurpose) {
	inv, ok := s.Stores.Inventory.Get(s.Player)
	if !ok || len(inv.Items) == 0 {
		s.Log.Append("Your pack is empty.")
		return
	}
	s.Stores.InventoryMenu.Set(s.Player, &component.InventoryMenu{
		Title:      title,
		Purpose:    purpose,
		FirstFrame: true,
	})
}

// startShooting opens targeting for the equipped ammunition weapon.
func (sys *PlayerControlSystem) startShooting(s *world.State) {
	st := s.Stores
	eq, ok := st.Equipment.Get(s.Player)
	if !ok {
		s.Log.Append("You have no ranged weapon equipped.")
		return
	}
	weapon, ok := eq.Slots[component.SlotWeapon]
	if !ok || !st.RequiresAmmo.Has(weapon) {
		s.Log.Append("You have no ranged weapon equipped.")
		return
	}
	req, _ := st.RequiresAmmo.Get(weapon)
	if _, ok := findAmmo(s, s.Player, req.Type); !ok {
		s.Log.Appendf("You are out of %ss.", req.Type)
		return
	}
	rng, ok := st.Ranged.Get(weapon)
	if !ok {
		return
	}
	st.Targeting.Set(s.Player, &component.Targeting{
		Range:   rng.Range,
		Purpose: component.TargetShoot,
	})
}

// startCasting opens targeting for the known spell after mana and cooldown
// checks, so aiming never begins for an uncastable spell.
func (sys *PlayerControlSystem) startCasting(s *world.State) {
	st := s.Stores
	spell, ok := st.KnowsSpell.Get(s.Player)
	if !ok {
		s.Log.Append("You know no spells.")
		return
	}
	if cd, ok := st.OnCooldown.Get(s.Player); ok && cd.Turns > 0 {
		s.Log.Appendf("%s is still on cooldown (%d turns).", spell.Name, cd.Turns)
		return
	}
	if m, ok := st.Mana.Get(s.Player); !ok || m.Current < spell.ManaCost {
		s.Log.Append("Not enough mana.")
		return
	}
	cp := *spell
	st.Targeting.Set(s.Player, &component.Targeting{
		Range:   spell.Range,
		Purpose: component.TargetCast,
		Spell:   &cp,
	})
}

// useStairs commits a descend/ascend intent only when the player actually
// stands on matching stairs, so a mispressed key costs no turn.
func (sys *PlayerControlSystem) useStairs(s *world.State, down bool) {
	pos, ok := s.PlayerPos()
	if !ok {
		return
	}
	st := s.Stores
	found := false
	onStairs := func(id ecs.EntityID) {
		if p, ok := st.Position.Get(id); ok && p.X == pos.X && p.Y == pos.Y {
			found = true
		}
	}
	if down {
		st.StairsDown.EachID(onStairs)
	} else {
		st.StairsUp.EachID(onStairs)
	}
	if !found {
		if down {
			s.Log.Append("There are no stairs down here.")
		} else {
			s.Log.Append("There are no stairs up here.")
		}
		return
	}
	if down {
		st.WantsToDescend.Set(s.Player, &component.WantsToDescend{})
	} else {
		st.WantsToAscend.Set(s.Player, &component.WantsToAscend{})
	}
	s.PlayerActed = true
}
