package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// AISystem decides one action per hostile creature per evaluated turn. The
// rules are an ordered priority list; the first that fires wins:
//
//  1. wander: player out of sight, so stop fleeing and drift one random step
//  2. flee: already running and still hurt, keep stepping away
//  3. survive: badly wounded, drink a carried potion or start running
//  4. engage: cast if able, shoot if able, otherwise close for melee
//
// It runs after the player's own action has fully resolved, so creatures
// react to where the player IS, and creatures killed this turn never act.
// Stepping into the player's cell becomes an attack in the movement
// resolver, so melee needs no rule of its own here.
type AISystem struct{}

func NewAISystem() *AISystem { return &AISystem{} }

func (sys *AISystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *AISystem) Update(s *world.State) {
	if !s.ECS.Alive(s.Player) {
		return
	}
	ppos, ok := s.PlayerPos()
	if !ok {
		return
	}
	st := s.Stores
	var hostiles []ecs.EntityID
	st.Hostile.EachID(func(id ecs.EntityID) {
		hostiles = append(hostiles, id)
	})
	for _, id := range hostiles {
		if h, ok := st.Health.Get(id); !ok || h.Current <= 0 {
			continue
		}
		sys.act(s, id, ppos)
	}
}

func (sys *AISystem) act(s *world.State, id ecs.EntityID, ppos component.Position) {
	st := s.Stores
	pos, ok := st.Position.Get(id)
	if !ok {
		return
	}

	seesPlayer := world.DistSq(pos.X, pos.Y, ppos.X, ppos.Y) <= s.FOVRadius*s.FOVRadius &&
		hasLineOfSight(s, pos.X, pos.Y, ppos.X, ppos.Y)
	if !seesPlayer {
		st.Fleeing.Remove(id)
		sys.wander(s, id)
		return
	}

	h, _ := st.Health.Get(id)
	hurt := h.Current*4 <= h.Max

	if st.Fleeing.Has(id) {
		if hurt {
			sys.stepAway(s, id, *pos, ppos)
			return
		}
		st.Fleeing.Remove(id)
	}

	if hurt {
		if potion, ok := findHealingItem(s, id); ok {
			st.WantsToUseItem.Set(id, &component.WantsToUseItem{Item: potion})
			return
		}
		st.Fleeing.Set(id, &component.Fleeing{})
		sys.stepAway(s, id, *pos, ppos)
		return
	}

	if sys.tryCast(s, id, *pos, ppos) {
		return
	}
	if sys.tryShoot(s, id, *pos, ppos) {
		return
	}
	sys.stepToward(s, id, *pos, ppos)
}

func (sys *AISystem) wander(s *world.State, id ecs.EntityID) {
	dx := s.Rng.Intn(3) - 1
	dy := s.Rng.Intn(3) - 1
	if dx == 0 && dy == 0 {
		return
	}
	s.Stores.Velocity.Set(id, &component.Velocity{DX: dx, DY: dy})
}

func (sys *AISystem) tryCast(s *world.State, id ecs.EntityID, pos component.Position, ppos component.Position) bool {
	st := s.Stores
	spell, ok := st.KnowsSpell.Get(id)
	if !ok {
		return false
	}
	if world.DistSq(pos.X, pos.Y, ppos.X, ppos.Y) > spell.Range*spell.Range {
		return false
	}
	if cd, ok := st.OnCooldown.Get(id); ok && cd.Turns > 0 {
		return false
	}
	if m, ok := st.Mana.Get(id); !ok || m.Current < spell.ManaCost {
		return false
	}
	st.WantsToCastSpell.Set(id, &component.WantsToCastSpell{Target: s.Player})
	return true
}

// tryShoot fires the equipped ammunition weapon when the player is in its
// range and a matching round is carried.
func (sys *AISystem) tryShoot(s *world.State, id ecs.EntityID, pos component.Position, ppos component.Position) bool {
	st := s.Stores
	eq, ok := st.Equipment.Get(id)
	if !ok {
		return false
	}
	weapon, ok := eq.Slots[component.SlotWeapon]
	if !ok {
		return false
	}
	req, ok := st.RequiresAmmo.Get(weapon)
	if !ok {
		return false
	}
	rng, ok := st.Ranged.Get(weapon)
	if !ok {
		return false
	}
	if world.DistSq(pos.X, pos.Y, ppos.X, ppos.Y) > rng.Range*rng.Range {
		return false
	}
	if _, ok := findAmmo(s, id, req.Type); !ok {
		return false
	}
	st.WantsToShoot.Set(id, &component.WantsToShoot{Target: s.Player})
	return true
}

// stepToward issues a sign-only step; bumps resolve in the movement pass.
func (sys *AISystem) stepToward(s *world.State, id ecs.EntityID, pos component.Position, ppos component.Position) {
	dx := world.Sign(ppos.X - pos.X)
	dy := world.Sign(ppos.Y - pos.Y)
	if dx == 0 && dy == 0 {
		return
	}
	s.Stores.Velocity.Set(id, &component.Velocity{DX: dx, DY: dy})
}

// stepAway is stepToward with the deltas inverted.
func (sys *AISystem) stepAway(s *world.State, id ecs.EntityID, pos component.Position, ppos component.Position) {
	away := component.Position{
		X: pos.X + (pos.X - ppos.X),
		Y: pos.Y + (pos.Y - ppos.Y),
	}
	sys.stepToward(s, id, pos, away)
}
