package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// MovementSystem resolves one-turn velocities and zeroes them. Walking into
// a wall or off the grid drops the intent silently. Walking into a blocking
// entity never moves the walker; instead the blocker decides what the bump
// means: doors toggle, the innkeeper offers rest, the merchant offers trade,
// and anything with health gets attacked. Hostiles never attack each other,
// so a creature bumping a packmate simply stays put.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

func (sys *MovementSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *MovementSystem) Update(s *world.State) {
	st := s.Stores
	var movers []ecs.EntityID
	st.Velocity.EachID(func(id ecs.EntityID) {
		movers = append(movers, id)
	})
	// The player, when moving this pass, resolves before everyone else.
	for i, id := range movers {
		if id == s.Player && i != 0 {
			movers[0], movers[i] = movers[i], movers[0]
			break
		}
	}
	for _, id := range movers {
		v, ok := st.Velocity.Get(id)
		if !ok {
			continue
		}
		dx, dy := v.DX, v.DY
		st.Velocity.Remove(id)
		if dx == 0 && dy == 0 {
			continue
		}
		pos, ok := st.Position.Get(id)
		if !ok {
			continue
		}
		x, y := pos.X+dx, pos.Y+dy
		if s.Map.IsWall(x, y) {
			continue
		}
		if blocker, blocked := s.BlockerAt(x, y); blocked {
			sys.bump(s, id, blocker)
			continue
		}
		pos.X, pos.Y = x, y
	}
}

func (sys *MovementSystem) bump(s *world.State, mover, blocker ecs.EntityID) {
	st := s.Stores
	switch {
	case st.Door.Has(blocker):
		st.ToggleDoorState.Set(blocker, &component.ToggleDoorState{})
	case st.FullHealing.Has(blocker):
		st.WantsToRest.Set(mover, &component.WantsToRest{})
	case st.Supplies.Has(blocker):
		st.WantsToTrade.Set(mover, &component.WantsToTrade{})
	case st.Health.Has(blocker):
		if st.Hostile.Has(mover) && st.Hostile.Has(blocker) {
			return
		}
		st.WantsToAttack.Set(mover, &component.WantsToAttack{Target: blocker})
	}
}
