package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/core/event"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// DeathSystem sweeps up everything whose health reached zero this frame.
// Creatures spill their inventory onto the floor and award their experience
// to the player; the player's death ends the run.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem { return &DeathSystem{} }

func (sys *DeathSystem) Phase() coresys.Phase { return coresys.PhasePost }

func (sys *DeathSystem) Update(s *world.State) {
	st := s.Stores
	var dead []ecs.EntityID
	st.Health.EachID(func(id ecs.EntityID) {
		if h, _ := st.Health.Get(id); h.Current <= 0 {
			dead = append(dead, id)
		}
	})
	for _, id := range dead {
		if id == s.Player {
			sys.playerDies(s)
			continue
		}
		sys.creatureDies(s, id)
	}
}

func (sys *DeathSystem) playerDies(s *world.State) {
	s.Log.Append("You die...")
	event.Emit(s.Events, event.PlayerDied{})
	s.Terminated = true
}

func (sys *DeathSystem) creatureDies(s *world.State, id ecs.EntityID) {
	st := s.Stores
	name := s.DisplayName(id)
	pos, hasPos := st.Position.Get(id)

	// Spill carried items where the body fell.
	if inv, ok := st.Inventory.Get(id); ok && hasPos {
		for _, item := range inv.Items {
			st.Equipped.Remove(item)
			st.Position.Set(item, &component.Position{X: pos.X, Y: pos.Y})
		}
	}

	if gx, ok := st.GivesExperience.Get(id); ok {
		if xp, ok := st.Experience.Get(s.Player); ok {
			xp.CurrentXP += gx.Amount
			s.Log.Appendf("%s dies. You gain %d experience.", name, gx.Amount)
		}
	} else {
		s.Log.Appendf("%s dies.", name)
	}

	if hasPos {
		event.Emit(s.Events, event.EntityDied{ID: id, Name: name, X: pos.X, Y: pos.Y})
	}
	s.ECS.Destroy(id)
}
