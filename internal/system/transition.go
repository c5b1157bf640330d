package system

import (
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// TransitionSystem converts stair intents into a pending depth change that
// the session acts on once the frame ends. The stairs themselves were
// validated when the intent was created.
type TransitionSystem struct{}

func NewTransitionSystem() *TransitionSystem { return &TransitionSystem{} }

func (sys *TransitionSystem) Phase() coresys.Phase { return coresys.PhasePost }

func (sys *TransitionSystem) Update(s *world.State) {
	st := s.Stores
	var down, up []ecs.EntityID
	st.WantsToDescend.EachID(func(id ecs.EntityID) { down = append(down, id) })
	st.WantsToAscend.EachID(func(id ecs.EntityID) { up = append(up, id) })
	for _, id := range down {
		st.WantsToDescend.Remove(id)
		target := s.Depth + 1
		if s.Depth == 0 {
			// The hub stairs drop straight back to the deepest floor reached.
			if xp, ok := st.Experience.Get(s.Player); ok && xp.MaxDepth > 1 {
				target = xp.MaxDepth
			}
		}
		s.Log.Append("You descend deeper into the dungeon.")
		s.RequestDepthChange(target)
	}
	for _, id := range up {
		st.WantsToAscend.Remove(id)
		if s.Depth <= 0 {
			continue
		}
		if s.Depth == 1 {
			s.Log.Append("You climb back up to the surface.")
		} else {
			s.Log.Append("You climb the stairs up.")
		}
		s.RequestDepthChange(s.Depth - 1)
	}
}
