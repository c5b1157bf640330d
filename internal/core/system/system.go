package system

import "github.com/delvegame/delve/internal/world"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain frontend events
	PhaseKinematics              // 1: projectiles; always runs, never turn-gated
	PhaseModal                   // 2: player control, menus, targeting (may close the gate)
	PhaseTurn                    // 3: turn-consuming gameplay
	PhasePost                    // 4: death, leveling, level-transition check
	PhaseVisibility              // 5: FOV recompute
)

// System is the interface every gameplay system implements. Update receives
// the mutable world state explicitly; there is no ambient shared state.
type System interface {
	Phase() Phase
	Update(s *world.State)
}
