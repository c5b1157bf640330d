package system

import (
	"sort"

	"github.com/delvegame/delve/internal/world"
)

// Runner executes systems in phase order each frame. Within a phase, systems
// run in registration order; several gameplay invariants (intents consumed in
// the same pass they are created) depend on it, so the sort must be stable.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 32),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs one frame. The turn gate opens only when an earlier phase of the
// same frame committed a player action: PhaseTurn systems are skipped
// otherwise, while every other phase always runs.
func (r *Runner) Tick(s *world.State) {
	r.ensureSorted()
	s.PlayerActed = false
	for _, sys := range r.systems {
		if sys.Phase() == PhaseTurn && !s.PlayerActed {
			continue
		}
		sys.Update(s)
	}
	if s.PlayerActed {
		s.Turn++
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
