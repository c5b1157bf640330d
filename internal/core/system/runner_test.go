package system

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/delvegame/delve/internal/world"
)

type probe struct {
	phase Phase
	fn    func(s *world.State)
	runs  int
}

func (p *probe) Phase() Phase { return p.phase }
func (p *probe) Update(s *world.State) {
	p.runs++
	if p.fn != nil {
		p.fn(s)
	}
}

func newRunnerState() *world.State {
	return world.NewState(10, 10, rand.New(rand.NewSource(1)), zap.NewNop())
}

func TestTickRunsPhasesInOrder(t *testing.T) {
	r := NewRunner()
	var order []Phase
	record := func(ph Phase) *probe {
		return &probe{phase: ph, fn: func(*world.State) { order = append(order, ph) }}
	}
	// Registered out of order on purpose.
	r.Register(record(PhaseVisibility))
	r.Register(record(PhaseInput))
	r.Register(record(PhaseModal))
	r.Register(record(PhaseKinematics))

	r.Tick(newRunnerState())
	want := []Phase{PhaseInput, PhaseKinematics, PhaseModal, PhaseVisibility}
	for i, ph := range want {
		if order[i] != ph {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTickKeepsRegistrationOrderWithinPhase(t *testing.T) {
	r := NewRunner()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		r.Register(&probe{phase: PhaseTurn, fn: func(s *world.State) {
			order = append(order, i)
		}})
	}
	r.Register(&probe{phase: PhaseModal, fn: func(s *world.State) {
		s.PlayerActed = true
	}})

	r.Tick(newRunnerState())
	for i, v := range order {
		if v != i {
			t.Fatalf("within-phase order = %v, not registration order", order)
		}
	}
}

func TestTurnGateSkipsTurnPhase(t *testing.T) {
	r := NewRunner()
	turn := &probe{phase: PhaseTurn}
	always := &probe{phase: PhaseKinematics}
	r.Register(turn)
	r.Register(always)

	s := newRunnerState()
	r.Tick(s)
	if turn.runs != 0 {
		t.Fatal("turn phase ran without a player action")
	}
	if always.runs != 1 {
		t.Fatal("kinematics phase was gated")
	}
	if s.Turn != 0 {
		t.Fatalf("turn counter = %d after an idle frame", s.Turn)
	}
}

func TestTurnGateOpensOnPlayerAction(t *testing.T) {
	r := NewRunner()
	turn := &probe{phase: PhaseTurn}
	acted := false
	r.Register(&probe{phase: PhaseModal, fn: func(s *world.State) {
		// One discrete action; the follow-up idle frame must not reopen
		// the gate.
		if !acted {
			s.PlayerActed = true
			acted = true
		}
	}})
	r.Register(turn)

	s := newRunnerState()
	r.Tick(s)
	r.Tick(s) // gate resets each frame
	if turn.runs != 1 {
		t.Fatalf("turn phase ran %d times, want exactly once", turn.runs)
	}
	if s.Turn != 1 {
		t.Fatalf("turn counter = %d, want 1", s.Turn)
	}
}
