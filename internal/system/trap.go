package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// TrapSystem fires hidden traps under anything with health. A trap reveals
// itself on its first victim, deals its damage past armor, and never fires
// twice. It runs after all movement has settled.
type TrapSystem struct{}

func NewTrapSystem() *TrapSystem { return &TrapSystem{} }

func (sys *TrapSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *TrapSystem) Update(s *world.State) {
	st := s.Stores
	var armed []ecs.EntityID
	st.Trap.EachID(func(id ecs.EntityID) {
		if !st.Triggered.Has(id) {
			armed = append(armed, id)
		}
	})
	for _, trap := range armed {
		tpos, ok := st.Position.Get(trap)
		if !ok {
			continue
		}
		victim, ok := sys.victimAt(s, trap, tpos.X, tpos.Y)
		if !ok {
			continue
		}
		t, _ := st.Trap.Get(trap)
		st.Hidden.Remove(trap)
		st.Triggered.Set(trap, &component.Triggered{})
		if r, ok := st.Renderable.Get(trap); ok {
			r.Visible = true
		}
		applyDamage(s, victim, t.Damage)
		s.Log.Appendf("%s steps on a %s, taking %d damage!",
			s.DisplayName(victim), s.DisplayName(trap), t.Damage)
		if p, ok := st.InflictsPoison.Get(trap); ok {
			st.Poisoned.Set(victim, &component.Poisoned{Damage: p.Damage, Duration: p.Duration})
			s.Log.Appendf("%s is poisoned!", s.DisplayName(victim))
		}
	}
}

func (sys *TrapSystem) victimAt(s *world.State, trap ecs.EntityID, x, y int) (ecs.EntityID, bool) {
	var found ecs.EntityID
	var ok bool
	s.Stores.Health.EachID(func(id ecs.EntityID) {
		if ok || id == trap {
			return
		}
		if p, has := s.Stores.Position.Get(id); has && p.X == x && p.Y == y {
			found, ok = id, true
		}
	})
	return found, ok
}
