package system

import (
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// PoisonSystem ticks every poisoned entity once per evaluated turn: damage
// lands, duration drops, and the effect falls off at zero.
type PoisonSystem struct{}

func NewPoisonSystem() *PoisonSystem { return &PoisonSystem{} }

func (sys *PoisonSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *PoisonSystem) Update(s *world.State) {
	st := s.Stores
	var poisoned []ecs.EntityID
	st.Poisoned.EachID(func(id ecs.EntityID) {
		poisoned = append(poisoned, id)
	})
	for _, id := range poisoned {
		p, ok := st.Poisoned.Get(id)
		if !ok {
			continue
		}
		applyDamage(s, id, p.Damage)
		s.Log.Appendf("%s suffers %d poison damage.", s.DisplayName(id), p.Damage)
		p.Duration--
		if p.Duration <= 0 {
			st.Poisoned.Remove(id)
			s.Log.Appendf("%s shakes off the poison.", s.DisplayName(id))
		}
	}
}
