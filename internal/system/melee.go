package system

import (
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// MeleeSystem resolves bump attacks. Damage is effective power minus
// effective defense, both including equipment bonuses, floored at zero.
type MeleeSystem struct{}

func NewMeleeSystem() *MeleeSystem { return &MeleeSystem{} }

func (sys *MeleeSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *MeleeSystem) Update(s *world.State) {
	st := s.Stores
	var attackers []ecs.EntityID
	st.WantsToAttack.EachID(func(id ecs.EntityID) {
		attackers = append(attackers, id)
	})
	for _, attacker := range attackers {
		intent, _ := st.WantsToAttack.Get(attacker)
		st.WantsToAttack.Remove(attacker)
		sys.strike(s, attacker, intent.Target)
	}
}

func (sys *MeleeSystem) strike(s *world.State, attacker, target ecs.EntityID) {
	if !s.ECS.Alive(attacker) || !s.ECS.Alive(target) {
		return
	}
	if _, ok := s.Stores.Health.Get(target); !ok {
		return
	}
	dmg := effectivePower(s, attacker) - effectiveDefense(s, target)
	if dmg < 0 {
		dmg = 0
	}
	if dmg == 0 {
		s.Log.Appendf("%s attacks %s but does no damage.",
			s.DisplayName(attacker), s.DisplayName(target))
		return
	}
	applyDamage(s, target, dmg)
	s.Log.Appendf("%s hits %s for %d damage.",
		s.DisplayName(attacker), s.DisplayName(target), dmg)
}
