package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// CooldownSystem counts every spell cooldown down by one each evaluated
// turn. Registered exactly once; the cast system may run several times per
// frame and must not tick timers itself.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem { return &CooldownSystem{} }

func (sys *CooldownSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *CooldownSystem) Update(s *world.State) {
	st := s.Stores
	var ticking []ecs.EntityID
	st.OnCooldown.EachID(func(id ecs.EntityID) {
		ticking = append(ticking, id)
	})
	for _, id := range ticking {
		cd, ok := st.OnCooldown.Get(id)
		if !ok {
			continue
		}
		cd.Turns--
		if cd.Turns <= 0 {
			st.OnCooldown.Remove(id)
		}
	}
}

// CastSystem resolves cast intents from the player and from creatures into
// spell bolts. Damage is the spell's listed damage plus half the caster's
// base power; equipment never contributes.
type CastSystem struct{}

func NewCastSystem() *CastSystem { return &CastSystem{} }

func (sys *CastSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *CastSystem) Update(s *world.State) {
	st := s.Stores
	var casters []ecs.EntityID
	st.WantsToCastSpell.EachID(func(id ecs.EntityID) {
		casters = append(casters, id)
	})
	for _, caster := range casters {
		intent, _ := st.WantsToCastSpell.Get(caster)
		st.WantsToCastSpell.Remove(caster)
		sys.cast(s, caster, intent.Target)
	}
}

func (sys *CastSystem) cast(s *world.State, caster, target ecs.EntityID) {
	st := s.Stores
	spell, ok := st.KnowsSpell.Get(caster)
	if !ok || !s.ECS.Alive(target) {
		return
	}
	if cd, ok := st.OnCooldown.Get(caster); ok && cd.Turns > 0 {
		return
	}
	mana, ok := st.Mana.Get(caster)
	if !ok || mana.Current < spell.ManaCost {
		return
	}
	from, ok := st.Position.Get(caster)
	if !ok {
		return
	}
	to, ok := st.Position.Get(target)
	if !ok {
		return
	}

	mana.Current -= spell.ManaCost
	st.OnCooldown.Set(caster, &component.OnCooldown{Turns: spell.Cooldown})

	dmg := spell.Damage + basePower(s, caster)/2
	path := flightPath(s, from.X, from.Y, to.X, to.Y)
	spawnBolt(s, caster, path, '*', "purple", dmg)
	s.Log.Appendf("%s casts %s!", s.DisplayName(caster), spell.Name)
}
