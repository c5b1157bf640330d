package system

import (
	"github.com/delvegame/delve/internal/core/event"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/scripting"
	"github.com/delvegame/delve/internal/world"
)

// LevelingSystem promotes the player whenever accumulated experience crosses
// the threshold, once per crossing. Growth numbers come from the script
// engine; levels gained also heal by the amount the maximum grew.
type LevelingSystem struct {
	engine *scripting.Engine
}

func NewLevelingSystem(engine *scripting.Engine) *LevelingSystem {
	return &LevelingSystem{engine: engine}
}

func (sys *LevelingSystem) Phase() coresys.Phase { return coresys.PhasePost }

func (sys *LevelingSystem) Update(s *world.State) {
	st := s.Stores
	xp, ok := st.Experience.Get(s.Player)
	if !ok {
		return
	}
	for xp.CurrentXP >= xp.NextLevelXP {
		xp.CurrentXP -= xp.NextLevelXP

		h, _ := st.Health.Get(s.Player)
		m, _ := st.Mana.Get(s.Player)
		maxHP, maxMana := 0, 0
		if h != nil {
			maxHP = h.Max
		}
		if m != nil {
			maxMana = m.Max
		}
		res := sys.engine.CalcLevelUp(scripting.LevelUpContext{
			Level:       xp.Level,
			NextLevelXP: xp.NextLevelXP,
			MaxHP:       maxHP,
			MaxMana:     maxMana,
		})

		xp.Level++
		xp.NextLevelXP = res.NextLevelXP
		if h != nil {
			h.Max += res.HPGain
			h.Current += res.HPGain
		}
		if m != nil {
			m.Max += res.ManaGain
			m.Current += res.ManaGain
		}
		if c, ok := st.CombatStats.Get(s.Player); ok {
			c.Power += res.PowerGain
			c.Defense += res.DefenseGain
		}

		s.Log.Appendf("You feel stronger! Welcome to level %d.", xp.Level)
		event.Emit(s.Events, event.PlayerLeveled{Level: xp.Level})
	}
}
