package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/mapgen"
	"github.com/delvegame/delve/internal/scripting"
	"github.com/delvegame/delve/internal/world"
)

// ItemUseSystem applies self-targeted consumables: healing and teleport.
// Healing goes through the script engine so campaigns can retune the
// formula without a rebuild.
type ItemUseSystem struct {
	engine *scripting.Engine
}

func NewItemUseSystem(engine *scripting.Engine) *ItemUseSystem {
	return &ItemUseSystem{engine: engine}
}

func (sys *ItemUseSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *ItemUseSystem) Update(s *world.State) {
	st := s.Stores
	var users []ecs.EntityID
	st.WantsToUseItem.EachID(func(id ecs.EntityID) {
		users = append(users, id)
	})
	for _, user := range users {
		intent, _ := st.WantsToUseItem.Get(user)
		st.WantsToUseItem.Remove(user)
		sys.use(s, user, intent.Item)
	}
}

func (sys *ItemUseSystem) use(s *world.State, user, item ecs.EntityID) {
	st := s.Stores
	if !s.ECS.Alive(item) {
		return
	}
	used := false

	if heal, ok := st.Healing.Get(item); ok {
		h, hok := st.Health.Get(user)
		if !hok {
			return
		}
		if h.Current >= h.Max {
			s.Log.Append("You are already at full health.")
			return
		}
		level := 1
		if xp, ok := st.Experience.Get(user); ok {
			level = xp.Level
		}
		res := sys.engine.CalcHeal(scripting.HealContext{
			Amount:    heal.Amount,
			CurrentHP: h.Current,
			MaxHP:     h.Max,
			Level:     level,
		})
		h.Current += res.Healed
		s.Log.Appendf("%s drinks the %s, recovering %d HP.",
			s.DisplayName(user), s.DisplayName(item), res.Healed)
		used = true
	}

	if st.Teleportation.Has(item) {
		x, y, err := mapgen.FindRandomFloorTile(s.Map, s.Rng, func(x, y int) bool {
			_, blocked := s.BlockerAt(x, y)
			return !blocked
		})
		if err != nil {
			s.Log.Append("The scroll fizzles.")
		} else {
			st.Position.Set(user, &component.Position{X: x, Y: y})
			s.Log.Appendf("%s vanishes and reappears elsewhere!", s.DisplayName(user))
		}
		used = true
	}

	if !used {
		s.Log.Appendf("Nothing happens when you use the %s.", s.DisplayName(item))
		return
	}
	if st.Consumable.Has(item) {
		removeFromInventory(s, user, item)
		s.ECS.Destroy(item)
	}
}
