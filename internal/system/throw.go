package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// ThrowSystem resolves throw intents by turning the thrown item itself into
// a projectile: it leaves the inventory and flies its own payload to the
// aimed cell. Area damage ignores defense entirely.
type ThrowSystem struct{}

func NewThrowSystem() *ThrowSystem { return &ThrowSystem{} }

func (sys *ThrowSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *ThrowSystem) Update(s *world.State) {
	st := s.Stores
	var throwers []ecs.EntityID
	st.WantsToThrow.EachID(func(id ecs.EntityID) {
		throwers = append(throwers, id)
	})
	for _, thrower := range throwers {
		intent, _ := st.WantsToThrow.Get(thrower)
		st.WantsToThrow.Remove(thrower)
		sys.throw(s, thrower, intent.Item, intent.TargetX, intent.TargetY)
	}
}

func (sys *ThrowSystem) throw(s *world.State, thrower, item ecs.EntityID, x, y int) {
	st := s.Stores
	if !s.ECS.Alive(item) {
		return
	}
	from, ok := st.Position.Get(thrower)
	if !ok {
		return
	}

	removeFromInventory(s, thrower, item)

	path := flightPath(s, from.X, from.Y, x, y)
	st.Projectile.Set(item, &component.Projectile{Path: path, Source: thrower})
	if len(path) > 0 {
		st.Position.Set(item, &component.Position{X: path[0].X, Y: path[0].Y})
	} else {
		st.Position.Set(item, &component.Position{X: from.X, Y: from.Y})
	}
	s.Log.Appendf("%s throws the %s.", s.DisplayName(thrower), s.DisplayName(item))
}
