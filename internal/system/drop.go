package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// DropSystem puts a carried item back on the floor under its owner,
// unequipping it first if worn.
type DropSystem struct{}

func NewDropSystem() *DropSystem { return &DropSystem{} }

func (sys *DropSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *DropSystem) Update(s *world.State) {
	st := s.Stores
	var droppers []ecs.EntityID
	st.WantsToDropItem.EachID(func(id ecs.EntityID) {
		droppers = append(droppers, id)
	})
	for _, owner := range droppers {
		intent, _ := st.WantsToDropItem.Get(owner)
		st.WantsToDropItem.Remove(owner)
		pos, ok := st.Position.Get(owner)
		if !ok || !s.ECS.Alive(intent.Item) {
			continue
		}
		removeFromInventory(s, owner, intent.Item)
		st.Position.Set(intent.Item, &component.Position{X: pos.X, Y: pos.Y})
		s.Log.Appendf("%s drops the %s.", s.DisplayName(owner), s.DisplayName(intent.Item))
	}
}
