package system

import (
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/spawn"
	"github.com/delvegame/delve/internal/world"
)

// RestSystem resolves a bump into the innkeeper: health and mana come back
// in full and lingering poison is cured.
type RestSystem struct{}

func NewRestSystem() *RestSystem { return &RestSystem{} }

func (sys *RestSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *RestSystem) Update(s *world.State) {
	st := s.Stores
	var resters []ecs.EntityID
	st.WantsToRest.EachID(func(id ecs.EntityID) {
		resters = append(resters, id)
	})
	for _, id := range resters {
		st.WantsToRest.Remove(id)
		if h, ok := st.Health.Get(id); ok {
			h.Current = h.Max
		}
		if m, ok := st.Mana.Get(id); ok {
			m.Current = m.Max
		}
		st.Poisoned.Remove(id)
		s.Log.Append("The innkeeper shows you to a warm bed. You feel fully restored.")
	}
}

// TradeSystem resolves a bump into the merchant: a fixed supply bundle of
// arrows and a healing potion lands in the trader's pack.
type TradeSystem struct {
	factory *spawn.Factory
}

func NewTradeSystem(factory *spawn.Factory) *TradeSystem {
	return &TradeSystem{factory: factory}
}

func (sys *TradeSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

// Supply bundle handed out per visit.
var supplyBundle = []struct {
	itemID string
	count  int
}{
	{"arrow", 5},
	{"healing_potion", 1},
}

func (sys *TradeSystem) Update(s *world.State) {
	st := s.Stores
	var traders []ecs.EntityID
	st.WantsToTrade.EachID(func(id ecs.EntityID) {
		traders = append(traders, id)
	})
	for _, id := range traders {
		st.WantsToTrade.Remove(id)
		inv, ok := st.Inventory.Get(id)
		if !ok {
			continue
		}
		granted := 0
		for _, b := range supplyBundle {
			for i := 0; i < b.count; i++ {
				item, err := sys.factory.CarriedItem(s, b.itemID)
				if err != nil {
					continue
				}
				inv.Items = append(inv.Items, item)
				granted++
			}
		}
		if granted > 0 {
			s.Log.Append("The merchant restocks your supplies.")
		}
	}
}
