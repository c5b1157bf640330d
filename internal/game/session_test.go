package game

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/config"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/core/event"
	"github.com/delvegame/delve/internal/data"
	"github.com/delvegame/delve/internal/spawn"
	"github.com/delvegame/delve/internal/world"
)

const sessionCreaturesYAML = `
creatures:
  - id: goblin
    name: Goblin
    glyph: g
    color: green
    hp: 10
    power: 3
    xp: 35
`

const sessionItemsYAML = `
items:
  - id: healing_potion
    name: Healing Potion
    glyph: "!"
    color: red
    consumable: true
    healing: 10
  - id: arrow
    name: Arrow
    glyph: "-"
    color: white
    consumable: true
    damage: 4
    ammo_type: arrow
`

const sessionTrapsYAML = `
traps:
  - id: spike
    name: Spike Trap
    glyph: "^"
    color: gray
    damage: 5
`

const sessionThemesYAML = `
themes:
  - id: caves
    name: Damp Caves
    map_style: caves
    creatures:
      - id: goblin
        weight: 10
    items:
      - id: healing_potion
        weight: 10
    traps:
      - id: spike
        weight: 10
  - id: crypt
    name: Old Crypt
    map_style: rooms
    creatures:
      - id: goblin
        weight: 10
    items:
      - id: healing_potion
        weight: 10
    traps:
      - id: spike
        weight: 10
sequence: [caves, crypt]
`

func newTestSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	creatures, err := data.LoadCreatureTable(write("creatures.yaml", sessionCreaturesYAML))
	if err != nil {
		t.Fatal(err)
	}
	items, err := data.LoadItemTable(write("items.yaml", sessionItemsYAML))
	if err != nil {
		t.Fatal(err)
	}
	traps, err := data.LoadTrapTable(write("traps.yaml", sessionTrapsYAML))
	if err != nil {
		t.Fatal(err)
	}
	themes, err := data.LoadThemeTable(write("themes.yaml", sessionThemesYAML))
	if err != nil {
		t.Fatal(err)
	}
	factory := spawn.NewFactory(creatures, items, traps, zap.NewNop())

	cfg := config.Defaults()
	cfg.Game.Seed = 7
	return NewSession(cfg, factory, themes, nil, zap.NewNop())
}

func TestSessionStartsInHub(t *testing.T) {
	sess := newTestSession(t)
	s := sess.State()

	if s.Depth != 0 {
		t.Fatalf("start depth = %d, want the hub", s.Depth)
	}
	if s.Stores.FullHealing.Len() != 1 || s.Stores.Supplies.Len() != 1 {
		t.Fatal("hub is missing the innkeeper or the merchant")
	}
	if s.Stores.StairsDown.Len() != 1 {
		t.Fatal("hub has no way down")
	}
	if s.Stores.Hostile.Len() != 0 {
		t.Fatal("hostiles spawned in the hub")
	}
	pos, ok := s.PlayerPos()
	if !ok || s.Map.IsWall(pos.X, pos.Y) {
		t.Fatal("player not standing on hub floor")
	}
}

func TestSessionDescendGeneratesFloor(t *testing.T) {
	sess := newTestSession(t)
	if err := sess.switchDepth(1); err != nil {
		t.Fatal(err)
	}
	s := sess.State()

	if s.Depth != 1 {
		t.Fatalf("depth = %d, want 1", s.Depth)
	}
	if s.Stores.StairsUp.Len() != 1 || s.Stores.StairsDown.Len() != 1 {
		t.Fatal("floor is missing stairs")
	}
	if s.Stores.Hostile.Len() == 0 {
		t.Fatal("floor spawned no creatures")
	}
	pos, _ := s.PlayerPos()
	up, _ := firstPosition(s, true)
	if pos != up {
		t.Fatalf("player at %v, want arrival on the stairs up at %v", pos, up)
	}
}

func TestSessionInventoryTravelsAcrossDepths(t *testing.T) {
	sess := newTestSession(t)
	s := sess.State()
	potion, err := sess.factory.CarriedItem(s, "healing_potion")
	if err != nil {
		t.Fatal(err)
	}
	inv, _ := s.Stores.Inventory.Get(s.Player)
	inv.Items = append(inv.Items, potion)
	h, _ := s.Stores.Health.Get(s.Player)
	h.Current = 17

	if err := sess.switchDepth(1); err != nil {
		t.Fatal(err)
	}
	s = sess.State()
	inv, _ = s.Stores.Inventory.Get(s.Player)
	if len(inv.Items) != 1 {
		t.Fatalf("inventory has %d items on the new floor, want 1", len(inv.Items))
	}
	if n, ok := s.Stores.Name.Get(inv.Items[0]); !ok || n.Value != "Healing Potion" {
		t.Fatal("carried potion lost its identity in transit")
	}
	h, _ = s.Stores.Health.Get(s.Player)
	if h.Current != 17 {
		t.Fatalf("player HP = %d after the climb down, want 17", h.Current)
	}
}

func TestSessionRevisitsCachedFloor(t *testing.T) {
	sess := newTestSession(t)
	if err := sess.switchDepth(1); err != nil {
		t.Fatal(err)
	}
	first := sess.State()
	hostiles := first.Stores.Hostile.Len()

	if err := sess.switchDepth(0); err != nil {
		t.Fatal(err)
	}
	if sess.State().Depth != 0 {
		t.Fatal("ascend did not reach the hub")
	}
	if err := sess.switchDepth(1); err != nil {
		t.Fatal(err)
	}
	if sess.State() != first {
		t.Fatal("revisited floor was regenerated instead of reused")
	}
	if sess.State().Stores.Hostile.Len() != hostiles {
		t.Fatal("cached floor lost its creatures")
	}
	if !sess.State().FOVStale {
		t.Fatal("revisited floor did not flag its view for recompute")
	}
}

func TestSessionThemesAlternateByDepth(t *testing.T) {
	sess := newTestSession(t)
	if th := sess.themes.ForDepth(1); th.MapStyle != "caves" {
		t.Fatalf("depth 1 theme %q, want the caves", th.ID)
	}
	if th := sess.themes.ForDepth(2); th.MapStyle != "rooms" {
		t.Fatalf("depth 2 theme %q, want the crypt", th.ID)
	}
	if th := sess.themes.ForDepth(3); th.ID != "caves" {
		t.Fatal("theme sequence does not cycle")
	}
}

func TestSessionHandlersTallyNotifications(t *testing.T) {
	sess := newTestSession(t)
	bus := sess.Events()

	event.Emit(bus, event.EntityDied{ID: 9, Name: "Goblin", X: 3, Y: 4})
	event.Emit(bus, event.EntityDied{ID: 10, Name: "Goblin", X: 3, Y: 5})
	event.Emit(bus, event.PlayerDied{})
	bus.SwapBuffers()
	bus.DispatchAll()

	if sess.kills != 2 {
		t.Fatalf("kill tally = %d, want 2", sess.kills)
	}
	if !sess.dead {
		t.Fatal("player death notification was not recorded")
	}
}

// firstPosition finds the cell of the first stairs entity, up or down.
func firstPosition(s *world.State, up bool) (component.Position, bool) {
	var pos component.Position
	found := false
	mark := func(id ecs.EntityID) {
		if p, ok := s.Stores.Position.Get(id); ok && !found {
			pos, found = *p, true
		}
	}
	if up {
		s.Stores.StairsUp.EachID(mark)
	} else {
		s.Stores.StairsDown.EachID(mark)
	}
	return pos, found
}
