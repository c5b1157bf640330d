package system

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/data"
	"github.com/delvegame/delve/internal/spawn"
	"github.com/delvegame/delve/internal/world"
)

const testCreaturesYAML = `
creatures:
  - id: goblin
    name: Goblin
    glyph: g
    color: green
    hp: 10
    power: 3
    xp: 35
  - id: orc
    name: Orc
    glyph: o
    color: green
    hp: 16
    power: 4
    defense: 1
    xp: 100
  - id: mage
    name: Dark Mage
    glyph: m
    color: purple
    hp: 12
    power: 2
    xp: 150
    mana: 20
    spell:
      name: Shadow Bolt
      damage: 8
      range: 6
      cooldown: 3
      mana_cost: 5
`

const testItemsYAML = `
items:
  - id: healing_potion
    name: Healing Potion
    glyph: "!"
    color: red
    consumable: true
    healing: 10
  - id: teleport_scroll
    name: Teleport Scroll
    glyph: "?"
    color: blue
    consumable: true
    teleports: true
  - id: fireball_scroll
    name: Fireball Scroll
    glyph: "?"
    color: orange
    consumable: true
    damage: 12
    radius: 3
    range: 6
  - id: sword
    name: Sword
    glyph: "/"
    color: white
    slot: weapon
    power_bonus: 2
  - id: dagger
    name: Dagger
    glyph: "/"
    color: gray
    slot: weapon
    power_bonus: 1
  - id: leather_armor
    name: Leather Armor
    glyph: "["
    color: brown
    slot: armor
    defense_bonus: 1
  - id: bow
    name: Bow
    glyph: ")"
    color: brown
    slot: weapon
    range: 6
    requires_ammo: arrow
  - id: arrow
    name: Arrow
    glyph: "-"
    color: white
    consumable: true
    damage: 4
    ammo_type: arrow
  - id: poison_dart
    name: Poison Dart
    glyph: "-"
    color: green
    consumable: true
    damage: 2
    range: 5
    poison:
      damage: 2
      duration: 4
`

const testTrapsYAML = `
traps:
  - id: spike
    name: Spike Trap
    glyph: "^"
    color: gray
    damage: 5
`

// game bundles everything a system test needs: an open 20x20 arena with the
// player standing at (5,5).
type game struct {
	s       *world.State
	r       *coresys.Runner
	factory *spawn.Factory
}

func newGame(t *testing.T) *game {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	creatures, err := data.LoadCreatureTable(write("creatures.yaml", testCreaturesYAML))
	if err != nil {
		t.Fatal(err)
	}
	items, err := data.LoadItemTable(write("items.yaml", testItemsYAML))
	if err != nil {
		t.Fatal(err)
	}
	traps, err := data.LoadTrapTable(write("traps.yaml", testTrapsYAML))
	if err != nil {
		t.Fatal(err)
	}
	factory := spawn.NewFactory(creatures, items, traps, zap.NewNop())

	s := world.NewState(20, 20, rand.New(rand.NewSource(1)), zap.NewNop())
	s.Depth = 1
	factory.Player(s, 5, 5)

	r := coresys.NewRunner()
	RegisterAll(r, nil, factory)

	g := &game{s: s, r: r, factory: factory}
	g.tick() // initial FOV pass
	return g
}

// tick runs one frame with no input.
func (g *game) tick() {
	g.s.Input = world.InputState{}
	g.r.Tick(g.s)
}

// press runs one frame with a single key event.
func (g *game) press(key world.Key) {
	g.s.Input = world.InputState{Events: []world.InputEvent{{Kind: world.EventKey, Key: key}}}
	g.r.Tick(g.s)
}

// typeRune runs one frame with a letter keystroke, as menus see them.
func (g *game) typeRune(r rune) {
	g.s.Input = world.InputState{Events: []world.InputEvent{{Kind: world.EventKey, Rune: r}}}
	g.r.Tick(g.s)
}

// click runs one frame with a mouse press on a grid cell.
func (g *game) click(button, x, y int) {
	g.s.Input = world.InputState{
		Events: []world.InputEvent{{Kind: world.EventMouseDown, Button: button, X: x, Y: y}},
		MouseX: x, MouseY: y,
	}
	g.r.Tick(g.s)
}

// settle ticks until no projectile is in flight.
func (g *game) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 50; i++ {
		if g.s.Stores.Projectile.Len() == 0 {
			return
		}
		g.tick()
	}
	t.Fatal("projectiles never finished flying")
}

func (g *game) playerHP(t *testing.T) int {
	t.Helper()
	h, ok := g.s.Stores.Health.Get(g.s.Player)
	if !ok {
		t.Fatal("player has no health")
	}
	return h.Current
}

func (g *game) checkIntentsClear(t *testing.T) {
	t.Helper()
	if !g.s.Stores.IntentsClear() {
		t.Fatal("intents survived a full frame")
	}
}
