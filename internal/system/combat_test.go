package system

import (
	"testing"

	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/world"
)

func TestBumpAttackDamages(t *testing.T) {
	g := newGame(t)
	goblin, err := g.factory.Creature(g.s, "goblin", 6, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.press(world.KeyRight)
	h, _ := g.s.Stores.Health.Get(goblin)
	// Player power 5, goblin defense 0.
	if h.Current != 5 {
		t.Fatalf("goblin HP = %d, want 5 after a 5-damage hit", h.Current)
	}
	g.checkIntentsClear(t)
}

func TestEquipmentBonusesApply(t *testing.T) {
	g := newGame(t)
	st := g.s.Stores
	sword, err := g.factory.CarriedItem(g.s, "sword")
	if err != nil {
		t.Fatal(err)
	}
	inv, _ := st.Inventory.Get(g.s.Player)
	inv.Items = append(inv.Items, sword)
	eq, _ := st.Equipment.Get(g.s.Player)
	eq.Slots[component.SlotWeapon] = sword
	st.Equipped.Set(sword, &component.Equipped{Owner: g.s.Player, Slot: component.SlotWeapon})

	orc, err := g.factory.Creature(g.s, "orc", 6, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.press(world.KeyRight)
	h, _ := st.Health.Get(orc)
	// (5 power + 2 sword) - 1 orc defense = 6.
	if h.Current != 10 {
		t.Fatalf("orc HP = %d, want 10", h.Current)
	}
}

func TestDamageFloorsAtZero(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 6, 5)
	// Make the goblin impenetrable.
	c, _ := g.s.Stores.CombatStats.Get(goblin)
	c.Defense = 50
	g.press(world.KeyRight)
	h, _ := g.s.Stores.Health.Get(goblin)
	if h.Current != 10 {
		t.Fatalf("goblin HP = %d, want untouched 10", h.Current)
	}
}

func TestCreatureDeathGrantsXPAndDropsLoot(t *testing.T) {
	g := newGame(t)
	st := g.s.Stores
	goblin, _ := g.factory.Creature(g.s, "goblin", 6, 5)
	h, _ := st.Health.Get(goblin)
	h.Current = 3 // next hit kills

	dagger, _ := g.factory.CarriedItem(g.s, "dagger")
	st.Inventory.Set(goblin, &component.Inventory{Items: []ecs.EntityID{dagger}})

	g.press(world.KeyRight)

	if g.s.ECS.Alive(goblin) {
		t.Fatal("goblin survived a lethal hit")
	}
	xp, _ := st.Experience.Get(g.s.Player)
	if xp.CurrentXP != 35 {
		t.Fatalf("player XP = %d, want 35", xp.CurrentXP)
	}
	if p, ok := st.Position.Get(dagger); !ok || p.X != 6 || p.Y != 5 {
		t.Fatalf("dropped dagger position = %+v,%v, want (6,5)", p, ok)
	}
}

func TestDeadCreatureDoesNotStrikeBack(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 6, 5)
	h, _ := g.s.Stores.Health.Get(goblin)
	h.Current = 1
	hpBefore := g.playerHP(t)
	g.press(world.KeyRight)
	if g.s.ECS.Alive(goblin) {
		t.Fatal("goblin should be dead")
	}
	if g.playerHP(t) != hpBefore {
		t.Fatal("a creature killed this turn still attacked")
	}
}

func TestPlayerDeathTerminates(t *testing.T) {
	g := newGame(t)
	h, _ := g.s.Stores.Health.Get(g.s.Player)
	h.Current = 2
	goblin, _ := g.factory.Creature(g.s, "goblin", 6, 5)
	_ = goblin
	// Goblin power 3 vs player defense 2 = 1 damage per turn.
	g.press(world.KeyWait)
	g.press(world.KeyWait)
	if !g.s.Terminated {
		t.Fatal("player at zero HP did not end the run")
	}
}

func TestLevelUpAppliesGrowth(t *testing.T) {
	g := newGame(t)
	st := g.s.Stores
	goblin, _ := g.factory.Creature(g.s, "goblin", 6, 5)
	gh, _ := st.Health.Get(goblin)
	gh.Current = 1
	xp, _ := st.Experience.Get(g.s.Player)
	xp.CurrentXP = 190 // 35 more crosses the 200 threshold

	g.press(world.KeyRight)

	xp, _ = st.Experience.Get(g.s.Player)
	if xp.Level != 2 {
		t.Fatalf("level = %d, want 2", xp.Level)
	}
	if xp.CurrentXP != 25 {
		t.Fatalf("carried XP = %d, want 25", xp.CurrentXP)
	}
	if xp.NextLevelXP != 300 {
		t.Fatalf("next threshold = %d, want 300", xp.NextLevelXP)
	}
	h, _ := st.Health.Get(g.s.Player)
	if h.Max != 60 {
		t.Fatalf("max HP = %d, want 60 after growth", h.Max)
	}
	c, _ := st.CombatStats.Get(g.s.Player)
	if c.Power != 6 || c.Defense != 3 {
		t.Fatalf("stats = %+v, want 6/3", c)
	}
}
