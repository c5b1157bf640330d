package system

import (
	"testing"

	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/world"
)

func TestAIChasesVisiblePlayer(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 9, 5)
	g.press(world.KeyWait)

	pos, _ := g.s.Stores.Position.Get(goblin)
	if pos.X != 8 || pos.Y != 5 {
		t.Fatalf("goblin at (%d,%d), want (8,5)", pos.X, pos.Y)
	}
	g.checkIntentsClear(t)
}

func TestAIStepsDiagonally(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 8, 8)
	g.press(world.KeyWait)

	pos, _ := g.s.Stores.Position.Get(goblin)
	if pos.X != 7 || pos.Y != 7 {
		t.Fatalf("goblin at (%d,%d), want (7,7)", pos.X, pos.Y)
	}
}

func TestAIWandersOutOfSight(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 15, 15) // beyond sight radius 8
	g.s.Stores.Fleeing.Set(goblin, &component.Fleeing{})
	g.press(world.KeyWait)

	pos, _ := g.s.Stores.Position.Get(goblin)
	if pos.X < 14 || pos.X > 16 || pos.Y < 14 || pos.Y > 16 {
		t.Fatalf("unseen goblin wandered to (%d,%d), more than one step", pos.X, pos.Y)
	}
	if g.s.Stores.Fleeing.Has(goblin) {
		t.Fatal("flee state survived losing sight of the player")
	}
	if hp := g.playerHP(t); hp != 50 {
		t.Fatal("unseen goblin attacked the player")
	}
}

func TestAIStrikesWhenAdjacent(t *testing.T) {
	g := newGame(t)
	g.factory.Creature(g.s, "goblin", 6, 5)
	g.press(world.KeyWait)

	// Goblin power 3 against player defense 2.
	if hp := g.playerHP(t); hp != 49 {
		t.Fatalf("player HP = %d, want 49", hp)
	}
}

func TestAINeverAttacksPackmates(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 7, 5)
	orc, _ := g.factory.Creature(g.s, "orc", 6, 5) // between goblin and player
	g.press(world.KeyWait)

	pos, _ := g.s.Stores.Position.Get(goblin)
	if pos.X == 6 && pos.Y == 5 {
		t.Fatal("goblin walked into the orc's cell")
	}
	h, _ := g.s.Stores.Health.Get(orc)
	if h.Current != h.Max {
		t.Fatal("goblin attacked its packmate")
	}
	g.checkIntentsClear(t)
}

func TestAIFleesWhenBadlyHurt(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 7, 5)
	h, _ := g.s.Stores.Health.Get(goblin)
	h.Current = 2
	g.press(world.KeyWait)

	pos, _ := g.s.Stores.Position.Get(goblin)
	if pos.X != 8 || pos.Y != 5 {
		t.Fatalf("hurt goblin at (%d,%d), want (8,5) away from player", pos.X, pos.Y)
	}
	if !g.s.Stores.Fleeing.Has(goblin) {
		t.Fatal("goblin not marked fleeing")
	}
}

func TestAIFleeingStopsWhenHealthy(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 7, 5)
	g.s.Stores.Fleeing.Set(goblin, &component.Fleeing{})
	g.press(world.KeyWait)

	if g.s.Stores.Fleeing.Has(goblin) {
		t.Fatal("goblin kept fleeing at full health")
	}
	pos, _ := g.s.Stores.Position.Get(goblin)
	if pos.X != 6 || pos.Y != 5 {
		t.Fatalf("recovered goblin at (%d,%d), want it re-engaging at (6,5)", pos.X, pos.Y)
	}
}

func TestAIDrinksPotionWhenBadlyHurt(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 7, 5)
	potion, err := g.factory.CarriedItem(g.s, "healing_potion")
	if err != nil {
		t.Fatal(err)
	}
	g.s.Stores.Inventory.Set(goblin, &component.Inventory{Items: []ecs.EntityID{potion}})
	h, _ := g.s.Stores.Health.Get(goblin)
	h.Current = 2
	g.press(world.KeyWait)

	if h.Current != h.Max {
		t.Fatalf("goblin HP = %d, want full %d after drinking", h.Current, h.Max)
	}
	pos, _ := g.s.Stores.Position.Get(goblin)
	if pos.X != 7 || pos.Y != 5 {
		t.Fatal("goblin moved on the turn it drank")
	}
	if g.s.ECS.Alive(potion) {
		t.Fatal("potion survived being drunk")
	}
	if g.s.Stores.Fleeing.Has(goblin) {
		t.Fatal("goblin fled despite having a potion")
	}
}

func TestAIDeadCreatureNeverActs(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 6, 5)
	h, _ := g.s.Stores.Health.Get(goblin)
	h.Current = 1
	g.press(world.KeyRight) // bump kills it before its half of the turn

	if g.s.ECS.Alive(goblin) {
		t.Fatal("goblin survived a killing blow")
	}
	if hp := g.playerHP(t); hp != 50 {
		t.Fatalf("a dead goblin struck back, player HP = %d", hp)
	}
}

func TestAIMageCastsInRange(t *testing.T) {
	g := newGame(t)
	mage, _ := g.factory.Creature(g.s, "mage", 9, 5)
	g.press(world.KeyWait)
	g.settle(t)

	// Shadow Bolt 8 plus half the mage's power of 2, less player defense 2.
	if hp := g.playerHP(t); hp != 43 {
		t.Fatalf("player HP = %d, want 43", hp)
	}
	m, _ := g.s.Stores.Mana.Get(mage)
	if m.Current != 15 {
		t.Fatalf("mage mana = %d, want 15", m.Current)
	}
	if !g.s.Stores.OnCooldown.Has(mage) {
		t.Fatal("mage has no cooldown after casting")
	}
}

func TestAIMageChasesWhileCooling(t *testing.T) {
	g := newGame(t)
	mage, _ := g.factory.Creature(g.s, "mage", 9, 5)
	g.s.Stores.OnCooldown.Set(mage, &component.OnCooldown{Turns: 3})
	g.press(world.KeyWait)

	pos, _ := g.s.Stores.Position.Get(mage)
	if pos.X != 8 {
		t.Fatalf("cooling mage at (%d,%d), want it chasing to (8,5)", pos.X, pos.Y)
	}
	if hp := g.playerHP(t); hp != 50 {
		t.Fatal("cooling mage still cast")
	}
}

func TestAIShootsWhenArmed(t *testing.T) {
	g := newGame(t)
	goblin, _ := g.factory.Creature(g.s, "goblin", 9, 5)
	bow, err := g.factory.CarriedItem(g.s, "bow")
	if err != nil {
		t.Fatal(err)
	}
	arrow, err := g.factory.CarriedItem(g.s, "arrow")
	if err != nil {
		t.Fatal(err)
	}
	g.s.Stores.Inventory.Set(goblin, &component.Inventory{Items: []ecs.EntityID{bow, arrow}})
	eq := component.NewEquipment()
	eq.Slots[component.SlotWeapon] = bow
	g.s.Stores.Equipment.Set(goblin, eq)
	g.s.Stores.Equipped.Set(bow, &component.Equipped{Owner: goblin, Slot: component.SlotWeapon})

	g.press(world.KeyWait)
	g.settle(t)

	// Arrow 4 plus half the goblin's power of 3, less player defense 2.
	if hp := g.playerHP(t); hp != 47 {
		t.Fatalf("player HP = %d, want 47", hp)
	}
	if g.s.ECS.Alive(arrow) {
		t.Fatal("arrow survived being fired")
	}
	pos, _ := g.s.Stores.Position.Get(goblin)
	if pos.X != 9 || pos.Y != 5 {
		t.Fatal("goblin moved on the turn it fired")
	}
}
