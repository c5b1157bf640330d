package system

import (
	"testing"

	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/world"
)

// give puts a freshly built item into the player's pack.
func (g *game) give(t *testing.T, tmplID string) ecs.EntityID {
	t.Helper()
	id, err := g.factory.CarriedItem(g.s, tmplID)
	if err != nil {
		t.Fatal(err)
	}
	inv, _ := g.s.Stores.Inventory.Get(g.s.Player)
	inv.Items = append(inv.Items, id)
	return id
}

func TestPickup(t *testing.T) {
	g := newGame(t)
	item, err := g.factory.Item(g.s, "healing_potion", 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.press(world.KeyPickup)
	inv, _ := g.s.Stores.Inventory.Get(g.s.Player)
	if len(inv.Items) != 1 || inv.Items[0] != item {
		t.Fatalf("inventory = %v, want the potion", inv.Items)
	}
	if g.s.Stores.Position.Has(item) {
		t.Fatal("carried item still has a map position")
	}
	g.checkIntentsClear(t)
}

func TestPickupNothing(t *testing.T) {
	g := newGame(t)
	g.press(world.KeyPickup)
	inv, _ := g.s.Stores.Inventory.Get(g.s.Player)
	if len(inv.Items) != 0 {
		t.Fatal("picked up thin air")
	}
}

func TestUsePotionHeals(t *testing.T) {
	g := newGame(t)
	g.give(t, "healing_potion")
	h, _ := g.s.Stores.Health.Get(g.s.Player)
	h.Current = 30

	g.press(world.KeyUse) // open menu
	g.typeRune('a')       // select the potion

	if got := g.playerHP(t); got != 40 {
		t.Fatalf("HP = %d, want 40 after drinking", got)
	}
	inv, _ := g.s.Stores.Inventory.Get(g.s.Player)
	if len(inv.Items) != 0 {
		t.Fatal("consumed potion still in pack")
	}
}

func TestUsePotionClampsAtMax(t *testing.T) {
	g := newGame(t)
	g.give(t, "healing_potion")
	h, _ := g.s.Stores.Health.Get(g.s.Player)
	h.Current = 45

	g.press(world.KeyUse)
	g.typeRune('a')

	if got := g.playerHP(t); got != 50 {
		t.Fatalf("HP = %d, want capped 50", got)
	}
}

func TestUsePotionAtFullHealthKeepsIt(t *testing.T) {
	g := newGame(t)
	potion := g.give(t, "healing_potion")

	g.press(world.KeyUse)
	g.typeRune('a')

	if !g.s.ECS.Alive(potion) {
		t.Fatal("potion wasted at full health")
	}
}

func TestTeleportScrollMovesPlayer(t *testing.T) {
	g := newGame(t)
	g.give(t, "teleport_scroll")
	before, _ := g.s.PlayerPos()

	g.press(world.KeyUse)
	g.typeRune('a')

	after, _ := g.s.PlayerPos()
	if before == after {
		t.Fatal("teleport left the player in place")
	}
	inv, _ := g.s.Stores.Inventory.Get(g.s.Player)
	if len(inv.Items) != 0 {
		t.Fatal("scroll not consumed")
	}
}

func TestEquipAndSwap(t *testing.T) {
	g := newGame(t)
	st := g.s.Stores
	sword := g.give(t, "sword")
	dagger := g.give(t, "dagger")

	g.press(world.KeyEquip)
	g.typeRune('a') // equip sword

	eq, _ := st.Equipment.Get(g.s.Player)
	if eq.Slots[component.SlotWeapon] != sword {
		t.Fatal("sword not equipped")
	}

	g.press(world.KeyEquip)
	g.typeRune('b') // swap to dagger

	eq, _ = st.Equipment.Get(g.s.Player)
	if eq.Slots[component.SlotWeapon] != dagger {
		t.Fatal("dagger did not replace sword")
	}
	if st.Equipped.Has(sword) {
		t.Fatal("sword still marked equipped after swap")
	}
}

func TestEquipSameItemRemovesIt(t *testing.T) {
	g := newGame(t)
	st := g.s.Stores
	armor := g.give(t, "leather_armor")

	g.press(world.KeyEquip)
	g.typeRune('a')
	eq, _ := st.Equipment.Get(g.s.Player)
	if eq.Slots[component.SlotArmor] != armor {
		t.Fatal("armor not equipped")
	}

	g.press(world.KeyEquip)
	g.typeRune('a')
	eq, _ = st.Equipment.Get(g.s.Player)
	if _, worn := eq.Slots[component.SlotArmor]; worn {
		t.Fatal("re-selecting worn armor should take it off")
	}
}

func TestDropItem(t *testing.T) {
	g := newGame(t)
	potion := g.give(t, "healing_potion")

	g.press(world.KeyDrop)
	g.typeRune('a')

	p, ok := g.s.Stores.Position.Get(potion)
	if !ok || p.X != 5 || p.Y != 5 {
		t.Fatalf("dropped item position = %+v,%v, want player cell", p, ok)
	}
	inv, _ := g.s.Stores.Inventory.Get(g.s.Player)
	if len(inv.Items) != 0 {
		t.Fatal("dropped item still in pack")
	}
}

func TestMenuCancel(t *testing.T) {
	g := newGame(t)
	g.give(t, "healing_potion")
	g.press(world.KeyUse)
	if !g.s.ModalActive() {
		t.Fatal("menu did not open")
	}
	g.press(world.KeyCancel)
	if g.s.ModalActive() {
		t.Fatal("menu did not close on cancel")
	}
	if g.s.Turn != 0 {
		t.Fatal("browsing the menu consumed a turn")
	}
}

func TestEmptyPackMenuDoesNotOpen(t *testing.T) {
	g := newGame(t)
	g.press(world.KeyUse)
	if g.s.ModalActive() {
		t.Fatal("menu opened with an empty pack")
	}
}
