package component

import "github.com/delvegame/delve/internal/core/ecs"

// Modal markers attach to the player while a UI mode is open. Any modal
// marker keeps the turn gate closed for the frame; attaching two at once is
// undefined. Each modal system clears its own marker.

type MenuPurpose string

const (
	MenuUse   MenuPurpose = "use"
	MenuEquip MenuPurpose = "equip"
	MenuDrop  MenuPurpose = "drop"
	MenuThrow MenuPurpose = "throw"
)

// InventoryMenu shows the inventory for item selection. FirstFrame skips the
// opening frame so the keystroke that opened the menu is not also read as a
// selection.
type InventoryMenu struct {
	Title      string
	Purpose    MenuPurpose
	FirstFrame bool
}

type CharacterScreen struct {
	FirstFrame bool
}

type HelpScreen struct {
	FirstFrame bool
}

type TargetPurpose string

const (
	TargetThrow TargetPurpose = "throw"
	TargetShoot TargetPurpose = "shoot"
	TargetCast  TargetPurpose = "cast"
)

// Targeting is the modal aim-and-confirm state, held only by the player.
// Item is set for throws, Spell for casts.
type Targeting struct {
	Range   int
	Purpose TargetPurpose
	Item    ecs.EntityID
	Spell   *KnowsSpell
}
