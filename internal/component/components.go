package component

import "github.com/delvegame/delve/internal/core/ecs"

// Component kinds are plain data. Each kind gets one typed store in
// world.Stores; at most one instance of a kind per entity.

// Position is a grid cell. Origin top-left, x grows right, y grows down.
type Position struct {
	X, Y int
}

// Velocity is a one-turn movement intent, not persistent momentum. The
// movement resolver zeroes it after each pass.
type Velocity struct {
	DX, DY int
}

// Renderable is the read-only drawing surface exposed to the frontend.
// Visible=false hides the entity until something reveals it (hidden traps).
type Renderable struct {
	Glyph   rune
	Color   string
	Visible bool
}

type Health struct {
	Current, Max int
}

type Mana struct {
	Current, Max int
}

// CombatStats are base values; equipped item bonuses are added on top when
// resolving melee attacks.
type CombatStats struct {
	Power, Defense int
}

type Name struct {
	Value string
}

// Player marks the player entity. Exactly one per world.
type Player struct{}

// Hostile marks creatures hostile to the player. Two hostiles never attack
// each other in bump resolution.
type Hostile struct{}

// BlocksMovement marks entities that occupy their cell exclusively.
type BlocksMovement struct{}

// Opaque marks entities that block line of sight (walls, closed doors).
type Opaque struct{}

type Door struct {
	Open bool
}

type Item struct{}

type Consumable struct{}

// Inventory holds item entity ids in pickup order. Duplicates are disallowed
// by convention, not structurally.
type Inventory struct {
	Items []ecs.EntityID
}

type EquipSlot int

const (
	SlotWeapon EquipSlot = iota
	SlotArmor
)

func (s EquipSlot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotArmor:
		return "armor"
	}
	return "unknown"
}

type Equippable struct {
	Slot         EquipSlot
	PowerBonus   int
	DefenseBonus int
}

// Equipped marks an item as worn. The item must also be in Owner's Inventory.
type Equipped struct {
	Owner ecs.EntityID
	Slot  EquipSlot
}

type Equipment struct {
	Slots map[EquipSlot]ecs.EntityID
}

func NewEquipment() *Equipment {
	return &Equipment{Slots: make(map[EquipSlot]ecs.EntityID, 2)}
}

type Experience struct {
	Level       int
	CurrentXP   int
	NextLevelXP int
	MaxDepth    int // deepest dungeon level reached, for hub re-entry
}

type GivesExperience struct {
	Amount int
}

type StairsDown struct{}

type StairsUp struct{}

// Ranged gives an item a use range: targeting distance for throwables and
// weapon reach for ammunition weapons.
type Ranged struct {
	Range int
}

type AreaOfEffect struct {
	Radius int
}

type InflictsDamage struct {
	Damage int
}

type ProvidesHealing struct {
	Amount int
}

type ProvidesTeleportation struct{}

// ProvidesFullHealing marks an NPC that restores the player on bump (innkeeper).
type ProvidesFullHealing struct{}

// ProvidesSupplies marks an NPC that trades on bump (merchant).
type ProvidesSupplies struct{}

// KnowsSpell is the single spell an entity can cast.
type KnowsSpell struct {
	Name     string
	Damage   int
	Range    int
	Cooldown int
	ManaCost int
}

// OnCooldown counts down once per evaluated turn, floored at zero.
type OnCooldown struct {
	Turns int
}

// Poisoned ticks its damage each turn until duration runs out.
type Poisoned struct {
	Duration, Damage int
}

type Trap struct {
	Damage int
}

// Hidden marks a trap that has not triggered yet.
type Hidden struct{}

// Triggered marks a trap that already fired; it never fires again.
type Triggered struct{}

type InflictsPoison struct {
	Damage   int
	Duration int
}

type Ammunition struct {
	Type string
}

type RequiresAmmunition struct {
	Type string
}

// Projectile carries the remaining precomputed cell path. The kinematics
// system advances one cell per frame.
type Projectile struct {
	Path []Position
	// Source is the attacker; area impacts never damage it.
	Source ecs.EntityID
}

// TargetIndicator marks an ephemeral targeting-preview entity, rebuilt every
// frame while aiming and never persisted.
type TargetIndicator struct {
	Color string
}
