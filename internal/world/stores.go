package world

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
)

// Stores bundles one typed component store per kind. Kinds are registered at
// compile time here; there is no dynamic type dispatch anywhere in the core.
type Stores struct {
	Position        *ecs.Store[component.Position]
	Velocity        *ecs.Store[component.Velocity]
	Renderable      *ecs.Store[component.Renderable]
	Health          *ecs.Store[component.Health]
	Mana            *ecs.Store[component.Mana]
	CombatStats     *ecs.Store[component.CombatStats]
	Name            *ecs.Store[component.Name]
	Player          *ecs.Store[component.Player]
	Hostile         *ecs.Store[component.Hostile]
	BlocksMovement  *ecs.Store[component.BlocksMovement]
	Opaque          *ecs.Store[component.Opaque]
	Door            *ecs.Store[component.Door]
	Item            *ecs.Store[component.Item]
	Consumable      *ecs.Store[component.Consumable]
	Inventory       *ecs.Store[component.Inventory]
	Equippable      *ecs.Store[component.Equippable]
	Equipped        *ecs.Store[component.Equipped]
	Equipment       *ecs.Store[component.Equipment]
	Experience      *ecs.Store[component.Experience]
	GivesExperience *ecs.Store[component.GivesExperience]
	StairsDown      *ecs.Store[component.StairsDown]
	StairsUp        *ecs.Store[component.StairsUp]
	Ranged          *ecs.Store[component.Ranged]
	AreaOfEffect    *ecs.Store[component.AreaOfEffect]
	InflictsDamage  *ecs.Store[component.InflictsDamage]
	Healing         *ecs.Store[component.ProvidesHealing]
	Teleportation   *ecs.Store[component.ProvidesTeleportation]
	FullHealing     *ecs.Store[component.ProvidesFullHealing]
	Supplies        *ecs.Store[component.ProvidesSupplies]
	KnowsSpell      *ecs.Store[component.KnowsSpell]
	OnCooldown      *ecs.Store[component.OnCooldown]
	Poisoned        *ecs.Store[component.Poisoned]
	Trap            *ecs.Store[component.Trap]
	Hidden          *ecs.Store[component.Hidden]
	Triggered       *ecs.Store[component.Triggered]
	InflictsPoison  *ecs.Store[component.InflictsPoison]
	Ammunition      *ecs.Store[component.Ammunition]
	RequiresAmmo    *ecs.Store[component.RequiresAmmunition]
	Projectile      *ecs.Store[component.Projectile]
	TargetIndicator *ecs.Store[component.TargetIndicator]

	// Intents
	WantsToAttack    *ecs.Store[component.WantsToAttack]
	WantsToUseItem   *ecs.Store[component.WantsToUseItem]
	WantsToEquip     *ecs.Store[component.WantsToEquip]
	WantsToDropItem  *ecs.Store[component.WantsToDropItem]
	WantsToShoot     *ecs.Store[component.WantsToShoot]
	WantsToCastSpell *ecs.Store[component.WantsToCastSpell]
	WantsToThrow     *ecs.Store[component.WantsToThrow]
	ToggleDoorState  *ecs.Store[component.ToggleDoorState]
	WantsToPickup    *ecs.Store[component.WantsToPickup]
	WantsToRest      *ecs.Store[component.WantsToRest]
	WantsToTrade     *ecs.Store[component.WantsToTrade]
	WantsToDescend   *ecs.Store[component.WantsToDescend]
	WantsToAscend    *ecs.Store[component.WantsToAscend]
	Fleeing          *ecs.Store[component.Fleeing]

	// Modal markers
	InventoryMenu   *ecs.Store[component.InventoryMenu]
	CharacterScreen *ecs.Store[component.CharacterScreen]
	HelpScreen      *ecs.Store[component.HelpScreen]
	Targeting       *ecs.Store[component.Targeting]
}

// NewStores builds every store and registers them all so entity destruction
// purges each pool in one pass.
func NewStores(reg *ecs.Registry) *Stores {
	s := &Stores{
		Position:        ecs.NewStore[component.Position](),
		Velocity:        ecs.NewStore[component.Velocity](),
		Renderable:      ecs.NewStore[component.Renderable](),
		Health:          ecs.NewStore[component.Health](),
		Mana:            ecs.NewStore[component.Mana](),
		CombatStats:     ecs.NewStore[component.CombatStats](),
		Name:            ecs.NewStore[component.Name](),
		Player:          ecs.NewStore[component.Player](),
		Hostile:         ecs.NewStore[component.Hostile](),
		BlocksMovement:  ecs.NewStore[component.BlocksMovement](),
		Opaque:          ecs.NewStore[component.Opaque](),
		Door:            ecs.NewStore[component.Door](),
		Item:            ecs.NewStore[component.Item](),
		Consumable:      ecs.NewStore[component.Consumable](),
		Inventory:       ecs.NewStore[component.Inventory](),
		Equippable:      ecs.NewStore[component.Equippable](),
		Equipped:        ecs.NewStore[component.Equipped](),
		Equipment:       ecs.NewStore[component.Equipment](),
		Experience:      ecs.NewStore[component.Experience](),
		GivesExperience: ecs.NewStore[component.GivesExperience](),
		StairsDown:      ecs.NewStore[component.StairsDown](),
		StairsUp:        ecs.NewStore[component.StairsUp](),
		Ranged:          ecs.NewStore[component.Ranged](),
		AreaOfEffect:    ecs.NewStore[component.AreaOfEffect](),
		InflictsDamage:  ecs.NewStore[component.InflictsDamage](),
		Healing:         ecs.NewStore[component.ProvidesHealing](),
		Teleportation:   ecs.NewStore[component.ProvidesTeleportation](),
		FullHealing:     ecs.NewStore[component.ProvidesFullHealing](),
		Supplies:        ecs.NewStore[component.ProvidesSupplies](),
		KnowsSpell:      ecs.NewStore[component.KnowsSpell](),
		OnCooldown:      ecs.NewStore[component.OnCooldown](),
		Poisoned:        ecs.NewStore[component.Poisoned](),
		Trap:            ecs.NewStore[component.Trap](),
		Hidden:          ecs.NewStore[component.Hidden](),
		Triggered:       ecs.NewStore[component.Triggered](),
		InflictsPoison:  ecs.NewStore[component.InflictsPoison](),
		Ammunition:      ecs.NewStore[component.Ammunition](),
		RequiresAmmo:    ecs.NewStore[component.RequiresAmmunition](),
		Projectile:      ecs.NewStore[component.Projectile](),
		TargetIndicator: ecs.NewStore[component.TargetIndicator](),

		WantsToAttack:    ecs.NewStore[component.WantsToAttack](),
		WantsToUseItem:   ecs.NewStore[component.WantsToUseItem](),
		WantsToEquip:     ecs.NewStore[component.WantsToEquip](),
		WantsToDropItem:  ecs.NewStore[component.WantsToDropItem](),
		WantsToShoot:     ecs.NewStore[component.WantsToShoot](),
		WantsToCastSpell: ecs.NewStore[component.WantsToCastSpell](),
		WantsToThrow:     ecs.NewStore[component.WantsToThrow](),
		ToggleDoorState:  ecs.NewStore[component.ToggleDoorState](),
		WantsToPickup:    ecs.NewStore[component.WantsToPickup](),
		WantsToRest:      ecs.NewStore[component.WantsToRest](),
		WantsToTrade:     ecs.NewStore[component.WantsToTrade](),
		WantsToDescend:   ecs.NewStore[component.WantsToDescend](),
		WantsToAscend:    ecs.NewStore[component.WantsToAscend](),
		Fleeing:          ecs.NewStore[component.Fleeing](),

		InventoryMenu:   ecs.NewStore[component.InventoryMenu](),
		CharacterScreen: ecs.NewStore[component.CharacterScreen](),
		HelpScreen:      ecs.NewStore[component.HelpScreen](),
		Targeting:       ecs.NewStore[component.Targeting](),
	}

	for _, r := range s.all() {
		reg.Register(r)
	}
	return s
}

func (s *Stores) all() []ecs.Removable {
	return []ecs.Removable{
		s.Position, s.Velocity, s.Renderable, s.Health, s.Mana, s.CombatStats,
		s.Name, s.Player, s.Hostile, s.BlocksMovement, s.Opaque, s.Door,
		s.Item, s.Consumable, s.Inventory, s.Equippable, s.Equipped,
		s.Equipment, s.Experience, s.GivesExperience, s.StairsDown, s.StairsUp,
		s.Ranged, s.AreaOfEffect, s.InflictsDamage, s.Healing, s.Teleportation,
		s.FullHealing, s.Supplies, s.KnowsSpell, s.OnCooldown, s.Poisoned,
		s.Trap, s.Hidden, s.Triggered, s.InflictsPoison, s.Ammunition,
		s.RequiresAmmo, s.Projectile, s.TargetIndicator,
		s.WantsToAttack, s.WantsToUseItem, s.WantsToEquip, s.WantsToDropItem,
		s.WantsToShoot, s.WantsToCastSpell, s.WantsToThrow, s.ToggleDoorState,
		s.WantsToPickup, s.WantsToRest, s.WantsToTrade, s.WantsToDescend, s.WantsToAscend,
		s.Fleeing, s.InventoryMenu, s.CharacterScreen, s.HelpScreen,
		s.Targeting,
	}
}

// IntentsClear reports whether every one-shot intent pool is empty. The
// pipeline contract says intents never survive a full pass; tests call this
// after running a frame.
func (s *Stores) IntentsClear() bool {
	return s.WantsToAttack.Len() == 0 &&
		s.WantsToUseItem.Len() == 0 &&
		s.WantsToEquip.Len() == 0 &&
		s.WantsToDropItem.Len() == 0 &&
		s.WantsToShoot.Len() == 0 &&
		s.WantsToCastSpell.Len() == 0 &&
		s.WantsToThrow.Len() == 0 &&
		s.ToggleDoorState.Len() == 0 &&
		s.WantsToPickup.Len() == 0 &&
		s.WantsToRest.Len() == 0 &&
		s.WantsToTrade.Len() == 0 &&
		s.WantsToDescend.Len() == 0 &&
		s.WantsToAscend.Len() == 0
}
