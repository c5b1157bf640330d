package system

import (
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/scripting"
	"github.com/delvegame/delve/internal/spawn"
)

// RegisterAll wires the full pipeline in its canonical order. Within the
// turn phase the player's action resolves first, then creatures decide and
// their intents resolve through second registrations of the shared resolver
// systems, so no intent ever survives a frame.
func RegisterAll(r *coresys.Runner, engine *scripting.Engine, factory *spawn.Factory) {
	r.Register(NewInputSystem())
	r.Register(NewProjectileSystem())

	r.Register(NewPlayerControlSystem())
	r.Register(NewInventoryMenuSystem())
	r.Register(NewCharacterScreenSystem())
	r.Register(NewHelpScreenSystem())
	r.Register(NewEquipSystem())
	r.Register(NewTargetingSystem())

	movement := NewMovementSystem()
	melee := NewMeleeSystem()
	cast := NewCastSystem()
	shooting := NewShootingSystem()
	itemUse := NewItemUseSystem(engine)
	doors := NewDoorSystem()

	// Player half of the turn.
	r.Register(NewPoisonSystem())
	r.Register(NewCooldownSystem())
	r.Register(cast)
	r.Register(shooting)
	r.Register(NewThrowSystem())
	r.Register(itemUse)
	r.Register(movement)
	r.Register(doors)
	r.Register(melee)
	r.Register(NewPickupSystem())
	r.Register(NewRestSystem())
	r.Register(NewTradeSystem(factory))
	r.Register(NewDropSystem())

	// Creature half: decisions, then the same resolvers again.
	r.Register(NewAISystem())
	r.Register(cast)
	r.Register(shooting)
	r.Register(itemUse)
	r.Register(movement)
	r.Register(doors)
	r.Register(melee)
	r.Register(NewTrapSystem())

	r.Register(NewDeathSystem())
	r.Register(NewLevelingSystem(engine))
	r.Register(NewTransitionSystem())
	r.Register(NewVisibilitySystem())
}
