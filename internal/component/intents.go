package component

import "github.com/delvegame/delve/internal/core/ecs"

// Intent components are single-turn messages: created by one system, consumed
// and removed by exactly one other system within the same pipeline pass. None
// of them may survive a full pass; world.Stores.IntentsClear checks the
// contract in tests.

type WantsToAttack struct {
	Target ecs.EntityID
}

type WantsToUseItem struct {
	Item ecs.EntityID
}

type WantsToEquip struct {
	Item ecs.EntityID
}

type WantsToDropItem struct {
	Item ecs.EntityID
}

type WantsToShoot struct {
	Target ecs.EntityID
}

type WantsToCastSpell struct {
	Target ecs.EntityID
}

type WantsToThrow struct {
	Item             ecs.EntityID
	TargetX, TargetY int
}

// ToggleDoorState is attached to a door entity when something bumps it.
type ToggleDoorState struct{}

type WantsToPickup struct{}

type WantsToRest struct{}

type WantsToTrade struct{}

type WantsToDescend struct{}

type WantsToAscend struct{}

// Fleeing is AI state rather than a one-shot intent: it persists across turns
// until the flee stop-condition is met (healthy again or player out of sight).
type Fleeing struct{}
