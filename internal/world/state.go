package world

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/core/event"
)

// State is the mutable simulation context handed to every system each frame.
// The engine is single-threaded; nothing here is safe for concurrent use.
type State struct {
	ECS    *ecs.World
	Stores *Stores
	Events *event.Bus

	Map        *Grid
	Visibility *VisGrid

	Player      ecs.EntityID
	PlayerActed bool
	Turn        int
	Depth       int

	// Set by the transition system, consumed by the session at frame end.
	NextDepth            int
	DepthChangeRequested bool

	Log    *MessageLog
	Rng    *rand.Rand
	Logger *zap.Logger

	Input      InputState
	FOVRadius  int
	// FOVStale forces a visibility recompute on the next frame. Set on fresh
	// levels and on arrival, where the last computed view belongs to an old
	// player position.
	FOVStale   bool
	Terminated bool
}

// NewState wires a fresh world, store bundle and event bus around an empty
// map of the given size.
func NewState(w, h int, rng *rand.Rand, logger *zap.Logger) *State {
	reg := ecs.NewRegistry()
	return &State{
		ECS:        ecs.NewWorld(reg),
		Stores:     NewStores(reg),
		Events:     event.NewBus(),
		Map:        NewGrid(w, h),
		Visibility: NewVisGrid(w, h),
		Log:        NewMessageLog(),
		Rng:        rng,
		Logger:     logger,
		FOVRadius:  8,
		FOVStale:   true,
	}
}

// BlockerAt returns the first alive entity with BlocksMovement standing on
// the tile, if any.
func (s *State) BlockerAt(x, y int) (ecs.EntityID, bool) {
	var found ecs.EntityID
	s.Stores.BlocksMovement.EachID(func(id ecs.EntityID) {
		if found != 0 {
			return
		}
		if p, ok := s.Stores.Position.Get(id); ok && p.X == x && p.Y == y {
			found = id
		}
	})
	return found, found != 0
}

// HostileAt returns the hostile creature on the tile, if any.
func (s *State) HostileAt(x, y int) (ecs.EntityID, bool) {
	var found ecs.EntityID
	s.Stores.Hostile.EachID(func(id ecs.EntityID) {
		if found != 0 {
			return
		}
		if p, ok := s.Stores.Position.Get(id); ok && p.X == x && p.Y == y {
			found = id
		}
	})
	return found, found != 0
}

// ItemsAt collects every loose item lying on the tile. Carried items have no
// Position and are never returned.
func (s *State) ItemsAt(x, y int) []ecs.EntityID {
	var out []ecs.EntityID
	s.Stores.Item.EachID(func(id ecs.EntityID) {
		if p, ok := s.Stores.Position.Get(id); ok && p.X == x && p.Y == y {
			out = append(out, id)
		}
	})
	return out
}

// IsWalkable reports whether the tile is in bounds, not a wall, and not
// occupied by a blocking entity.
func (s *State) IsWalkable(x, y int) bool {
	if s.Map.IsWall(x, y) {
		return false
	}
	_, blocked := s.BlockerAt(x, y)
	return !blocked
}

// TransparentAt reports whether sight passes through the tile. Walls and
// opaque entities (closed doors) block it.
func (s *State) TransparentAt(x, y int) bool {
	if s.Map.IsWall(x, y) {
		return false
	}
	blocked := false
	s.Stores.Opaque.EachID(func(id ecs.EntityID) {
		if blocked {
			return
		}
		if p, ok := s.Stores.Position.Get(id); ok && p.X == x && p.Y == y {
			blocked = true
		}
	})
	return !blocked
}

// ModalActive reports whether any modal marker entity exists. While one
// does, the turn gate stays closed and only modal systems consume input.
func (s *State) ModalActive() bool {
	return s.Stores.InventoryMenu.Len() > 0 ||
		s.Stores.CharacterScreen.Len() > 0 ||
		s.Stores.HelpScreen.Len() > 0 ||
		s.Stores.Targeting.Len() > 0
}

// PlayerPos returns the player's position. ok is false once the player is
// dead and destroyed.
func (s *State) PlayerPos() (component.Position, bool) {
	p, ok := s.Stores.Position.Get(s.Player)
	if !ok {
		return component.Position{}, false
	}
	return *p, true
}

// RequestDepthChange records a pending level switch for the session to act
// on after the frame completes.
func (s *State) RequestDepthChange(depth int) {
	s.NextDepth = depth
	s.DepthChangeRequested = true
}
