package event

import "github.com/delvegame/delve/internal/core/ecs"

// Notifications the engine publishes for outer shells (frontend, session).
// Gameplay systems never subscribe to these; in-pass communication between
// systems goes through intent components instead.

type EntityDied struct {
	ID   ecs.EntityID
	Name string
	X, Y int
}

type PlayerDied struct{}

type PlayerLeveled struct {
	Level int
}

type DepthChanged struct {
	From, To int
}
