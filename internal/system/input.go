package system

import (
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// InputSystem handles the session-level events that apply in every mode:
// quit requests terminate regardless of menus or animations.
type InputSystem struct{}

func NewInputSystem() *InputSystem { return &InputSystem{} }

func (sys *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (sys *InputSystem) Update(s *world.State) {
	for _, ev := range s.Input.Events {
		if ev.Kind == world.EventQuit || (ev.Kind == world.EventKey && ev.Key == world.KeyQuit) {
			s.Terminated = true
		}
	}
}
