package system

import (
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// CharacterScreenSystem holds the character sheet open until any key closes
// it. The sheet body itself is rendered by the frontend from
// State.CharacterSheet.
type CharacterScreenSystem struct{}

func NewCharacterScreenSystem() *CharacterScreenSystem { return &CharacterScreenSystem{} }

func (sys *CharacterScreenSystem) Phase() coresys.Phase { return coresys.PhaseModal }

func (sys *CharacterScreenSystem) Update(s *world.State) {
	scr, ok := s.Stores.CharacterScreen.Get(s.Player)
	if !ok {
		return
	}
	if scr.FirstFrame {
		scr.FirstFrame = false
		return
	}
	for _, ev := range s.Input.Events {
		if ev.Kind == world.EventKey {
			s.Stores.CharacterScreen.Remove(s.Player)
			return
		}
	}
}

// HelpScreenSystem mirrors the character screen for the keybinding list.
type HelpScreenSystem struct{}

func NewHelpScreenSystem() *HelpScreenSystem { return &HelpScreenSystem{} }

func (sys *HelpScreenSystem) Phase() coresys.Phase { return coresys.PhaseModal }

func (sys *HelpScreenSystem) Update(s *world.State) {
	scr, ok := s.Stores.HelpScreen.Get(s.Player)
	if !ok {
		return
	}
	if scr.FirstFrame {
		scr.FirstFrame = false
		return
	}
	for _, ev := range s.Input.Events {
		if ev.Kind == world.EventKey {
			s.Stores.HelpScreen.Remove(s.Player)
			return
		}
	}
}
