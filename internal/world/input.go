package world

// Abstract input events deposited by the input/translation collaborator each
// frame. The core never sees raw terminal or window events.

type EventKind int

const (
	EventQuit EventKind = iota
	EventKey
	EventMouseDown
)

// Key is an abstract command key, already translated from whatever physical
// binding the frontend uses.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyWait
	KeyPickup
	KeyUse
	KeyThrow
	KeyEquip
	KeyDrop
	KeyCharacter
	KeyHelp
	KeyCast
	KeyFire
	KeyDescend
	KeyAscend
	KeyCancel
	KeyQuit
)

const (
	MouseLeft  = 1
	MouseRight = 2
)

type InputEvent struct {
	Kind   EventKind
	Key    Key
	Rune   rune // raw rune, used by menus for letter selection
	X, Y   int  // grid cell, for mouse events
	Button int
}

// InputState is the per-frame input snapshot: the ordered event list plus the
// pollable mouse cell.
type InputState struct {
	Events         []InputEvent
	MouseX, MouseY int
}
