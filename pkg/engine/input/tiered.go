// Package input turns device events into high-level intents in layers: raw
// device codes, debounced events, bindings and finally the Intent a client
// acts on.
package input

import (
	"time"

	"chunky/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent of the player.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta / UI
	ActionQuit
	ActionDumpMap   // write the current chunk to a text file
	ActionToggleFog // show or hide undiscovered tiles
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// Direction returns the movement direction of a move intent
func (i Intent) Direction() (world.Direction, bool) {
	switch i.Action {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	}
	return world.North, false
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "q", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// NewRawInput stamps a code read from a device
func NewRawInput(d Device, code string) RawInput {
	return RawInput{Device: d, Code: code, Timestamp: time.Now()}
}

// DebouncedInput is the 2nd-layer representation after debouncing. Terminal
// raw mode and ebiten's just-pressed query already deliver one event per key
// press, so this is a thin wrapper.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	// Quit
	"q":      ActionQuit,
	"Q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	"m": ActionDumpMap,
	"f": ActionToggleFog,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionQuit:
		return "Quit"
	case ActionDumpMap:
		return "Dump Map"
	case ActionToggleFog:
		return "Toggle Fog"
	default:
		return "None"
	}
}
