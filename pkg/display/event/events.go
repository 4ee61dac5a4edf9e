// Package event defines the various event types that a display.Driver
// hands to the emulator when polled. This package is separate from the
// display package to avoid circular dependencies.
package event

// Type defines the various event types that a display.Driver can report.
// The event type indicates to the emulator what action should be taken.
type Type int

const (
	// Quit is sent when the user requests that the
	// application be closed.
	Quit Type = iota
	// Pause is sent when the user toggles pause.
	Pause
	// KeyDown is sent when a keypad key is pressed. Key holds the
	// CHIP-8 key.
	KeyDown
	// KeyUp is sent when a keypad key is released.
	KeyUp
	// SaveState is sent when the user asks for a snapshot to be taken.
	SaveState
	// LoadState is sent when the user asks for the last snapshot to be
	// restored.
	LoadState
	// Reset is sent when the user asks for the ROM to be restarted.
	Reset
)

func (t Type) String() string {
	switch t {
	case Quit:
		return "quit"
	case Pause:
		return "pause"
	case KeyDown:
		return "key down"
	case KeyUp:
		return "key up"
	case SaveState:
		return "save state"
	case LoadState:
		return "load state"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is the data structure that a display.Driver returns from Poll to
// indicate an event has occurred.
type Event struct {
	// Type is the type of event
	Type Type
	// Key is the keypad key for KeyDown and KeyUp events
	Key uint8
}

// Press returns a KeyDown event for key.
func Press(key uint8) Event {
	return Event{Type: KeyDown, Key: key}
}

// Release returns a KeyUp event for key.
func Release(key uint8) Event {
	return Event{Type: KeyUp, Key: key}
}
