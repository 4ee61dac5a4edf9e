package emulator

// Status represents the run state of the emulator. It can be one of the
// following:
//
//   - Running
//   - Paused
//   - Halted
//
// Running and Paused toggle between each other, Halted is terminal.
type Status int

const (
	// Running represents the status of the emulator when it is executing
	// instructions.
	Running Status = iota
	// Paused represents the status of the emulator while execution is
	// suspended. Timers keep ticking and the display keeps rendering.
	Paused
	// Halted represents the status of the emulator once it has been asked
	// to quit, or has encountered a fatal error.
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Halted:
		return "Halted"
	default:
		return "Unknown"
	}
}

func (s Status) IsRunning() bool {
	return s == Running
}

func (s Status) IsPaused() bool {
	return s == Paused
}

func (s Status) IsHalted() bool {
	return s == Halted
}
