package emulator

import "errors"

// CommandPacket is a command packet that is sent to the
// emulator to control it.
type CommandPacket struct {
	Command Command
	Data    []byte
}

// Command is a command that is sent to the emulator to
// control it.
type Command int

// ResponsePacket is a response packet that is sent
// from the emulator to the client.
type ResponsePacket struct {
	Command Command
	Data    []byte
	Error   error
}

const (
	// CommandPause pauses the emulator.
	CommandPause Command = iota
	// CommandResume resumes the emulator.
	CommandResume
	// CommandTogglePause pauses a running emulator, or resumes a paused one.
	CommandTogglePause
	// CommandClose halts the emulator.
	CommandClose
	// CommandReset reloads the ROM and restarts execution.
	CommandReset
	// CommandSaveState responds with a snapshot of the machine in Data.
	CommandSaveState
	// CommandLoadState restores the snapshot carried in Data.
	CommandLoadState
)

// ErrUnknownCommand is returned in a ResponsePacket for a command the
// emulator does not handle.
var ErrUnknownCommand = errors.New("unknown command")

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandTogglePause:
		return "toggle pause"
	case CommandClose:
		return "close"
	case CommandReset:
		return "reset"
	case CommandSaveState:
		return "save state"
	case CommandLoadState:
		return "load state"
	default:
		return "unknown"
	}
}
