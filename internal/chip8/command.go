package chip8

import (
	"errors"
	"github.com/thelolagemann/gomechip/pkg/emulator"
)

// ErrHalted is returned for commands that would change the run state of
// a halted machine.
var ErrHalted = errors.New("machine is halted")

var _ emulator.Controller = (*VM)(nil)

// SendCommand applies a command to the machine. Once halted, only
// CommandSaveState is accepted.
func (m *VM) SendCommand(p emulator.CommandPacket) emulator.ResponsePacket {
	r := emulator.ResponsePacket{Command: p.Command}

	if m.status.IsHalted() && p.Command != emulator.CommandSaveState {
		r.Error = ErrHalted
		return r
	}

	switch p.Command {
	case emulator.CommandPause:
		m.pause()
	case emulator.CommandResume:
		m.resume()
	case emulator.CommandTogglePause:
		if m.status.IsPaused() {
			m.resume()
		} else {
			m.pause()
		}
	case emulator.CommandClose:
		m.status = emulator.Halted
	case emulator.CommandReset:
		r.Error = m.Reset()
	case emulator.CommandSaveState:
		r.Data = m.SaveState()
	case emulator.CommandLoadState:
		r.Error = m.LoadState(p.Data)
	default:
		r.Error = emulator.ErrUnknownCommand
	}

	return r
}

func (m *VM) pause() {
	if m.status.IsRunning() {
		m.status = emulator.Paused
		m.log.Infof("PAUSED")
	}
}

func (m *VM) resume() {
	if m.status.IsPaused() {
		m.status = emulator.Running
		m.log.Infof("resumed")
	}
}
