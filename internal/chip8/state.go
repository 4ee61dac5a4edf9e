package chip8

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/thelolagemann/gomechip/internal/types"
	"github.com/thelolagemann/gomechip/pkg/emulator"
)

const stateVersion = 1

var stateMagic = []byte("CH8S")

var (
	// ErrInvalidState is returned when a snapshot is not one written by
	// SaveState, or was written by an incompatible version.
	ErrInvalidState = errors.New("invalid save state")
	// ErrStateMismatch is returned when a snapshot was taken with a
	// different program loaded.
	ErrStateMismatch = errors.New("save state belongs to a different program")
)

// components returns the parts of the machine held in a snapshot, in
// snapshot order.
func (m *VM) components() []types.Stater {
	return []types.Stater{m.CPU, m.Memory, m.Video, m.Keypad, m.Timer}
}

// SaveState returns a snapshot of the whole machine: the CPU, memory,
// display, keypad, timers and run state. The snapshot is tied to the
// loaded program by its fingerprint.
func (m *VM) SaveState() []byte {
	s := types.NewState()
	s.WriteData(stateMagic)
	s.Write8(stateVersion)
	s.WriteData([]byte(m.rom.Fingerprint()))

	s.WriteBool(m.status.IsPaused())
	for _, c := range m.components() {
		c.Save(s)
	}

	return s.Bytes()
}

// LoadState restores a snapshot taken with SaveState. The machine is left
// untouched when the snapshot is rejected.
func (m *VM) LoadState(b []byte) error {
	s := types.StateFromBytes(b)

	magic := make([]byte, len(stateMagic))
	s.ReadData(magic)
	if !bytes.Equal(magic, stateMagic) {
		return ErrInvalidState
	}
	if v := s.Read8(); v != stateVersion {
		return fmt.Errorf("%w: version %d", ErrInvalidState, v)
	}
	fingerprint := make([]byte, len(m.rom.Fingerprint()))
	s.ReadData(fingerprint)
	if string(fingerprint) != m.rom.Fingerprint() {
		return ErrStateMismatch
	}
	if s.Err() != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, s.Err())
	}

	// restore into the live machine, rolling back if the body is short
	rollback := m.SaveState()

	paused := s.ReadBool()
	for _, c := range m.components() {
		c.Load(s)
	}

	if err := s.Err(); err != nil {
		if rerr := m.LoadState(rollback); rerr != nil {
			panic(rerr) // a snapshot of ourselves must always load
		}
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	m.status = emulator.Running
	if paused {
		m.status = emulator.Paused
	}

	return nil
}

// storeSnapshot takes a snapshot on behalf of the display driver, writing
// it to the save file if there is one.
func (m *VM) storeSnapshot() {
	r := m.SendCommand(emulator.CommandPacket{Command: emulator.CommandSaveState})
	if m.save == nil {
		m.snapshot = r.Data
		m.log.Infof("saved state (%d bytes)", len(r.Data))
		return
	}

	m.save.SetBytes(r.Data)
	if err := m.save.Close(); err != nil {
		m.log.Errorf("writing save state: %v", err)
		return
	}
	m.log.Infof("saved state to %s", m.save.Path)
}

// restoreSnapshot restores the most recent snapshot on behalf of the
// display driver.
func (m *VM) restoreSnapshot() {
	b := m.snapshot
	if m.save != nil {
		b = m.save.Bytes()
	}
	if len(b) == 0 {
		m.log.Warnf("no save state to load")
		return
	}

	r := m.SendCommand(emulator.CommandPacket{Command: emulator.CommandLoadState, Data: b})
	if r.Error != nil {
		m.log.Errorf("loading save state: %v", r.Error)
		return
	}
	m.log.Infof("loaded state")
}
