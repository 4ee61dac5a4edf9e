// Package joypad provides an implementation of the CHIP-8 hex keypad.
// The keypad has 16 keys, 0x0 through 0xF, laid out as:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
package joypad

import (
	"github.com/thelolagemann/gomechip/internal/types"
)

// Button represents a key on the hex keypad.
type Button = uint8

// State represents the state of the keypad. Keys are pressed and released
// by the input source; instructions only read them.
type State struct {
	keys [types.KeyCount]bool
}

// New returns a new keypad state with every key released.
func New() *State {
	return &State{}
}

// Press presses a button. Buttons outside 0x0-0xF are ignored.
func (s *State) Press(button Button) {
	if button < types.KeyCount {
		s.keys[button] = true
	}
}

// Release releases a button. Buttons outside 0x0-0xF are ignored.
func (s *State) Release(button Button) {
	if button < types.KeyCount {
		s.keys[button] = false
	}
}

// IsPressed reports whether the button is held. Only the low nibble of
// button is used, matching how instructions address the keypad.
func (s *State) IsPressed(button Button) bool {
	return s.keys[button&0xF]
}

// Mask returns the held keys as a bitfield, bit n set for key n.
func (s *State) Mask() uint16 {
	var m uint16
	for i, held := range s.keys {
		if held {
			m |= 1 << i
		}
	}
	return m
}

// Reset releases every key.
func (s *State) Reset() {
	s.keys = [types.KeyCount]bool{}
}

var _ types.Stater = (*State)(nil)

func (s *State) Load(st *types.State) {
	m := st.Read16()
	for i := range s.keys {
		s.keys[i] = m&(1<<i) != 0
	}
}

func (s *State) Save(st *types.State) {
	st.Write16(s.Mask())
}
