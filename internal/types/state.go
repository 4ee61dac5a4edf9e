package types

import (
	"errors"
)

// ErrShortState is returned by the checked readers when a state does not
// hold enough bytes for the requested value.
var ErrShortState = errors.New("state: unexpected end of data")

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State represents a serialised machine snapshot. This is used to
// save and load states between runs.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first read error encountered
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// Err returns the first error encountered while reading, if any. Reads
// past the end of the data return zero values and record ErrShortState.
func (s *State) Err() error {
	return s.err
}

func (s *State) available(n int) bool {
	if s.err != nil {
		return false
	}
	if s.readPosition+n > len(s.raw) {
		s.err = ErrShortState
		return false
	}
	return true
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

func (s *State) Read8() uint8 {
	if !s.available(1) {
		return 0
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	if !s.available(2) {
		return 0
	}
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

func (s *State) ReadData(p []byte) {
	if !s.available(len(p)) {
		return
	}
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
}

func (s *State) Bytes() []byte {
	return s.raw
}
