package cpu

import "github.com/thelolagemann/gomechip/internal/types"

// Stack is the bounded call stack. It holds up to types.StackSize return
// addresses; top is the number of addresses currently pushed.
type Stack struct {
	entries [types.StackSize]uint16
	top     int
}

// Push pushes a return address, failing with ErrStackOverflow when the
// stack is full.
func (s *Stack) Push(address uint16) error {
	if s.top == len(s.entries) {
		return ErrStackOverflow
	}
	s.entries[s.top] = address
	s.top++
	return nil
}

// Pop pops the most recent return address, failing with ErrStackUnderflow
// when the stack is empty.
func (s *Stack) Pop() (uint16, error) {
	if s.top == 0 {
		return 0, ErrStackUnderflow
	}
	s.top--
	return s.entries[s.top], nil
}

// Len returns the current call depth.
func (s *Stack) Len() int {
	return s.top
}

// Entries returns the pushed addresses, oldest first.
func (s *Stack) Entries() []uint16 {
	return append([]uint16(nil), s.entries[:s.top]...)
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.entries = [types.StackSize]uint16{}
	s.top = 0
}

// Load restores the stack, clamping a corrupt depth to the capacity.
func (s *Stack) Load(st *types.State) {
	s.top = int(st.Read8())
	if s.top > len(s.entries) {
		s.top = len(s.entries)
	}
	for i := range s.entries {
		s.entries[i] = st.Read16()
	}
}

func (s *Stack) Save(st *types.State) {
	st.Write8(uint8(s.top))
	for _, address := range s.entries {
		st.Write16(address)
	}
}
