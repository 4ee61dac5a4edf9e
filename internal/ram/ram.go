// Package ram provides the 4KB CHIP-8 main memory. Every access is bounds
// checked; an out of range access yields an *AccessError instead of
// touching unrelated state.
package ram

import (
	"errors"
	"fmt"
	"github.com/thelolagemann/gomechip/internal/types"
)

// ErrOutOfRange is matched by every *AccessError.
var ErrOutOfRange = errors.New("memory access out of range")

// AccessError describes an access of Length bytes starting at Address that
// does not fit in memory.
type AccessError struct {
	Address int
	Length  int
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("memory access out of range (address: 0x%04X, length: %d)", e.Address, e.Length)
}

// Is reports whether target is ErrOutOfRange.
func (e *AccessError) Is(target error) bool {
	return target == ErrOutOfRange
}

// RAM represents the main memory.
type RAM struct {
	data [types.MemorySize]byte
}

// NewRAM returns a new, zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Size returns the number of addressable bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// Check returns an *AccessError if the n bytes starting at address do not
// all lie within memory.
func (r *RAM) Check(address uint16, n int) error {
	if n < 0 || int(address)+n > len(r.data) {
		return &AccessError{Address: int(address), Length: n}
	}
	return nil
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) (uint8, error) {
	if err := r.Check(address, 1); err != nil {
		return 0, err
	}
	return r.data[address], nil
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) error {
	if err := r.Check(address, 1); err != nil {
		return err
	}
	r.data[address] = value
	return nil
}

// Slice returns the n bytes starting at address. The returned slice aliases
// memory, so writes through it are visible to later reads.
func (r *RAM) Slice(address uint16, n int) ([]byte, error) {
	if err := r.Check(address, n); err != nil {
		return nil, err
	}
	return r.data[address : int(address)+n], nil
}

// Copy writes b to memory starting at address. Nothing is written when b
// does not fit.
func (r *RAM) Copy(address uint16, b []byte) error {
	dst, err := r.Slice(address, len(b))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// Reset zeroes the memory.
func (r *RAM) Reset() {
	r.data = [types.MemorySize]byte{}
}

var _ types.Stater = (*RAM)(nil)

func (r *RAM) Load(s *types.State) {
	s.ReadData(r.data[:])
}

func (r *RAM) Save(s *types.State) {
	s.WriteData(r.data[:])
}
