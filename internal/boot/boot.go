// Package boot provides the pieces needed to bring a CHIP-8 machine up:
// the built-in hexadecimal font that the original interpreter kept in low
// memory, and validated program images ready to be copied to the
// entrypoint.
package boot

import (
	"errors"
	"fmt"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomechip/internal/ram"
	"github.com/thelolagemann/gomechip/internal/types"
)

// ErrRomTooLarge is returned when a program does not fit between the
// entrypoint and the end of memory.
var ErrRomTooLarge = errors.New("rom too large")

// Font holds the 16 glyphs 0-F, 5 bytes each. Every byte is one row of a
// 4 pixel wide glyph in its high nibble.
var Font = [16 * types.GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the address of the font glyph for digit.
func GlyphAddress(digit uint8) uint16 {
	return types.FontAddress + uint16(digit)*types.GlyphSize
}

// InstallFont copies the font into memory at types.FontAddress.
func InstallFont(m *ram.RAM) error {
	return m.Copy(types.FontAddress, Font[:])
}

// ROM represents a CHIP-8 program image that is known to fit in program
// memory.
type ROM struct {
	raw         []byte // the raw program
	fingerprint uint64 // xxhash of the program
}

// LoadROM validates b and wraps it in a ROM. It returns an error wrapping
// ErrRomTooLarge when b exceeds types.MaxROMSize.
func LoadROM(b []byte) (*ROM, error) {
	if len(b) > types.MaxROMSize {
		return nil, fmt.Errorf("%w (program size: %d, free memory: %d)", ErrRomTooLarge, len(b), types.MaxROMSize)
	}

	return &ROM{
		raw:         b,
		fingerprint: xxhash.Sum64(b),
	}, nil
}

// Size returns the size of the program in bytes.
func (r *ROM) Size() int {
	return len(r.raw)
}

// Bytes returns the program.
func (r *ROM) Bytes() []byte {
	return r.raw
}

// Fingerprint returns the hex encoded xxhash of the program, used to
// identify programs in logs and save states.
func (r *ROM) Fingerprint() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%016x", r.fingerprint)
}

// Install copies the program to types.ProgramStart.
func (r *ROM) Install(m *ram.RAM) error {
	return m.Copy(types.ProgramStart, r.raw)
}
