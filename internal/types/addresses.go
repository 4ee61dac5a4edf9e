package types

// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: built-in hexadecimal font (16 glyphs, 5 bytes each)
//	0x050-0x1FF: reserved for the original interpreter
//	0x200-0xFFF: program space
const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 0x1000
	// FontAddress is where the built-in font is installed.
	FontAddress uint16 = 0x000
	// GlyphSize is the number of bytes (rows) in each font glyph.
	GlyphSize = 5
	// ProgramStart is the entrypoint; ROMs are loaded here verbatim.
	ProgramStart uint16 = 0x200
	// MaxROMSize is the largest ROM that fits between ProgramStart and
	// the end of memory.
	MaxROMSize = MemorySize - int(ProgramStart)
)

const (
	// ScreenWidth is the width of the display in pixels.
	ScreenWidth = 64
	// ScreenHeight is the height of the display in pixels.
	ScreenHeight = 32
	// StackSize is the maximum number of nested subroutine calls.
	StackSize = 12
	// KeyCount is the number of keys on the hex keypad.
	KeyCount = 16
	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16
)
