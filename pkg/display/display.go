// Package display provides the front ends of the emulator. A Driver
// presents frames to the user and reports the user's input back to the
// emulator; drivers register themselves with Install from an init
// function, and the CLI selects one by name.
package display

const (
	// Width is the width of a frame in pixels.
	Width = 64
	// Height is the height of a frame in pixels.
	Height = 32
	// FrameSize is the size of a packed frame in bytes.
	FrameSize = Width * Height / 8
)

// Pixel reports whether the pixel at x, y of a packed frame is on. A frame
// is packed 1 bit per pixel, row-major, most significant bit first.
// Coordinates outside the frame read as off.
func Pixel(frame []byte, x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	i := y*Width + x
	if i/8 >= len(frame) {
		return false
	}
	return frame[i/8]&(0x80>>(i%8)) != 0
}

// Keymap maps the left hand side of a QWERTY keyboard onto the hex
// keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var Keymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

const (
	// PauseKey toggles pause in every driver.
	PauseKey = ' '
	// QuitKey quits in every driver.
	QuitKey = '\x1b'
)

// KeyFor returns the keypad key mapped to r. Upper case letters map like
// their lower case counterparts.
func KeyFor(r rune) (uint8, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	k, ok := Keymap[r]
	return k, ok
}
