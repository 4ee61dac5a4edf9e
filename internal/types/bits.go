package types

const (
	// Bit0 is the least significant bit of a byte.
	Bit0 = 0b0000_0001
	// Bit7 is the most significant bit of a byte.
	Bit7 = 0b1000_0000
)

// SpriteBits is the number of horizontal pixels encoded by one sprite byte,
// most significant bit first.
const SpriteBits = 8
