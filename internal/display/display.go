// Package display provides the CHIP-8 monochrome display buffer. The
// buffer is only mutated by the clear and draw instructions, and is read
// once per frame by a display driver.
package display

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomechip/internal/types"
	"strings"
)

const (
	// Width is the width of the display in pixels.
	Width = types.ScreenWidth
	// Height is the height of the display in pixels.
	Height = types.ScreenHeight
	// PackedSize is the size in bytes of a packed (1 bit per pixel) frame.
	PackedSize = Width * Height / 8
)

// Buffer is a Width x Height bitmap, stored row-major. A true pixel is on.
type Buffer struct {
	pixels [Width * Height]bool
}

// NewBuffer returns a cleared buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Clear turns every pixel off.
func (b *Buffer) Clear() {
	b.pixels = [Width * Height]bool{}
}

// Pixel reports whether the pixel at x, y is on. Coordinates outside the
// display are reported as off.
func (b *Buffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b.pixels[y*Width+x]
}

// Pixels returns a copy of the bitmap.
func (b *Buffer) Pixels() [Width * Height]bool {
	return b.pixels
}

// DrawSprite XORs the sprite onto the buffer with its top left corner at
// x, y, which wrap to the display size at the origin. Each sprite byte is a
// row, most significant bit on the left. When clip is set, pixels that
// would fall past the right or bottom edge are dropped; otherwise they
// wrap around to the opposite edge. DrawSprite reports whether any on
// pixel was turned off.
func (b *Buffer) DrawSprite(x, y uint8, sprite []byte, clip bool) (collision bool) {
	originX := int(x) % Width
	originY := int(y) % Height

	for row, data := range sprite {
		py := originY + row
		if py >= Height {
			if clip {
				break
			}
			py %= Height
		}

		for bit := 0; bit < types.SpriteBits; bit++ {
			px := originX + bit
			if px >= Width {
				if clip {
					break
				}
				px %= Width
			}

			if data&(types.Bit7>>bit) == 0 {
				continue
			}

			i := py*Width + px
			if b.pixels[i] {
				collision = true
			}
			b.pixels[i] = !b.pixels[i]
		}
	}

	return collision
}

// Pack returns the bitmap packed 1 bit per pixel, row-major, most
// significant bit first.
func (b *Buffer) Pack() []byte {
	packed := make([]byte, PackedSize)
	for i, on := range b.pixels {
		if on {
			packed[i/8] |= types.Bit7 >> (i % 8)
		}
	}
	return packed
}

// Hash returns a hash of the bitmap, allowing drivers to cheaply detect
// unchanged frames.
func (b *Buffer) Hash() uint64 {
	return xxhash.Sum64(b.Pack())
}

// String renders the bitmap as text, one line per row, using '#' for on
// pixels and '.' for off pixels.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.pixels[y*Width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var _ types.Stater = (*Buffer)(nil)

func (b *Buffer) Load(s *types.State) {
	packed := make([]byte, PackedSize)
	s.ReadData(packed)
	for i := range b.pixels {
		b.pixels[i] = packed[i/8]&(types.Bit7>>(i%8)) != 0
	}
}

func (b *Buffer) Save(s *types.State) {
	s.WriteData(b.Pack())
}
