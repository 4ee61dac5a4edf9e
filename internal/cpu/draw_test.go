package cpu

import (
	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gomechip/internal/boot"
	"testing"
)

func TestInstruction_Draw(t *testing.T) {
	testInstruction(t, "DRW Vx, Vy, nibble", 0xD015, func(t *testing.T, c *CPU) {
		c.I = boot.GlyphAddress(0)
		c.V[0], c.V[1] = 10, 4
		step(t, c, 1)

		assert.True(t, c.video.Pixel(10, 4))
		assert.False(t, c.video.Pixel(11, 5))
		assert.Equal(t, uint8(0), c.V[0xF])

		c.PC = 0x200
		step(t, c, 1)

		assert.False(t, c.video.Pixel(10, 4))
		assert.Equal(t, uint8(1), c.V[0xF])
	})
	testInstruction(t, "DRW with zero rows", 0xD010, func(t *testing.T, c *CPU) {
		c.V[0xF] = 1
		step(t, c, 1)

		assert.Equal(t, uint8(0), c.V[0xF])
		assert.Equal(t, "", trimmed(c.video.String()))
	})
	testInstruction(t, "CLS", 0x00E0, func(t *testing.T, c *CPU) {
		c.video.DrawSprite(0, 0, []byte{0xFF, 0xFF}, true)
		step(t, c, 1)

		for y := 0; y < 32; y++ {
			for x := 0; x < 64; x++ {
				if c.video.Pixel(x, y) {
					t.Fatalf("pixel %d,%d still set", x, y)
				}
			}
		}
	})
}

// trimmed returns s with every off pixel and newline removed.
func trimmed(s string) string {
	var out []rune
	for _, r := range s {
		if r == '.' || r == '\n' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
