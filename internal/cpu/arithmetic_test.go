package cpu

import (
	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gomechip/internal/types"
	"testing"
)

// exhaustive runs opcode for every combination of V0 and V1.
func exhaustive(t *testing.T, c *CPU, f func(x, y uint8)) {
	t.Helper()
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			c.PC = types.ProgramStart
			c.V[0], c.V[1] = uint8(x), uint8(y)
			step(t, c, 1)
			f(uint8(x), uint8(y))
		}
	}
}

func TestInstruction_Arithmetic(t *testing.T) {
	testInstruction(t, "ADD Vx, byte", 0x7002, func(t *testing.T, c *CPU) {
		c.V[0] = 0xFF
		c.V[0xF] = 9
		step(t, c, 1)

		assert.Equal(t, uint8(0x01), c.V[0])
		assert.Equal(t, uint8(9), c.V[0xF], "VF must not be affected")
	})
	testInstruction(t, "ADD Vx, Vy", 0x8014, func(t *testing.T, c *CPU) {
		exhaustive(t, c, func(x, y uint8) {
			sum := int(x) + int(y)
			if c.V[0] != uint8(sum) || (c.V[0xF] == 1) != (sum > 0xFF) {
				t.Fatalf("%02X + %02X: got V0 %02X VF %d", x, y, c.V[0], c.V[0xF])
			}
		})
	})
	testInstruction(t, "SUB Vx, Vy", 0x8015, func(t *testing.T, c *CPU) {
		exhaustive(t, c, func(x, y uint8) {
			if c.V[0] != x-y || (c.V[0xF] == 1) != (x >= y) {
				t.Fatalf("%02X - %02X: got V0 %02X VF %d", x, y, c.V[0], c.V[0xF])
			}
		})
	})
	testInstruction(t, "SUBN Vx, Vy", 0x8017, func(t *testing.T, c *CPU) {
		exhaustive(t, c, func(x, y uint8) {
			if c.V[0] != y-x || (c.V[0xF] == 1) != (y >= x) {
				t.Fatalf("%02X =- %02X: got V0 %02X VF %d", x, y, c.V[0], c.V[0xF])
			}
		})
	})
	testInstruction(t, "ADD VF, Vy", 0x8F14, func(t *testing.T, c *CPU) {
		c.V[0xF] = 0xFF
		c.V[1] = 0x01
		step(t, c, 1)

		assert.Equal(t, uint8(1), c.V[0xF], "flag must be written after the result")
	})
	testInstruction(t, "SUB VF, VF", 0x8FF5, func(t *testing.T, c *CPU) {
		c.V[0xF] = 0x10
		step(t, c, 1)

		assert.Equal(t, uint8(1), c.V[0xF])
	})
	testInstruction(t, "ADD I, Vx", 0xF01E, func(t *testing.T, c *CPU) {
		c.I = 0x2FF
		c.V[0] = 0x02
		c.V[0xF] = 7
		step(t, c, 1)

		assert.Equal(t, uint16(0x301), c.I)
		assert.Equal(t, uint8(7), c.V[0xF])
	})
}

func TestInstruction_Sequence(t *testing.T) {
	c := newTestCPU(t)
	program(t, c, types.ProgramStart, 0x6005, 0x6103, 0x8014)
	step(t, c, 3)

	assert.Equal(t, uint8(8), c.V[0])
	assert.Equal(t, uint8(0), c.V[0xF])
	assert.Equal(t, uint16(0x206), c.PC)
}
