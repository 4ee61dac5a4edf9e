package cpu

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomechip/internal/types"
	"testing"
)

func TestInstruction_SkipKey(t *testing.T) {
	testInstruction(t, "SKP Vx", 0xE09E, func(t *testing.T, c *CPU) {
		c.V[0] = 0x15 // only the low nibble selects the key
		c.keys.Press(5)
		step(t, c, 1)
		assert.Equal(t, uint16(0x204), c.PC)
	})
	testInstruction(t, "SKP Vx released", 0xE09E, func(t *testing.T, c *CPU) {
		c.V[0] = 5
		step(t, c, 1)
		assert.Equal(t, uint16(0x202), c.PC)
	})
	testInstruction(t, "SKNP Vx", 0xE0A1, func(t *testing.T, c *CPU) {
		c.V[0] = 5
		step(t, c, 1)
		assert.Equal(t, uint16(0x204), c.PC)
	})
	testInstruction(t, "SKNP Vx pressed", 0xE0A1, func(t *testing.T, c *CPU) {
		c.V[0] = 5
		c.keys.Press(5)
		step(t, c, 1)
		assert.Equal(t, uint16(0x202), c.PC)
	})
}

func TestInstruction_WaitKey(t *testing.T) {
	testInstruction(t, "LD Vx, K", 0xF30A, func(t *testing.T, c *CPU) {
		c.keys.Press(5) // already held, must not satisfy the wait
		step(t, c, 1)
		require.True(t, c.Waiting())

		step(t, c, 10)
		assert.True(t, c.Waiting())
		assert.Equal(t, types.ProgramStart+2, c.PC)

		c.keys.Release(5)
		step(t, c, 1)
		assert.True(t, c.Waiting())

		c.keys.Press(0xC)
		step(t, c, 1)
		assert.False(t, c.Waiting())
		assert.Equal(t, uint8(0xC), c.V[3])
		assert.Equal(t, types.ProgramStart+2, c.PC)
	})
	testInstruction(t, "LD Vx, K on release", 0xF30A, func(t *testing.T, c *CPU) {
		step(t, c, 1)
		c.keys.Press(7)
		step(t, c, 1)
		assert.True(t, c.Waiting(), "wait completes on release")

		c.keys.Press(2)
		c.keys.Release(7)
		step(t, c, 1)
		assert.False(t, c.Waiting())
		assert.Equal(t, uint8(7), c.V[3])
	}, WithQuirks(VIPQuirks))
	testInstruction(t, "LD Vx, K re-press", 0xF30A, func(t *testing.T, c *CPU) {
		c.keys.Press(9)
		step(t, c, 1)

		c.keys.Release(9)
		step(t, c, 1)
		c.keys.Press(9)
		step(t, c, 1)

		assert.False(t, c.Waiting())
		assert.Equal(t, uint8(9), c.V[3])
	})
}
