package cpu

import (
	"github.com/thelolagemann/gomechip/internal/types"
)

func (c *CPU) shiftSource(i Instruction) uint8 {
	if c.Quirks.ShiftSourceVY {
		return c.V[i.Y]
	}
	return c.V[i.X]
}

func init() {
	DefineALU(0x6, "SHR Vx, Vy", func(c *CPU, i Instruction) error {
		v := c.shiftSource(i)
		c.V[i.X] = v >> 1
		c.setFlag(v&types.Bit0 != 0)
		return nil
	})
	DefineALU(0xE, "SHL Vx, Vy", func(c *CPU, i Instruction) error {
		v := c.shiftSource(i)
		c.V[i.X] = v << 1
		c.setFlag(v&types.Bit7 != 0)
		return nil
	})
}
