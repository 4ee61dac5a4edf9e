package cpu

func init() {
	DefineInstruction(0x7, "ADD Vx, byte", func(c *CPU, i Instruction) error {
		c.V[i.X] += i.NN // VF is left untouched
		return nil
	})
	DefineALU(0x4, "ADD Vx, Vy", func(c *CPU, i Instruction) error {
		sum := uint16(c.V[i.X]) + uint16(c.V[i.Y])
		c.V[i.X] = uint8(sum)
		c.setFlag(sum > 0xFF)
		return nil
	})
	DefineALU(0x5, "SUB Vx, Vy", func(c *CPU, i Instruction) error {
		x, y := c.V[i.X], c.V[i.Y]
		c.V[i.X] = x - y
		c.setFlag(x >= y)
		return nil
	})
	DefineALU(0x7, "SUBN Vx, Vy", func(c *CPU, i Instruction) error {
		x, y := c.V[i.X], c.V[i.Y]
		c.V[i.X] = y - x
		c.setFlag(y >= x)
		return nil
	})
	DefineMisc(0x1E, "ADD I, Vx", func(c *CPU, i Instruction) error {
		c.I += uint16(c.V[i.X])
		return nil
	})
}
