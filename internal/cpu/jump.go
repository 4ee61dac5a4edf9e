package cpu

func init() {
	DefineSystem(0xEE, "RET", func(c *CPU, _ Instruction) error {
		address, err := c.Stack.Pop()
		if err != nil {
			return err
		}
		c.PC = address
		return nil
	})
	DefineInstruction(0x1, "JP addr", func(c *CPU, i Instruction) error {
		c.PC = i.NNN
		return nil
	})
	DefineInstruction(0x2, "CALL addr", func(c *CPU, i Instruction) error {
		if err := c.Stack.Push(c.PC); err != nil {
			return err
		}
		c.PC = i.NNN
		return nil
	})
	DefineInstruction(0xB, "JP V0, addr", func(c *CPU, i Instruction) error {
		c.PC = uint16(c.V[0]) + i.NNN
		return nil
	})

	// conditional skips
	DefineInstruction(0x3, "SE Vx, byte", func(c *CPU, i Instruction) error {
		c.skipIf(c.V[i.X] == i.NN)
		return nil
	})
	DefineInstruction(0x4, "SNE Vx, byte", func(c *CPU, i Instruction) error {
		c.skipIf(c.V[i.X] != i.NN)
		return nil
	})
	DefineInstruction(0x5, "SE Vx, Vy", func(c *CPU, i Instruction) error {
		c.skipIf(c.V[i.X] == c.V[i.Y])
		return nil
	})
	DefineInstruction(0x9, "SNE Vx, Vy", func(c *CPU, i Instruction) error {
		c.skipIf(c.V[i.X] != c.V[i.Y])
		return nil
	})
}
