package cpu

func init() {
	DefineKey(0x9E, "SKP Vx", func(c *CPU, i Instruction) error {
		c.skipIf(c.keys.IsPressed(c.V[i.X] & 0xF))
		return nil
	})
	DefineKey(0xA1, "SKNP Vx", func(c *CPU, i Instruction) error {
		c.skipIf(!c.keys.IsPressed(c.V[i.X] & 0xF))
		return nil
	})
	DefineMisc(0x0A, "LD Vx, K", func(c *CPU, i Instruction) error {
		c.wait = &keyWait{register: i.X, held: c.keys.Mask()}
		return nil
	})
}
