package cpu

func init() {
	DefineSystem(0xE0, "CLS", func(c *CPU, _ Instruction) error {
		c.video.Clear()
		return nil
	})
	DefineInstruction(0xD, "DRW Vx, Vy, nibble", func(c *CPU, i Instruction) error {
		sprite, err := c.mem.Slice(c.I, int(i.N))
		if err != nil {
			return err
		}
		collision := c.video.DrawSprite(c.V[i.X], c.V[i.Y], sprite, c.Quirks.ClipSprites)
		c.setFlag(collision)
		return nil
	})
}
