package cpu

import (
	"github.com/thelolagemann/gomechip/internal/boot"
)

func init() {
	DefineInstruction(0x6, "LD Vx, byte", func(c *CPU, i Instruction) error {
		c.V[i.X] = i.NN
		return nil
	})
	DefineALU(0x0, "LD Vx, Vy", func(c *CPU, i Instruction) error {
		c.V[i.X] = c.V[i.Y]
		return nil
	})
	DefineInstruction(0xA, "LD I, addr", func(c *CPU, i Instruction) error {
		c.I = i.NNN
		return nil
	})
	DefineInstruction(0xC, "RND Vx, byte", func(c *CPU, i Instruction) error {
		c.V[i.X] = uint8(c.rng.Intn(256)) & i.NN
		return nil
	})

	// timers
	DefineMisc(0x07, "LD Vx, DT", func(c *CPU, i Instruction) error {
		c.V[i.X] = c.timers.Delay
		return nil
	})
	DefineMisc(0x15, "LD DT, Vx", func(c *CPU, i Instruction) error {
		c.timers.Delay = c.V[i.X]
		return nil
	})
	DefineMisc(0x18, "LD ST, Vx", func(c *CPU, i Instruction) error {
		c.timers.Sound = c.V[i.X]
		return nil
	})

	// memory
	DefineMisc(0x29, "LD F, Vx", func(c *CPU, i Instruction) error {
		c.I = boot.GlyphAddress(c.V[i.X] & 0xF)
		return nil
	})
	DefineMisc(0x33, "LD B, Vx", func(c *CPU, i Instruction) error {
		dst, err := c.mem.Slice(c.I, 3)
		if err != nil {
			return err
		}
		v := c.V[i.X]
		dst[0] = v / 100
		dst[1] = v / 10 % 10
		dst[2] = v % 10
		return nil
	})
	DefineMisc(0x55, "LD [I], Vx", func(c *CPU, i Instruction) error {
		n := int(i.X) + 1
		dst, err := c.mem.Slice(c.I, n)
		if err != nil {
			return err
		}
		copy(dst, c.V[:n])
		if c.Quirks.LoadStoreIncrementsI {
			c.I += uint16(n)
		}
		return nil
	})
	DefineMisc(0x65, "LD Vx, [I]", func(c *CPU, i Instruction) error {
		n := int(i.X) + 1
		src, err := c.mem.Slice(c.I, n)
		if err != nil {
			return err
		}
		copy(c.V[:n], src)
		if c.Quirks.LoadStoreIncrementsI {
			c.I += uint16(n)
		}
		return nil
	})
}
