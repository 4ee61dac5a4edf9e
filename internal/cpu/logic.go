package cpu

// defineLogic registers a bitwise 8XYN operation, which clears VF
// afterwards when the LogicResetsVF quirk is set.
func defineLogic(n uint8, name string, op func(x, y uint8) uint8) {
	DefineALU(n, name, func(c *CPU, i Instruction) error {
		c.V[i.X] = op(c.V[i.X], c.V[i.Y])
		if c.Quirks.LogicResetsVF {
			c.V[0xF] = 0
		}
		return nil
	})
}

func init() {
	defineLogic(0x1, "OR Vx, Vy", func(x, y uint8) uint8 { return x | y })
	defineLogic(0x2, "AND Vx, Vy", func(x, y uint8) uint8 { return x & y })
	defineLogic(0x3, "XOR Vx, Vy", func(x, y uint8) uint8 { return x ^ y })
}
