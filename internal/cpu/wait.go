package cpu

import (
	"github.com/thelolagemann/gomechip/internal/types"
	"math/bits"
)

// keyWait is the state of a pending FX0A. Keys already held when the wait
// began do not satisfy it; they must be released and pressed again.
type keyWait struct {
	register uint8
	key      uint8
	captured bool   // key has been pressed, waiting for its release
	held     uint16 // keys held since the wait began
}

// pollKeyWait advances the pending key wait against the current keypad
// state, writing the key to VX once the wait is satisfied.
func (c *CPU) pollKeyWait() {
	w := c.wait
	mask := c.keys.Mask()

	if w.captured {
		if mask&(1<<w.key) == 0 {
			c.finishKeyWait()
		}
		return
	}

	fresh := mask &^ w.held
	w.held &= mask
	if fresh == 0 {
		return
	}

	w.key = uint8(bits.TrailingZeros16(fresh))
	if !c.Quirks.KeyWaitRelease {
		c.finishKeyWait()
		return
	}
	w.captured = true
}

func (c *CPU) finishKeyWait() {
	c.V[c.wait.register] = c.wait.key
	c.wait = nil
}

func (w *keyWait) Load(s *types.State) {
	w.register = s.Read8() & 0xF
	w.key = s.Read8() & 0xF
	w.captured = s.ReadBool()
	w.held = s.Read16()
}

func (w *keyWait) Save(s *types.State) {
	s.Write8(w.register)
	s.Write8(w.key)
	s.WriteBool(w.captured)
	s.Write16(w.held)
}
