// Package timer provides the CHIP-8 delay and sound timers. Both count
// down once per tick (nominally 60Hz) while non-zero, independent of how
// many instructions run between ticks. The sound timer drives a tone
// listener, which is told whether a tone should currently be audible.
package timer

import (
	"github.com/thelolagemann/gomechip/internal/types"
	"time"
)

// Frequency is the nominal tick rate of the timers.
const Frequency = 60

// Interval is the time between two ticks at Frequency.
const Interval = time.Second / Frequency

// ToneListener is notified after every tick whether the sound timer is
// non-zero.
type ToneListener interface {
	SetTone(on bool)
}

// Controller holds the delay and sound timers.
type Controller struct {
	// Delay is decremented every tick while non-zero.
	Delay uint8
	// Sound is decremented every tick while non-zero, a tone is
	// audible while it is non-zero.
	Sound uint8

	listener ToneListener
}

// NewController returns a new timer controller.
func NewController() *Controller {
	return &Controller{}
}

// AttachToneListener sets the listener notified on every tick. A nil
// listener detaches the current one.
func (c *Controller) AttachToneListener(l ToneListener) {
	c.listener = l
}

// Tick decrements both timers if they are non-zero, then reports to the
// tone listener whether the sound timer is still running.
func (c *Controller) Tick() {
	if c.Delay > 0 {
		c.Delay--
	}
	if c.Sound > 0 {
		c.Sound--
	}

	if c.listener != nil {
		c.listener.SetTone(c.Sound > 0)
	}
}

// Audible reports whether the sound timer is running.
func (c *Controller) Audible() bool {
	return c.Sound > 0
}

// Reset stops both timers.
func (c *Controller) Reset() {
	c.Delay = 0
	c.Sound = 0
}

var _ types.Stater = (*Controller)(nil)

func (c *Controller) Load(s *types.State) {
	c.Delay = s.Read8()
	c.Sound = s.Read8()
}

func (c *Controller) Save(s *types.State) {
	s.Write8(c.Delay)
	s.Write8(c.Sound)
}
