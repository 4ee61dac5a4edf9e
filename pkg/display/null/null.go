// Package null provides a display driver that presents nothing. It keeps
// the last rendered frame and replays queued input, which makes it useful
// for headless runs and tests.
package null

import (
	"github.com/thelolagemann/gomechip/pkg/display"
	"github.com/thelolagemann/gomechip/pkg/display/event"
)

func init() {
	d := New()
	display.Install("null", d, []display.DriverOption{
		{
			Name:        "frames",
			Default:     0,
			Value:       &d.Frames,
			Type:        "int",
			Description: "Quit after rendering this many frames (0 runs until interrupted)",
		},
	})
}

// Driver is a display.Driver without any output.
type Driver struct {
	// Frames is the number of frames to render before reporting Quit.
	Frames int

	emu      display.Emulator
	rendered int
	last     []byte
	pending  []event.Event
}

// New returns a new null driver.
func New() *Driver {
	return &Driver{last: make([]byte, display.FrameSize)}
}

// Push queues events to be returned by the next Poll.
func (d *Driver) Push(events ...event.Event) {
	d.pending = append(d.pending, events...)
}

func (d *Driver) Initialize(emu display.Emulator) error {
	d.emu = emu
	return nil
}

func (d *Driver) Poll() []event.Event {
	events := d.pending
	d.pending = nil
	if d.Frames > 0 && d.rendered >= d.Frames {
		events = append(events, event.Event{Type: event.Quit})
	}
	return events
}

func (d *Driver) Render(frame []byte) error {
	copy(d.last, frame)
	d.rendered++
	return nil
}

func (d *Driver) Stop() error {
	return nil
}

// Rendered returns the number of frames rendered so far.
func (d *Driver) Rendered() int {
	return d.rendered
}

// Last returns the most recently rendered frame.
func (d *Driver) Last() []byte {
	return d.last
}
