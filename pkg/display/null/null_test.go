package null

import (
	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gomechip/pkg/display"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"testing"
)

func TestDriver(t *testing.T) {
	d := New()
	d.Frames = 2
	d.Push(event.Press(5), event.Release(5))

	assert.Equal(t, []event.Event{event.Press(5), event.Release(5)}, d.Poll())
	assert.Empty(t, d.Poll())

	frame := make([]byte, display.FrameSize)
	frame[0] = 0x80
	assert.NoError(t, d.Render(frame))
	frame[0] = 0 // Render keeps its own copy
	assert.True(t, display.Pixel(d.Last(), 0, 0))

	assert.NoError(t, d.Render(frame))
	assert.Equal(t, 2, d.Rendered())
	assert.Equal(t, []event.Event{{Type: event.Quit}}, d.Poll())
}

func TestInstalled(t *testing.T) {
	assert.NotNil(t, display.GetDriver("null"))
}
