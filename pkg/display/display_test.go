package display

import (
	"flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"testing"
)

type stubDriver struct{ name string }

func (s *stubDriver) Initialize(Emulator) error { return nil }
func (s *stubDriver) Poll() []event.Event       { return nil }
func (s *stubDriver) Render([]byte) error       { return nil }
func (s *stubDriver) Stop() error               { return nil }

func withDrivers(t *testing.T) {
	t.Helper()
	saved := InstalledDrivers
	t.Cleanup(func() { InstalledDrivers = saved })
	InstalledDrivers = nil
}

func TestPixel(t *testing.T) {
	frame := make([]byte, FrameSize)
	frame[0] = 0x80
	frame[FrameSize-1] = 0x01

	assert.True(t, Pixel(frame, 0, 0))
	assert.False(t, Pixel(frame, 1, 0))
	assert.True(t, Pixel(frame, Width-1, Height-1))
	assert.False(t, Pixel(frame, Width, 0))
	assert.False(t, Pixel(frame, -1, 0))
	assert.False(t, Pixel(nil, 0, 0))
}

func TestKeyFor(t *testing.T) {
	tests := map[rune]uint8{'1': 0x1, '4': 0xC, 'q': 0x4, 'R': 0xD, 'a': 0x7, 'F': 0xE, 'x': 0x0, 'v': 0xF}
	for r, want := range tests {
		got, ok := KeyFor(r)
		require.True(t, ok, "%q", r)
		assert.Equal(t, want, got, "%q", r)
	}

	_, ok := KeyFor('p')
	assert.False(t, ok)
	assert.Len(t, Keymap, 16)
}

func TestGetDriver(t *testing.T) {
	withDrivers(t)
	null, term := &stubDriver{"null"}, &stubDriver{"terminal"}
	Install("null", null, nil)
	Install("terminal", term, nil)

	assert.Same(t, null, GetDriver("null"))
	assert.Same(t, term, GetDriver("auto"), "terminal is preferred over null")
	assert.Nil(t, GetDriver("fyne"))
	assert.Equal(t, []string{"null", "terminal"}, Names())
}

func TestRegisterFlags(t *testing.T) {
	withDrivers(t)
	var scale int
	var outline bool
	var addrA, addrB string
	Install("sdl", &stubDriver{}, []DriverOption{
		{Name: "scale", Default: 20, Value: &scale, Type: "int"},
		{Name: "outline", Default: false, Value: &outline, Type: "bool"},
		{Name: "addr", Default: ":8090", Value: &addrA, Type: "string"},
	})
	Install("web", &stubDriver{}, []DriverOption{
		{Name: "addr", Default: ":8090", Value: &addrB, Type: "string"},
	})

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs)
	assert.Equal(t, 20, scale)
	assert.Equal(t, ":8090", addrA)

	require.NoError(t, fs.Parse([]string{"-sdl-scale", "4", "-sdl-outline", "-addr", ":9000"}))
	assert.Equal(t, 4, scale)
	assert.True(t, outline)
	assert.Equal(t, ":9000", addrA)
	assert.Equal(t, ":9000", addrB)
}
