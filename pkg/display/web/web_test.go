package web

import (
	"bytes"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomechip/pkg/display"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"github.com/thelolagemann/gomechip/pkg/emulator"
	"github.com/thelolagemann/gomechip/pkg/log"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type stubEmulator struct {
	status emulator.Status
}

func (s *stubEmulator) Status() emulator.Status { return s.status }
func (s *stubEmulator) Title() string           { return "pong" }
func (s *stubEmulator) Logger() log.Logger      { return log.NewNullLogger() }

// newTestDriver returns a driver whose hub is not running, so broadcasts
// can be read straight off the channel.
func newTestDriver(compress bool) *webDriver {
	d := newDriver()
	d.emu = &stubEmulator{status: emulator.Running}
	d.cache = newCache(cacheSize)
	d.hub = newHub(d.cache, log.NewNullLogger())
	if compress {
		d.deflate, _ = flate.NewWriter(&d.compressed, flate.BestSpeed)
	}
	return d
}

func broadcasts(d *webDriver) [][]byte {
	var msgs [][]byte
	for {
		select {
		case msg := <-d.hub.broadcast:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func frameWith(b byte) []byte {
	frame := make([]byte, display.FrameSize)
	frame[0] = b
	return frame
}

func TestCache(t *testing.T) {
	c := newCache(2)
	assert.Equal(t, -1, c.index(1))

	assert.Equal(t, 0, c.add(1, []byte{0, 1}))
	assert.Equal(t, 1, c.add(2, []byte{0, 2}))
	assert.Equal(t, 0, c.index(1))
	assert.Equal(t, 1, c.index(2))

	// ring wraps and evicts the oldest entry
	assert.Equal(t, 0, c.add(3, []byte{0, 3}))
	assert.Equal(t, -1, c.index(1))
	assert.Equal(t, 0, c.index(3))

	assert.Equal(t, []byte{0, 2, 0, 0, 3, 1, 2, 0, 0, 2}, c.sync())
}

func TestCache_Empty(t *testing.T) {
	c := newCache(4)
	// zero hashes of empty entries never match
	assert.Equal(t, -1, c.index(0))
	assert.Empty(t, c.sync())
}

func TestRender(t *testing.T) {
	d := newTestDriver(false)
	a, b := frameWith(0x80), frameWith(0x01)

	require.NoError(t, d.Render(a))
	msgs := broadcasts(d)
	require.Len(t, msgs, 2)
	assert.Equal(t, append([]byte{ServerInfo, uint8(emulator.Running)}, "pong"...), msgs[0])
	assert.Equal(t, append([]byte{Frame, 0, 0}, a...), msgs[1])

	// unchanged frames are counted, not sent
	require.NoError(t, d.Render(a))
	require.NoError(t, d.Render(a))
	assert.Empty(t, broadcasts(d))

	require.NoError(t, d.Render(b))
	msgs = broadcasts(d)
	require.Len(t, msgs, 2)
	assert.Equal(t, []byte{FrameSkip, 2, 0, 0, 0}, msgs[0])
	assert.Equal(t, append([]byte{Frame, 1, 0}, b...), msgs[1])

	// frames seen before go by index
	require.NoError(t, d.Render(a))
	assert.Equal(t, [][]byte{{FrameCache, 0}}, broadcasts(d))
}

func TestRender_Status(t *testing.T) {
	d := newTestDriver(false)
	emu := d.emu.(*stubEmulator)

	require.NoError(t, d.Render(frameWith(0)))
	broadcasts(d)

	emu.status = emulator.Paused
	require.NoError(t, d.Render(frameWith(0)))
	assert.Equal(t, [][]byte{append([]byte{ServerInfo, uint8(emulator.Paused)}, "pong"...)}, broadcasts(d))
}

func TestRender_Compress(t *testing.T) {
	d := newTestDriver(true)
	frame := frameWith(0xAA)

	require.NoError(t, d.Render(frame))
	msgs := broadcasts(d)
	require.Len(t, msgs, 2)

	msg := msgs[1]
	require.Equal(t, []byte{Frame, 0, 1}, msg[:3])
	assert.Less(t, len(msg), display.FrameSize)

	data, err := io.ReadAll(flate.NewReader(bytes.NewReader(msg[3:])))
	require.NoError(t, err)
	assert.Equal(t, frame, data)
}

func TestPoll(t *testing.T) {
	d := newTestDriver(false)
	assert.Empty(t, d.Poll())

	d.events <- event.Press(4)
	d.events <- event.Release(4)
	assert.Len(t, d.Poll(), 2)
	assert.Empty(t, d.Poll())
}

func TestClient(t *testing.T) {
	d := newTestDriver(false)
	go d.hub.run()
	defer d.hub.stop()

	require.NoError(t, d.Render(frameWith(0x80)))

	srv := httptest.NewServer(d.hub.serveWs(d))
	defer srv.Close()

	// give the hub a chance to record the frame before the client joins
	time.Sleep(50 * time.Millisecond)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	// a new client receives the cache, the server info and the current
	// frame
	var types []byte
	for i := 0; i < 3; i++ {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		types = append(types, msg[0])
	}
	assert.Equal(t, []byte{FrameCacheSync, ServerInfo, Frame}, types)

	for _, msg := range [][]byte{{KeyEvent, 0xA, 1}, {KeyEvent, 0x10, 1}, {0x42}, {KeyEvent, 0xA, 0}, {PausePlay}} {
		require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, msg))
	}

	var got []event.Event
	timeout := time.After(time.Second)
	for len(got) < 3 {
		select {
		case e := <-d.events:
			got = append(got, e)
		case <-timeout:
			t.Fatalf("received %d of 3 events", len(got))
		}
	}
	assert.Equal(t, []event.Event{event.Press(0xA), event.Release(0xA), {Type: event.Pause}}, got)
}

func TestHub_SendKeepsFrames(t *testing.T) {
	h := newHub(newCache(cacheSize), log.NewNullLogger())
	for i := 0; i < cap(h.broadcast); i++ {
		h.send([]byte{ClientInfo, 0, 0})
	}
	h.send([]byte{FrameSkip, 1, 0, 0, 0}) // no room, dropped

	sent := make(chan struct{})
	go func() {
		h.send([]byte{Frame, 0, 0})
		close(sent)
	}()

	select {
	case <-sent:
		t.Fatal("frame was not held back while the hub was full")
	case <-time.After(50 * time.Millisecond):
	}

	for i := 0; i < cap(h.broadcast); i++ {
		assert.Equal(t, ClientInfo, (<-h.broadcast)[0])
	}
	<-sent
	assert.Equal(t, []byte{Frame, 0, 0}, <-h.broadcast)
}

func TestHub_SendAfterStop(t *testing.T) {
	h := newHub(newCache(cacheSize), log.NewNullLogger())
	for i := 0; i < cap(h.broadcast); i++ {
		h.send([]byte{ClientInfo, 0, 0})
	}
	h.stop()

	// a full hub that has stopped does not block frames
	assert.NotPanics(t, func() { h.send([]byte{Frame, 0, 0}) })
	assert.NotPanics(t, h.stop)
}

func TestStop_Twice(t *testing.T) {
	d := newDriver()
	d.addr = "127.0.0.1:0"
	require.NoError(t, d.Initialize(&stubEmulator{}))

	assert.NoError(t, d.Stop())
	assert.NotPanics(t, func() {
		assert.NoError(t, d.Stop())
	})
}
