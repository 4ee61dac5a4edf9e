// Package web provides a display driver that serves the emulator to
// browsers. Frames are streamed over a websocket, and key presses are
// sent back the same way.
package web

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"github.com/cespare/xxhash"
	"github.com/klauspost/compress/flate"
	"github.com/thelolagemann/gomechip/pkg/display"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"github.com/thelolagemann/gomechip/pkg/emulator"
	"github.com/thelolagemann/gomechip/pkg/log"
	"net"
	"net/http"
	"time"
)

//go:embed index.html
var page []byte

const cacheSize = 64

func init() {
	driver := newDriver()
	display.Install("web", driver, []display.DriverOption{
		{
			Name:        "addr",
			Default:     ":8090",
			Value:       &driver.addr,
			Type:        "string",
			Description: "Address to serve the emulator on",
		},
		{
			Name:        "compress",
			Default:     false,
			Value:       &driver.compress,
			Type:        "bool",
			Description: "Deflate frames before sending them",
		},
	})
}

type webDriver struct {
	addr     string
	compress bool

	emu    display.Emulator
	log    log.Logger
	server *http.Server
	hub    *hub
	cache  *cache
	events chan event.Event

	lastHash   uint64
	sent       bool
	skipped    uint32
	lastStatus emulator.Status

	deflate    *flate.Writer
	compressed bytes.Buffer
}

func newDriver() *webDriver {
	return &webDriver{
		addr:   ":8090",
		events: make(chan event.Event, 256),
		log:    log.NewNullLogger(),
	}
}

func (d *webDriver) Initialize(emu display.Emulator) error {
	d.emu = emu
	d.log = emu.Logger()
	d.cache = newCache(cacheSize)
	d.hub = newHub(d.cache, d.log)

	if d.compress {
		var err error
		if d.deflate, err = flate.NewWriter(&d.compressed, flate.BestSpeed); err != nil {
			return err
		}
	}

	ln, err := net.Listen("tcp", d.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", d.addr, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
	mux.HandleFunc("/ws", d.hub.serveWs(d))
	d.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go d.hub.run()
	go func() {
		if err := d.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			d.log.Errorf("web: %v", err)
		}
	}()

	d.log.Infof("web: serving on http://%s", ln.Addr())
	return nil
}

func (d *webDriver) Poll() []event.Event {
	var events []event.Event
	for {
		select {
		case e := <-d.events:
			events = append(events, e)
		default:
			return events
		}
	}
}

// Render sends the frame to every client. Unchanged frames are counted
// instead of sent, and frames still in the cache are sent by index.
func (d *webDriver) Render(frame []byte) error {
	if status := d.emu.Status(); status != d.lastStatus || !d.sent {
		d.lastStatus = status
		d.hub.send(append([]byte{ServerInfo, uint8(status)}, d.emu.Title()...))
	}

	hash := xxhash.Sum64(frame)
	if d.sent && hash == d.lastHash {
		d.skipped++
		return nil
	}
	d.lastHash, d.sent = hash, true

	if d.skipped > 0 {
		n := d.skipped
		d.hub.send([]byte{FrameSkip, uint8(n), uint8(n >> 8), uint8(n >> 16), uint8(n >> 24)})
		d.skipped = 0
	}

	msg, err := d.cached(hash, frame)
	if err != nil {
		return err
	}
	// sent outside the cache lock, the hub takes it to sync new clients
	d.hub.send(msg)
	return nil
}

// cached returns the message for a frame, adding the frame to the cache
// unless it is already there.
func (d *webDriver) cached(hash uint64, frame []byte) ([]byte, error) {
	d.cache.Lock()
	defer d.cache.Unlock()

	// does this frame exist in the cache?
	if idx := d.cache.index(hash); idx != -1 {
		return []byte{FrameCache, uint8(idx)}, nil
	}

	entry, err := d.encode(frame)
	if err != nil {
		return nil, err
	}
	idx := d.cache.add(hash, entry)
	return append([]byte{Frame, uint8(idx)}, entry...), nil
}

// encode returns the cache entry for a frame: a flags byte, which is 1
// when the data is deflated, followed by the data.
func (d *webDriver) encode(frame []byte) ([]byte, error) {
	if d.deflate == nil {
		return append([]byte{0}, frame...), nil
	}

	d.compressed.Reset()
	d.deflate.Reset(&d.compressed)
	if _, err := d.deflate.Write(frame); err != nil {
		return nil, err
	}
	if err := d.deflate.Close(); err != nil {
		return nil, err
	}
	return append([]byte{1}, d.compressed.Bytes()...), nil
}

// Stop shuts the server down and disconnects every client.
func (d *webDriver) Stop() error {
	if d.server == nil {
		return nil
	}
	d.hub.stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := d.server.Shutdown(ctx)
	d.server = nil
	return err
}
