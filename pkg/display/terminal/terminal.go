// Package terminal provides a display driver that draws frames to an ANSI
// terminal with half block characters, two pixel rows per line.
//
// Terminals only report key presses, so every keypad key is released
// automatically a short while after its last press.
package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomechip/pkg/display"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"golang.org/x/term"
	"io"
	"os"
	"time"
)

// ErrNotTerminal is returned by Initialize when stdin or stdout is not a
// terminal.
var ErrNotTerminal = errors.New("not a terminal")

func init() {
	driver := newDriver(os.Stdin, os.Stdout)
	display.Install("terminal", driver, []display.DriverOption{
		{
			Name:        "hold",
			Default:     100,
			Value:       &driver.holdMillis,
			Type:        "int",
			Description: "Milliseconds a key stays pressed after each key press",
		},
	})
}

type terminalDriver struct {
	holdMillis int

	in  *os.File
	out *bufio.Writer
	now func() time.Time

	emu      display.Emulator
	oldState *term.State
	input    chan []byte

	pressed  map[uint8]time.Time
	lastHash uint64
	drawn    bool
	line     bytes.Buffer
}

func newDriver(in *os.File, out io.Writer) *terminalDriver {
	return &terminalDriver{
		holdMillis: 100,
		in:         in,
		out:        bufio.NewWriter(out),
		now:        time.Now,
		input:      make(chan []byte, 64),
		pressed:    make(map[uint8]time.Time),
	}
}

func (d *terminalDriver) Initialize(emu display.Emulator) error {
	d.emu = emu

	fd := int(d.in.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < display.Width || h < display.Height/2+1) {
		return fmt.Errorf("terminal is %dx%d, at least %dx%d is needed", w, h, display.Width, display.Height/2+1)
	}

	var err error
	if d.oldState, err = term.MakeRaw(fd); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}

	go d.readInput()

	// clear the screen and hide the cursor
	d.out.WriteString("\x1b[2J\x1b[?25l")
	return d.out.Flush()
}

// readInput forwards raw stdin reads to Poll.
func (d *terminalDriver) readInput() {
	buf := make([]byte, 64)
	for {
		n, err := d.in.Read(buf)
		if n > 0 {
			d.input <- append([]byte(nil), buf[:n]...)
		}
		if err != nil {
			return
		}
	}
}

func (d *terminalDriver) Poll() []event.Event {
	var events []event.Event
drain:
	for {
		select {
		case b := <-d.input:
			events = d.parse(events, b)
		default:
			break drain
		}
	}

	// release keys that have not been pressed again in time
	hold := time.Duration(d.holdMillis) * time.Millisecond
	for key, at := range d.pressed {
		if d.now().Sub(at) >= hold {
			delete(d.pressed, key)
			events = append(events, event.Release(key))
		}
	}

	return events
}

// parse appends the events encoded by a chunk of raw input.
func (d *terminalDriver) parse(events []event.Event, b []byte) []event.Event {
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == 0x1b && i+1 < len(b) && (b[i+1] == '[' || b[i+1] == 'O'):
			// skip escape sequences such as arrow keys
			i += 2
			for i < len(b) && (b[i] < 0x40 || b[i] > 0x7e) {
				i++
			}
		case c == display.QuitKey, c == 0x03: // escape, ctrl+c
			events = append(events, event.Event{Type: event.Quit})
		case c == display.PauseKey:
			events = append(events, event.Event{Type: event.Pause})
		case c == 0x7f: // backspace
			events = append(events, event.Event{Type: event.Reset})
		default:
			key, ok := display.KeyFor(rune(c))
			if !ok {
				continue
			}
			if _, held := d.pressed[key]; !held {
				events = append(events, event.Press(key))
			}
			d.pressed[key] = d.now()
		}
	}
	return events
}

// Render redraws the screen if the frame differs from the last one.
func (d *terminalDriver) Render(frame []byte) error {
	hash := xxhash.Sum64(frame)
	if d.drawn && hash == d.lastHash {
		return nil
	}
	d.lastHash, d.drawn = hash, true

	d.out.WriteString("\x1b[H")
	for y := 0; y < display.Height; y += 2 {
		d.line.Reset()
		for x := 0; x < display.Width; x++ {
			top, bottom := display.Pixel(frame, x, y), display.Pixel(frame, x, y+1)
			switch {
			case top && bottom:
				d.line.WriteRune('█')
			case top:
				d.line.WriteRune('▀')
			case bottom:
				d.line.WriteRune('▄')
			default:
				d.line.WriteByte(' ')
			}
		}
		d.line.WriteString("\r\n")
		d.out.Write(d.line.Bytes())
	}
	if d.emu != nil {
		fmt.Fprintf(d.out, "\x1b[K%s [%s]\r", d.emu.Title(), d.emu.Status())
	}

	return d.out.Flush()
}

// Stop restores the terminal.
func (d *terminalDriver) Stop() error {
	d.out.WriteString("\x1b[?25h\r\n")
	if err := d.out.Flush(); err != nil {
		return err
	}
	if d.oldState != nil {
		return term.Restore(int(d.in.Fd()), d.oldState)
	}
	return nil
}
