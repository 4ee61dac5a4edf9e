//go:build !test

// Package sdl provides a display driver that draws frames to an SDL
// window and reads the keypad from the keyboard.
package sdl

import (
	"fmt"
	"github.com/thelolagemann/gomechip/pkg/display"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"github.com/veandco/go-sdl2/sdl"
	"runtime"
)

func init() {
	// SDL: this is needed to arrange for main to run on main thread
	runtime.LockOSThread()

	// register display driver
	driver := &sdlDriver{}
	display.Install("sdl", driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     20,
			Value:       &driver.scale,
			Type:        "int",
			Description: "Scale the window by this factor",
		},
		{
			Name:        "outline",
			Default:     false,
			Value:       &driver.outline,
			Type:        "bool",
			Description: "Outline every lit pixel",
		},
	})
}

// sdlDriver implements a display driver using an SDL window and its
// accelerated renderer.
type sdlDriver struct {
	scale   int
	outline bool

	emu      display.Emulator
	window   *sdl.Window
	renderer *sdl.Renderer
	lit      []sdl.Rect
}

func (s *sdlDriver) Initialize(emu display.Emulator) error {
	s.emu = emu
	if s.scale < 1 {
		s.scale = 1
	}

	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}

	var err error
	s.window, err = sdl.CreateWindow(emu.Title(), sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(display.Width*s.scale), int32(display.Height*s.scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	s.renderer, err = sdl.CreateRenderer(s.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		s.window.Destroy()
		return fmt.Errorf("creating renderer: %w", err)
	}

	s.lit = make([]sdl.Rect, 0, display.Width*display.Height)
	return nil
}

// Poll drains the SDL event queue.
func (s *sdlDriver) Poll() []event.Event {
	var events []event.Event
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch e := e.(type) {
		case *sdl.QuitEvent:
			events = append(events, event.Event{Type: event.Quit})
		case *sdl.KeyboardEvent:
			if ev, ok := translate(e); ok {
				events = append(events, ev)
			}
		}
	}
	return events
}

// translate maps a keyboard event to an emulator event. Control keys act
// on press only, keypad keys report both edges.
func translate(e *sdl.KeyboardEvent) (event.Event, bool) {
	sym := e.Keysym.Sym
	pressed := e.Type == sdl.KEYDOWN

	if key, ok := display.KeyFor(rune(sym)); ok {
		if pressed {
			if e.Repeat != 0 {
				return event.Event{}, false
			}
			return event.Press(key), true
		}
		return event.Release(key), true
	}

	if !pressed || e.Repeat != 0 {
		return event.Event{}, false
	}
	switch sym {
	case sdl.K_ESCAPE:
		return event.Event{Type: event.Quit}, true
	case sdl.K_SPACE:
		return event.Event{Type: event.Pause}, true
	case sdl.K_F5:
		return event.Event{Type: event.SaveState}, true
	case sdl.K_F9:
		return event.Event{Type: event.LoadState}, true
	case sdl.K_BACKSPACE:
		return event.Event{Type: event.Reset}, true
	}
	return event.Event{}, false
}

// Render draws lit pixels white on black, at the configured scale.
func (s *sdlDriver) Render(frame []byte) error {
	scale := int32(s.scale)

	s.lit = s.lit[:0]
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if display.Pixel(frame, x, y) {
				s.lit = append(s.lit, sdl.Rect{X: int32(x) * scale, Y: int32(y) * scale, W: scale, H: scale})
			}
		}
	}

	if err := s.renderer.SetDrawColor(0, 0, 0, sdl.ALPHA_OPAQUE); err != nil {
		return err
	}
	if err := s.renderer.Clear(); err != nil {
		return err
	}

	if len(s.lit) > 0 {
		if err := s.renderer.SetDrawColor(255, 255, 255, sdl.ALPHA_OPAQUE); err != nil {
			return err
		}
		if err := s.renderer.FillRects(s.lit); err != nil {
			return err
		}

		if s.outline {
			if err := s.renderer.SetDrawColor(0, 0, 0, sdl.ALPHA_OPAQUE); err != nil {
				return err
			}
			if err := s.renderer.DrawRects(s.lit); err != nil {
				return err
			}
		}
	}

	s.renderer.Present()
	return nil
}

// Stop stops the display driver.
func (s *sdlDriver) Stop() error {
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)

	return nil
}
