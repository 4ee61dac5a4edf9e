// Package chip8 provides an emulation of a CHIP-8 interpreter. A VM owns
// the whole machine state and drives it one frame at a time, as
// instructed by a display driver.
package chip8

import (
	"context"
	"fmt"
	"github.com/thelolagemann/gomechip/internal/boot"
	"github.com/thelolagemann/gomechip/internal/cpu"
	video "github.com/thelolagemann/gomechip/internal/display"
	"github.com/thelolagemann/gomechip/internal/joypad"
	"github.com/thelolagemann/gomechip/internal/ram"
	"github.com/thelolagemann/gomechip/internal/timer"
	"github.com/thelolagemann/gomechip/internal/types"
	"github.com/thelolagemann/gomechip/pkg/display"
	"github.com/thelolagemann/gomechip/pkg/display/event"
	"github.com/thelolagemann/gomechip/pkg/emulator"
	"github.com/thelolagemann/gomechip/pkg/log"
	"time"
)

const (
	// DefaultSpeed is the default number of instructions per second.
	DefaultSpeed = 700
	// DefaultFrameRate is the default number of frames per second, which
	// is also the rate at which the timers tick.
	DefaultFrameRate = timer.Frequency
)

// ErrRomTooLarge is returned by New when the program does not fit in
// memory above the entrypoint.
var ErrRomTooLarge = boot.ErrRomTooLarge

// VM represents a CHIP-8 machine. It contains all the components of the
// machine and is the main entry point for the emulator. A VM must only be
// used from one goroutine.
type VM struct {
	CPU    *cpu.CPU
	Memory *ram.RAM
	Video  *video.Buffer
	Keypad *joypad.State
	Timer  *timer.Controller

	rom    *boot.ROM
	status emulator.Status
	title  string

	log log.Logger

	ips, fps int
	owed     int // instructions carried over from earlier frames, in 1/fps units
	throttle bool
	cpuOpts  []cpu.Opt

	initial  []byte         // snapshot restored by New
	save     *emulator.Save // snapshot storage, if any
	snapshot []byte         // last snapshot when there is no save file
}

// New returns a VM with the font installed, the program copied to the
// entrypoint and the state set to Running. The program is validated
// before any state is created, so no VM is returned on failure.
func New(program []byte, opts ...Opt) (*VM, error) {
	rom, err := boot.LoadROM(program)
	if err != nil {
		return nil, err
	}

	m := &VM{
		Memory: ram.NewRAM(),
		Video:  video.NewBuffer(),
		Keypad: joypad.New(),
		Timer:  timer.NewController(),

		rom:    rom,
		status: emulator.Running,
		title:  "gomechip",

		log: log.NewNullLogger(),

		ips:      DefaultSpeed,
		fps:      DefaultFrameRate,
		throttle: true,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.CPU = cpu.NewCPU(m.Memory, m.Video, m.Keypad, m.Timer, m.cpuOpts...)
	if err := m.install(); err != nil {
		return nil, err
	}

	if m.initial != nil {
		if err := m.LoadState(m.initial); err != nil {
			return nil, fmt.Errorf("restoring state: %w", err)
		}
	}

	return m, nil
}

func (m *VM) install() error {
	if err := boot.InstallFont(m.Memory); err != nil {
		return err
	}
	return m.rom.Install(m.Memory)
}

// Reset returns the machine to the state New left it in.
func (m *VM) Reset() error {
	for _, c := range []types.Resettable{m.Memory, m.Keypad, m.Timer, m.CPU} {
		c.Reset()
	}
	m.Video.Clear()
	m.owed = 0
	m.status = emulator.Running
	return m.install()
}

// Status returns the run state of the machine.
func (m *VM) Status() emulator.Status {
	return m.status
}

// Title returns the title set with WithTitle.
func (m *VM) Title() string {
	return m.title
}

// Logger returns the logger set with WithLogger.
func (m *VM) Logger() log.Logger {
	return m.log
}

// ROM returns the loaded program.
func (m *VM) ROM() *boot.ROM {
	return m.rom
}

// StepsPerFrame returns the whole number of instructions executed per
// frame. The remainder of ips/fps is carried between frames, so a speed
// below the frame rate still executes.
func (m *VM) StepsPerFrame() int {
	return m.ips / m.fps
}

// due returns the number of instructions to execute this frame.
func (m *VM) due() int {
	m.owed += m.ips
	n := m.owed / m.fps
	m.owed %= m.fps
	return n
}

// FrameTime returns the wall time budget of a single frame.
func (m *VM) FrameTime() time.Duration {
	return time.Second / time.Duration(m.fps)
}

// Frame runs a single frame: the driver's pending input is applied, the
// frame's worth of instructions is executed if the machine is running, the
// remainder of the frame budget is slept, the display is presented and
// the timers tick. A paused machine is presented but neither executes nor
// ticks. An error from the CPU is fatal and halts the machine.
func (m *VM) Frame(d display.Driver) error {
	start := time.Now()

	for _, e := range d.Poll() {
		m.handleEvent(e)
	}
	if m.status.IsHalted() {
		return nil
	}

	if m.status.IsRunning() {
		for i, n := 0, m.due(); i < n; i++ {
			if err := m.CPU.Step(); err != nil {
				m.status = emulator.Halted
				return err
			}
		}
	}

	if m.throttle {
		if elapsed := time.Since(start); elapsed < m.FrameTime() {
			time.Sleep(m.FrameTime() - elapsed)
		}
	}

	if err := d.Render(m.Video.Pack()); err != nil {
		m.status = emulator.Halted
		return fmt.Errorf("rendering frame: %w", err)
	}
	if m.status.IsRunning() {
		m.Timer.Tick()
	}

	return nil
}

// Run attaches the driver and the tone listener, then runs frames until
// the machine halts or ctx is done. A nil tone runs silently.
func (m *VM) Run(ctx context.Context, d display.Driver, tone timer.ToneListener) error {
	if err := d.Initialize(m); err != nil {
		m.log.Errorf("initializing display: %v", err)
		return fmt.Errorf("initializing display: %w", err)
	}
	defer func() {
		if err := d.Stop(); err != nil {
			m.log.Errorf("stopping display: %v", err)
		}
	}()

	if tone != nil {
		m.Timer.AttachToneListener(tone)
		defer func() {
			m.Timer.AttachToneListener(nil)
			tone.SetTone(false)
		}()
	}

	m.log.Infof("running %s (%d bytes, %s) at %d instructions/s, %d frames/s",
		m.title, m.rom.Size(), m.rom.Fingerprint(), m.ips, m.fps)

	for !m.status.IsHalted() {
		select {
		case <-ctx.Done():
			m.status = emulator.Halted
			m.log.Infof("interrupted: %v", ctx.Err())
			return nil
		default:
		}

		if err := m.Frame(d); err != nil {
			m.log.Errorf("halted: %v", err)
			m.log.Debugf("%s", m.CPU)
			return err
		}
	}

	m.log.Infof("quit")
	return nil
}

func (m *VM) handleEvent(e event.Event) {
	switch e.Type {
	case event.KeyDown:
		m.Keypad.Press(e.Key)
	case event.KeyUp:
		m.Keypad.Release(e.Key)
	case event.Pause:
		m.SendCommand(emulator.CommandPacket{Command: emulator.CommandTogglePause})
	case event.Quit:
		m.SendCommand(emulator.CommandPacket{Command: emulator.CommandClose})
	case event.Reset:
		if r := m.SendCommand(emulator.CommandPacket{Command: emulator.CommandReset}); r.Error != nil {
			m.log.Errorf("reset: %v", r.Error)
		}
	case event.SaveState:
		m.storeSnapshot()
	case event.LoadState:
		m.restoreSnapshot()
	}
}
