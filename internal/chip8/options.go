package chip8

import (
	"github.com/thelolagemann/gomechip/internal/cpu"
	"github.com/thelolagemann/gomechip/pkg/emulator"
	"github.com/thelolagemann/gomechip/pkg/log"
)

// Opt is a function that modifies a VM instance.
type Opt func(m *VM)

// WithLogger sets the logger used by the VM and its CPU.
func WithLogger(l log.Logger) Opt {
	return func(m *VM) {
		m.log = l
		m.cpuOpts = append(m.cpuOpts, cpu.WithLogger(l))
	}
}

// WithQuirks selects the behaviour of the ambiguous instructions.
func WithQuirks(q cpu.Quirks) Opt {
	return func(m *VM) {
		m.cpuOpts = append(m.cpuOpts, cpu.WithQuirks(q))
	}
}

// WithSeed seeds the random number generator, making runs reproducible.
func WithSeed(seed int64) Opt {
	return func(m *VM) {
		m.cpuOpts = append(m.cpuOpts, cpu.WithSeed(seed))
	}
}

// Speed sets the number of instructions executed per second of emulated
// time. Values below 1 are ignored.
func Speed(ips int) Opt {
	return func(m *VM) {
		if ips > 0 {
			m.ips = ips
		}
	}
}

// FrameRate sets the number of frames per second. Values below 1 are
// ignored.
func FrameRate(fps int) Opt {
	return func(m *VM) {
		if fps > 0 {
			m.fps = fps
		}
	}
}

// Unthrottled runs frames back to back instead of pacing them in wall
// time.
func Unthrottled() Opt {
	return func(m *VM) {
		m.throttle = false
	}
}

// WithTitle sets the title reported to display drivers.
func WithTitle(title string) Opt {
	return func(m *VM) {
		m.title = title
	}
}

// WithState restores a snapshot taken with SaveState once the ROM has
// been loaded.
func WithState(b []byte) Opt {
	return func(m *VM) {
		m.initial = b
	}
}

// WithSave persists snapshots requested through the display driver to s,
// and restores them from it.
func WithSave(s *emulator.Save) Opt {
	return func(m *VM) {
		m.save = s
	}
}
