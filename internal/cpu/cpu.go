// Package cpu implements the CHIP-8 interpreter core: the register file,
// the call stack, the opcode decoder and the execution engine that applies
// one instruction per Step against memory, the display buffer, the keypad
// and the timers.
package cpu

import (
	"fmt"
	"github.com/thelolagemann/gomechip/internal/display"
	"github.com/thelolagemann/gomechip/internal/joypad"
	"github.com/thelolagemann/gomechip/internal/ram"
	"github.com/thelolagemann/gomechip/internal/timer"
	"github.com/thelolagemann/gomechip/internal/types"
	"github.com/thelolagemann/gomechip/pkg/log"
	"math/rand"
	"time"
)

// CPU represents the CHIP-8 interpreter. It is responsible for fetching,
// decoding and executing instructions.
type CPU struct {
	// V[0x0]~V[0xF] are 8-bit registers. V[0xF] doubles as the carry,
	// borrow and collision flag.
	V [types.RegisterCount]uint8
	// I is the 16-bit index register used for memory operations.
	I uint16
	// PC is the program counter, it points to the next instruction to be
	// fetched.
	PC uint16
	// Stack holds the return addresses of nested calls.
	Stack Stack

	// Quirks selects between the behaviours that differ across CHIP-8
	// implementations.
	Quirks Quirks

	// Instruction is the most recently fetched instruction.
	Instruction Instruction
	// Unknown counts the unrecognised opcodes that have been skipped.
	Unknown uint64

	mem    *ram.RAM
	video  *display.Buffer
	keys   *joypad.State
	timers *timer.Controller

	rng  *rand.Rand
	log  log.Logger
	seen map[uint16]bool // unrecognised opcodes already reported

	wait *keyWait
}

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// WithLogger sets the logger used to report unrecognised opcodes.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithQuirks sets the behaviour of the ambiguous instructions.
func WithQuirks(q Quirks) Opt {
	return func(c *CPU) {
		c.Quirks = q
	}
}

// WithSeed seeds the random number generator used by RND, making runs
// reproducible.
func WithSeed(seed int64) Opt {
	return func(c *CPU) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// NewCPU creates a new CPU operating on the given components. The random
// number generator is seeded once here, unless WithSeed is given.
func NewCPU(mem *ram.RAM, video *display.Buffer, keys *joypad.State, timers *timer.Controller, opts ...Opt) *CPU {
	c := &CPU{
		PC:     types.ProgramStart,
		Quirks: DefaultQuirks,
		mem:    mem,
		video:  video,
		keys:   keys,
		timers: timers,
		log:    log.NewNullLogger(),
		seen:   make(map[uint16]bool),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}

// Reset clears the registers and the stack, and points PC at the
// entrypoint. Memory and peripherals are left untouched.
func (c *CPU) Reset() {
	c.V = [types.RegisterCount]uint8{}
	c.I = 0
	c.PC = types.ProgramStart
	c.Stack.Reset()
	c.Instruction = Instruction{}
	c.Unknown = 0
	c.wait = nil
}

// Step executes a single instruction. While an FX0A key wait is pending,
// Step polls the keypad instead of fetching. The returned error is always
// an *ExecError and is fatal: the machine must not be stepped again.
func (c *CPU) Step() error {
	if c.wait != nil {
		c.pollKeyWait()
		return nil
	}

	pc := c.PC
	raw, err := c.mem.Slice(pc, 2)
	if err != nil {
		return &ExecError{PC: pc, Name: "fetch", Err: err}
	}

	c.Instruction = Decode(raw[0], raw[1])
	c.PC += 2

	op := Lookup(c.Instruction)
	if op.fn == nil {
		c.unknownOpcode(pc)
		return nil
	}

	if err := op.fn(c, c.Instruction); err != nil {
		return &ExecError{PC: pc, Instruction: c.Instruction, Name: op.name, Err: err}
	}

	return nil
}

// Waiting reports whether the CPU is suspended on an FX0A key wait.
func (c *CPU) Waiting() bool {
	return c.wait != nil
}

func (c *CPU) unknownOpcode(pc uint16) {
	c.Unknown++
	if !c.seen[c.Instruction.Opcode] {
		c.seen[c.Instruction.Opcode] = true
		c.log.Warnf("skipping unrecognised opcode %04X at 0x%03X", c.Instruction.Opcode, pc)
		return
	}
	c.log.Debugf("skipping unrecognised opcode %04X at 0x%03X", c.Instruction.Opcode, pc)
}

// setFlag writes VF. Callers write VF after the result register, so that
// the flag wins when X is 0xF.
func (c *CPU) setFlag(set bool) {
	if set {
		c.V[0xF] = 1
	} else {
		c.V[0xF] = 0
	}
}

// skipIf skips the next instruction when cond holds.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.PC += 2
	}
}

// String returns formatted information about the state of the CPU.
func (c *CPU) String() string {
	return fmt.Sprintf("CPU{V: [% 02X], I: %04X, PC: %04X, Stack: [% 04X], Waiting: %t}",
		c.V, c.I, c.PC, c.Stack.Entries(), c.Waiting())
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	s.ReadData(c.V[:])
	c.I = s.Read16()
	c.PC = s.Read16()
	c.Stack.Load(s)

	c.wait = nil
	if s.ReadBool() {
		c.wait = &keyWait{}
		c.wait.Load(s)
	}
}

func (c *CPU) Save(s *types.State) {
	s.WriteData(c.V[:])
	s.Write16(c.I)
	s.Write16(c.PC)
	c.Stack.Save(s)

	s.WriteBool(c.wait != nil)
	if c.wait != nil {
		c.wait.Save(s)
	}
}
