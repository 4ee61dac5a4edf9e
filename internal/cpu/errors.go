package cpu

import (
	"errors"
	"fmt"
	"github.com/thelolagemann/gomechip/internal/ram"
)

var (
	// ErrStackOverflow is returned when a call is made with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is made with an empty
	// stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrAccess matches any memory access outside of the address space.
	ErrAccess = ram.ErrOutOfRange
)

// ExecError wraps a fatal error raised while executing the instruction
// fetched from PC.
type ExecError struct {
	PC          uint16
	Instruction Instruction
	Name        string
	Err         error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("0x%03X: %04X (%s): %v", e.PC, e.Instruction.Opcode, e.Name, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
