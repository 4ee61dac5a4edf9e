package cpu

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomechip/internal/types"
	"testing"
)

func TestInstruction_Jump(t *testing.T) {
	testInstruction(t, "JP addr", 0x1ABC, func(t *testing.T, c *CPU) {
		step(t, c, 1)
		assert.Equal(t, uint16(0xABC), c.PC)
	})
	testInstruction(t, "JP V0, addr", 0xB300, func(t *testing.T, c *CPU) {
		c.V[0] = 0x04
		step(t, c, 1)
		assert.Equal(t, uint16(0x304), c.PC)
	})
	testInstruction(t, "CALL addr", 0x2400, func(t *testing.T, c *CPU) {
		step(t, c, 1)
		assert.Equal(t, uint16(0x400), c.PC)
		assert.Equal(t, []uint16{0x202}, c.Stack.Entries())
	})
	testInstruction(t, "RET", 0x00EE, func(t *testing.T, c *CPU) {
		err := c.Step()
		assert.ErrorIs(t, err, ErrStackUnderflow)

		var execErr *ExecError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, types.ProgramStart, execErr.PC)
	})
}

func TestInstruction_Skip(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		v0, v1 uint8
		skip   bool
	}{
		{"SE Vx, byte", 0x3042, 0x42, 0, true},
		{"SE Vx, byte", 0x3042, 0x41, 0, false},
		{"SNE Vx, byte", 0x4042, 0x41, 0, true},
		{"SNE Vx, byte", 0x4042, 0x42, 0, false},
		{"SE Vx, Vy", 0x5010, 7, 7, true},
		{"SE Vx, Vy", 0x5010, 7, 8, false},
		{"SNE Vx, Vy", 0x9010, 7, 8, true},
		{"SNE Vx, Vy", 0x9010, 7, 7, false},
	}
	for _, tt := range tests {
		testInstruction(t, tt.name, tt.opcode, func(t *testing.T, c *CPU) {
			c.V[0], c.V[1] = tt.v0, tt.v1
			step(t, c, 1)

			want := types.ProgramStart + 2
			if tt.skip {
				want += 2
			}
			assert.Equal(t, want, c.PC)
		})
	}
}

func TestStack_Discipline(t *testing.T) {
	for depth := 1; depth <= types.StackSize; depth++ {
		c := newTestCPU(t)

		// each routine calls the next; the innermost returns straight away
		// and every caller returns once the call it made comes back
		program(t, c, types.ProgramStart, 0x2300)
		for k := 0; k < depth; k++ {
			routine := uint16(0x300 + k*0x10)
			if k < depth-1 {
				program(t, c, routine, 0x2000|(routine+0x10), 0x00EE)
			} else {
				program(t, c, routine, 0x00EE)
			}
		}

		step(t, c, depth)
		assert.Equal(t, depth, c.Stack.Len())

		step(t, c, depth)
		assert.Equal(t, uint16(0x202), c.PC, "depth %d", depth)
		assert.Zero(t, c.Stack.Len())

		program(t, c, 0x202, 0x00EE)
		assert.ErrorIs(t, c.Step(), ErrStackUnderflow)
	}
}

func TestStack_Overflow(t *testing.T) {
	c := newTestCPU(t)
	program(t, c, types.ProgramStart, 0x2200)

	step(t, c, types.StackSize)
	assert.Equal(t, types.StackSize, c.Stack.Len())
	assert.ErrorIs(t, c.Step(), ErrStackOverflow)
}

func TestStack_State(t *testing.T) {
	var s Stack
	require.NoError(t, s.Push(0x123))
	require.NoError(t, s.Push(0x456))

	st := types.NewState()
	s.Save(st)

	var restored Stack
	restored.Load(types.StateFromBytes(st.Bytes()))
	assert.Equal(t, s.Entries(), restored.Entries())

	address, err := restored.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x456), address)
}
