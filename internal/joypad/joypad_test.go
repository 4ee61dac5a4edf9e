package joypad

import (
	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gomechip/internal/types"
	"testing"
)

func TestState(t *testing.T) {
	s := New()

	s.Press(0xA)
	s.Press(0x3)
	assert.True(t, s.IsPressed(0xA))
	assert.True(t, s.IsPressed(0x1A), "only the low nibble addresses a key")
	assert.Equal(t, uint16(1<<0xA|1<<0x3), s.Mask())

	s.Release(0xA)
	assert.False(t, s.IsPressed(0xA))

	s.Press(0x10)
	assert.Equal(t, uint16(1<<0x3), s.Mask(), "out of range presses are ignored")

	st := types.NewState()
	s.Save(st)
	restored := New()
	restored.Load(types.StateFromBytes(st.Bytes()))
	assert.Equal(t, s.Mask(), restored.Mask())

	s.Reset()
	assert.Zero(t, s.Mask())
}
