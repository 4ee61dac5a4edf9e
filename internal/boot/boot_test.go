package boot

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomechip/internal/ram"
	"github.com/thelolagemann/gomechip/internal/types"
	"testing"
)

func TestInstallFont(t *testing.T) {
	m := ram.NewRAM()
	require.NoError(t, InstallFont(m))

	glyph, err := m.Slice(GlyphAddress(0xA), types.GlyphSize)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x90, 0xF0, 0x90, 0x90}, glyph)

	last, _ := m.Read(0x04F)
	assert.Equal(t, uint8(0x80), last)
	next, _ := m.Read(0x050)
	assert.Zero(t, next, "font must occupy exactly 0x000-0x04F")
}

func TestLoadROM(t *testing.T) {
	t.Run("fits exactly", func(t *testing.T) {
		rom, err := LoadROM(make([]byte, types.MaxROMSize))
		require.NoError(t, err)
		assert.Equal(t, 3584, rom.Size())
		assert.Len(t, rom.Fingerprint(), 16)
	})
	t.Run("one byte too many", func(t *testing.T) {
		_, err := LoadROM(make([]byte, types.MaxROMSize+1))
		assert.ErrorIs(t, err, ErrRomTooLarge)
	})
	t.Run("install", func(t *testing.T) {
		rom, err := LoadROM([]byte{0x60, 0x05})
		require.NoError(t, err)

		m := ram.NewRAM()
		require.NoError(t, rom.Install(m))
		b, _ := m.Slice(types.ProgramStart, 2)
		assert.Equal(t, []byte{0x60, 0x05}, b)
	})
}
