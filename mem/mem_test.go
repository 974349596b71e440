package mem

import (
	"testing"

	"github.com/retroenv/retro86/assert"
	"github.com/retroenv/retro86/log"
)

func TestMapReadWrite(t *testing.T) {
	t.Parallel()
	m := New(log.NewNop())
	assert.NoError(t, m.MapRegion(0, NewRAM(0x1000), false))

	assert.NoError(t, m.Write8(0x0123, 0x42))
	value, err := m.Read8(0x0123)
	assert.NoError(t, err)
	assert.Equal(t, 0x42, value)
}

func TestMapUnmappedAddress(t *testing.T) {
	t.Parallel()
	m := New(log.NewNop())
	assert.NoError(t, m.MapRegion(0, NewRAM(0x1000), false))

	_, err := m.Read8(0x2000)
	assert.ErrorIs(t, err, ErrUnmappedAddress)

	err = m.Write8(0x2000, 0x42)
	assert.ErrorIs(t, err, ErrUnmappedAddress)
}

func TestMapAddressWraps(t *testing.T) {
	t.Parallel()
	m := New(log.NewNop())
	assert.NoError(t, m.MapRegion(0, NewRAM(0x1000), false))

	// physical addresses wrap at 2^20 before region lookup
	assert.NoError(t, m.Write8(Size+0x0042, 0x11))
	value, err := m.Read8(0x0042)
	assert.NoError(t, err)
	assert.Equal(t, 0x11, value)
}

func TestMapOverlappingRegion(t *testing.T) {
	t.Parallel()
	m := New(log.NewNop())
	assert.NoError(t, m.MapRegion(0x1000, NewRAM(0x1000), false))

	err := m.MapRegion(0x1800, NewRAM(0x1000), false)
	assert.ErrorIs(t, err, ErrOverlappingRegion)
}

func TestMapRegionBounds(t *testing.T) {
	t.Parallel()
	m := New(log.NewNop())

	err := m.MapRegion(0xFF000, NewRAM(0x2000), false)
	assert.ErrorIs(t, err, ErrRegionBounds)
}

func TestROMWritesDropped(t *testing.T) {
	t.Parallel()
	m := New(log.NewNop())
	rom := NewROM(0x100, []byte{0xAA, 0xBB})
	assert.NoError(t, m.MapRegion(0x1000, rom, true))

	// the image sits at the top of the region
	value, err := m.Read8(0x10FE)
	assert.NoError(t, err)
	assert.Equal(t, 0xAA, value)
	value, err = m.Read8(0x10FF)
	assert.NoError(t, err)
	assert.Equal(t, 0xBB, value)

	// writing to ROM is not an error, the write is silently dropped
	assert.NoError(t, m.Write8(0x10FF, 0x00))
	value, err = m.Read8(0x10FF)
	assert.NoError(t, err)
	assert.Equal(t, 0xBB, value)
}

func TestROMTruncatesOversizedImage(t *testing.T) {
	t.Parallel()

	image := make([]byte, 0x200)
	image[0x1FF] = 0x42
	rom := NewROM(0x100, image)

	assert.Equal(t, uint32(0x100), rom.Size())
	assert.Equal(t, 0x42, rom.ReadByte(0xFF), "trailing image bytes are kept")
}
