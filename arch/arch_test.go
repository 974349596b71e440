package arch

import (
	"testing"

	"github.com/retroenv/retro86/assert"
)

func TestArchitecture(t *testing.T) {
	t.Parallel()

	assert.True(t, I8086.IsValid())
	assert.Equal(t, "8086", I8086.String())

	a, ok := FromString("8086")
	assert.True(t, ok)
	assert.Equal(t, I8086, a)

	_, ok = FromString("z80")
	assert.False(t, ok)
}
