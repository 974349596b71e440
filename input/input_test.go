package input

import (
	"testing"

	"github.com/retroenv/retro86/assert"
)

func TestKeyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "escape", Escape.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Last.String())
}
