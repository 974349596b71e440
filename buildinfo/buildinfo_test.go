package buildinfo

import (
	"strings"
	"testing"

	"github.com/retroenv/retro86/assert"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	s := Version("1.2.3", "abc123", "2024-01-01")
	assert.True(t, strings.HasPrefix(s, "1.2.3"))
	assert.True(t, strings.Contains(s, "commit: abc123"))
	assert.True(t, strings.Contains(s, "built at: 2024-01-01"))

	s = Version("", "", "")
	assert.True(t, strings.HasPrefix(s, "dev"))
}
