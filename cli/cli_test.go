package cli

import (
	"testing"

	"github.com/retroenv/retro86/assert"
)

func TestFlagSetParse(t *testing.T) {
	t.Parallel()

	var (
		firmware string
		ram      uint
		trace    bool
	)

	fs := NewFlagSet("retro86", "test")
	fs.Section("Machine")
	fs.String(&firmware, "firmware", "", "firmware image")
	fs.Uint(&ram, "ram", 640, "RAM size in KiB")
	fs.Section("Host")
	fs.Bool(&trace, "trace", false, "trace execution")

	err := fs.Parse([]string{"-firmware", "bios.bin", "-trace", "extra"})
	assert.NoError(t, err)
	assert.Equal(t, "bios.bin", firmware)
	assert.Equal(t, 640, ram)
	assert.True(t, trace)
	assert.Equal(t, []string{"extra"}, fs.Args())
}

func TestFlagSetVersion(t *testing.T) {
	t.Parallel()

	fs := NewFlagSet("retro86", "test")
	fs.SetVersion("1.0.0")

	err := fs.Parse([]string{"--version"})
	assert.ErrorIs(t, err, ErrShowedVersion)
}

func TestFlagSetUnknownFlag(t *testing.T) {
	t.Parallel()

	fs := NewFlagSet("retro86", "test")
	err := fs.Parse([]string{"-unknown"})
	assert.Error(t, err)
}
