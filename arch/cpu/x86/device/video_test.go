package device

import (
	"image/color"
	"testing"

	"github.com/retroenv/retro86/assert"
)

func TestVideoFramebuffer(t *testing.T) {
	t.Parallel()
	video := NewVideo()

	assert.Equal(t, uint32(FramebufferWidth*FramebufferHeight), video.Size())

	video.WriteByte(0, 15) // white in the EGA palette
	assert.Equal(t, 15, video.ReadByte(0))

	img := video.Image()
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xFF}, img.RGBAAt(1, 0))
}

func TestVideoPixelPosition(t *testing.T) {
	t.Parallel()
	video := NewVideo()

	// the framebuffer is linear, row major
	video.WriteByte(FramebufferWidth+2, 4) // red pixel at (2, 1)
	img := video.Image()
	assert.Equal(t, color.RGBA{0xAA, 0x00, 0x00, 0xFF}, img.RGBAAt(2, 1))
}
