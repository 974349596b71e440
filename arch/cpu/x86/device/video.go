package device

import (
	"image"
	"image/color"
	"sync"
)

// Video framebuffer geometry: a linear 320x200 byte framebuffer mapped at
// the start of the video memory window.
const (
	FramebufferAddress = 0xA0000
	FramebufferWidth   = 320
	FramebufferHeight  = 200
)

// Video is the memory mapped framebuffer device. The CPU goroutine writes
// pixels through the memory map; the GUI thread fetches rendered frames via
// Image. Access to the framebuffer is guarded by a mutex, this is the only
// data shared between the two threads.
type Video struct {
	mu sync.Mutex
	fb [FramebufferWidth * FramebufferHeight]uint8

	img     *image.RGBA
	palette [256]color.RGBA
}

// NewVideo creates a video device with the default palette.
func NewVideo() *Video {
	v := &Video{
		img:     image.NewRGBA(image.Rect(0, 0, FramebufferWidth, FramebufferHeight)),
		palette: defaultPalette(),
	}
	return v
}

// Size returns the mapped region size in bytes.
func (v *Video) Size() uint32 {
	return FramebufferWidth * FramebufferHeight
}

// ReadByte reads a framebuffer pixel.
func (v *Video) ReadByte(offset uint32) uint8 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fb[offset]
}

// WriteByte writes a framebuffer pixel.
func (v *Video) WriteByte(offset uint32, value uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fb[offset] = value
}

// Image renders the framebuffer through the palette and returns the frame.
// The returned image is reused between calls.
func (v *Video) Image() *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, pixel := range v.fb {
		c := v.palette[pixel]
		offset := i * 4
		v.img.Pix[offset] = c.R
		v.img.Pix[offset+1] = c.G
		v.img.Pix[offset+2] = c.B
		v.img.Pix[offset+3] = 0xFF
	}
	return v.img
}

// defaultPalette returns the standard 16 EGA colors followed by a gray
// ramp for the remaining entries.
func defaultPalette() [256]color.RGBA {
	var palette [256]color.RGBA

	ega := [16]color.RGBA{
		{0x00, 0x00, 0x00, 0xFF}, // black
		{0x00, 0x00, 0xAA, 0xFF}, // blue
		{0x00, 0xAA, 0x00, 0xFF}, // green
		{0x00, 0xAA, 0xAA, 0xFF}, // cyan
		{0xAA, 0x00, 0x00, 0xFF}, // red
		{0xAA, 0x00, 0xAA, 0xFF}, // magenta
		{0xAA, 0x55, 0x00, 0xFF}, // brown
		{0xAA, 0xAA, 0xAA, 0xFF}, // light gray
		{0x55, 0x55, 0x55, 0xFF}, // dark gray
		{0x55, 0x55, 0xFF, 0xFF}, // light blue
		{0x55, 0xFF, 0x55, 0xFF}, // light green
		{0x55, 0xFF, 0xFF, 0xFF}, // light cyan
		{0xFF, 0x55, 0x55, 0xFF}, // light red
		{0xFF, 0x55, 0xFF, 0xFF}, // light magenta
		{0xFF, 0xFF, 0x55, 0xFF}, // yellow
		{0xFF, 0xFF, 0xFF, 0xFF}, // white
	}
	copy(palette[:16], ega[:])

	for i := 16; i < 256; i++ {
		gray := uint8(i - 16)
		palette[i] = color.RGBA{gray, gray, gray, 0xFF}
	}
	return palette
}
