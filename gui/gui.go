// Package gui implements the host window renderers for the emulated
// machine's video output.
package gui

import (
	"image"

	"github.com/retroenv/retro86/input"
)

// Dimensions contains settings for the window dimensions of the rendered
// window.
type Dimensions struct {
	ScaleFactor float64

	Height int
	Width  int
}

// Backend is the interface between the emulated machine and the selected
// GUI renderer. Image is called once per frame from the render loop on the
// main thread; mapped key presses and releases are reported through KeyDown
// and KeyUp.
type Backend interface {
	Image() *image.RGBA
	Dimensions() Dimensions
	WindowTitle() string

	KeyDown(key input.Key)
	KeyUp(key input.Key)
}

// Initializer defines a setup function for the selected GUI renderer.
type Initializer func(backend Backend) (guiRender func() (bool, error), guiCleanup func(), err error)

// Setup will be set by the chosen and imported GUI renderer.
// This function is the entrypoint for code importing this package to start
// the GUI.
var Setup Initializer
