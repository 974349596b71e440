// Package device implements the standard devices of the emulated machine:
// the CMOS real time clock on the port I/O plane and the memory mapped
// video framebuffer.
//
// Devices are invoked synchronously from port or memory access execution on
// the CPU goroutine and must not block; the video device additionally
// serves frames to the GUI thread and guards its state with a mutex.
package device
