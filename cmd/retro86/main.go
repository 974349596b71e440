// retro86 emulates a 16-bit x86 real mode machine: an 8086/80186 class CPU
// on a 1 MiB memory map with conventional RAM, a firmware ROM at the top of
// the address space, a CMOS clock and a framebuffer video device.
package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/retroenv/retro86/arch"
	"github.com/retroenv/retro86/arch/cpu/x86"
	"github.com/retroenv/retro86/arch/cpu/x86/device"
	"github.com/retroenv/retro86/buildinfo"
	"github.com/retroenv/retro86/cli"
	"github.com/retroenv/retro86/gui"
	"github.com/retroenv/retro86/input"
	"github.com/retroenv/retro86/log"
	"github.com/retroenv/retro86/mem"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// firmware ROM window: 256 KiB at the top of the 1 MiB address space, the
// reset vector at linear 0xFFFF0.
const (
	firmwareBase = 0xC0000
	firmwareSize = 256 * 1024
)

type options struct {
	firmware string
	ramKB    uint
	trace    bool
	noGUI    bool
	debug    bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, cli.ErrShowedVersion) {
			return
		}
		os.Exit(1)
	}

	level := log.InfoLevel
	if opts.debug {
		level = log.DebugLevel
	}
	logger := log.NewWithConfig(log.Config{Level: level})

	if err := run(logger, opts); err != nil {
		logger.Fatal("emulation failed", log.Err(err))
	}
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := cli.NewFlagSet("retro86", "16-bit x86 real mode machine emulator")
	fs.SetVersion(buildinfo.Version(version, commit, date))

	fs.Section("Machine")
	fs.String(&opts.firmware, "firmware", "", "firmware image to map at the top of the address space")
	fs.Uint(&opts.ramKB, "ram", 640, "conventional RAM size in KiB")

	fs.Section("Host")
	fs.Bool(&opts.noGUI, "nogui", false, "run without the video window")
	fs.Bool(&opts.trace, "trace", false, "print a decode trace line per instruction")
	fs.Bool(&opts.debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.firmware == "" {
		fs.ShowUsage()
		return options{}, errors.New("no firmware image given")
	}
	return opts, nil
}

func run(logger *log.Logger, opts options) error {
	machine, err := createMachine(logger, opts)
	if err != nil {
		return err
	}

	logger.Info("starting emulation",
		log.Stringer("arch", arch.I8086),
		log.String("firmware", opts.firmware),
		log.Uint32("ram_kb", uint32(opts.ramKB)))

	// The CPU steps on its own goroutine; the host only observes the stop
	// signal between steps and shares no CPU owned data.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
			}
			if err := machine.cpu.Step(); err != nil {
				logger.Error("cpu halted", log.Err(err))
				return
			}
		}
	}()

	if opts.noGUI {
		<-done
		return nil
	}
	err = runGUI(machine, done)
	close(stop)
	<-done
	return err
}

type machineState struct {
	cpu   *x86.CPU
	video *device.Video
}

// createMachine builds the memory map, devices and CPU. The CPU comes out
// of New in reset state, executing from the reset vector at 0xFFFF0.
func createMachine(logger *log.Logger, opts options) (*machineState, error) {
	firmware, err := os.ReadFile(opts.firmware)
	if err != nil {
		return nil, fmt.Errorf("reading firmware image: %w", err)
	}

	m := mem.New(logger)
	if err := m.MapRegion(0, mem.NewRAM(uint32(opts.ramKB)*1024), false); err != nil {
		return nil, fmt.Errorf("mapping RAM: %w", err)
	}

	video := device.NewVideo()
	if err := m.MapRegion(device.FramebufferAddress, video, false); err != nil {
		return nil, fmt.Errorf("mapping video framebuffer: %w", err)
	}

	rom := mem.NewROM(firmwareSize, firmware)
	if err := m.MapRegion(firmwareBase, rom, true); err != nil {
		return nil, fmt.Errorf("mapping firmware ROM: %w", err)
	}

	var cpuOptions []x86.Option
	if opts.trace {
		cpuOptions = append(cpuOptions, x86.WithTracing())
	}
	cpu, err := x86.New(m, cpuOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating cpu: %w", err)
	}
	cpu.Ports().Register(device.NewCMOS(), device.CMOSIndexPort, device.CMOSDataPort)

	return &machineState{cpu: cpu, video: video}, nil
}

// runGUI drives the render loop on the main thread until the window closes
// or the CPU goroutine finishes.
func runGUI(machine *machineState, done <-chan struct{}) error {
	if gui.Setup == nil {
		return errors.New("no GUI renderer compiled in, use -nogui")
	}

	render, cleanup, err := gui.Setup(&videoBackend{video: machine.video})
	if err != nil {
		return fmt.Errorf("setting up GUI: %w", err)
	}
	defer cleanup()

	for {
		select {
		case <-done:
			return nil
		default:
		}

		running, err := render()
		if err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
		if !running {
			return nil
		}
	}
}

// videoBackend bridges the framebuffer device to the GUI renderer.
type videoBackend struct {
	video *device.Video
}

func (b *videoBackend) Image() *image.RGBA {
	return b.video.Image()
}

func (b *videoBackend) Dimensions() gui.Dimensions {
	return gui.Dimensions{
		ScaleFactor: 2,
		Width:       device.FramebufferWidth,
		Height:      device.FramebufferHeight,
	}
}

func (b *videoBackend) WindowTitle() string {
	return "retro86"
}

// The machine has no keyboard controller, key events are discarded.

func (b *videoBackend) KeyDown(input.Key) {}

func (b *videoBackend) KeyUp(input.Key) {}
