// Package cli provides utilities for building command-line interface
// applications: flag parsing with section-organized usage output on top of
// the standard flag package.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// ErrShowedVersion is returned by Parse when the version flag was handled.
var ErrShowedVersion = errors.New("version shown")

// flagInfo contains metadata about a flag for usage generation.
type flagInfo struct {
	name     string
	usage    string
	defValue string
	typeName string
}

// section groups flags for organized usage output.
type section struct {
	name  string
	flags []flagInfo
}

// FlagSet wraps flag.FlagSet with section-based usage generation and a
// built-in version flag.
type FlagSet struct {
	flags       *flag.FlagSet
	name        string
	description string
	version     string
	sections    []*section
}

// NewFlagSet creates a new FlagSet with the given program name and
// description.
func NewFlagSet(name, description string) *FlagSet {
	fs := &FlagSet{
		flags:       flag.NewFlagSet(name, flag.ContinueOnError),
		name:        name,
		description: description,
	}
	fs.flags.Usage = fs.ShowUsage
	return fs
}

// SetVersion sets the version string printed for the --version flag.
func (fs *FlagSet) SetVersion(version string) {
	fs.version = version
}

// Section starts a new named flag section; following flag registrations
// are listed under it in the usage output.
func (fs *FlagSet) Section(name string) {
	fs.sections = append(fs.sections, &section{name: name})
}

func (fs *FlagSet) current() *section {
	if len(fs.sections) == 0 {
		fs.Section("Options")
	}
	return fs.sections[len(fs.sections)-1]
}

// Bool registers a boolean flag in the current section.
func (fs *FlagSet) Bool(p *bool, name string, value bool, usage string) {
	fs.flags.BoolVar(p, name, value, usage)
	s := fs.current()
	s.flags = append(s.flags, flagInfo{
		name:     name,
		usage:    usage,
		defValue: strconv.FormatBool(value),
		typeName: "bool",
	})
}

// String registers a string flag in the current section.
func (fs *FlagSet) String(p *string, name, value, usage string) {
	fs.flags.StringVar(p, name, value, usage)
	s := fs.current()
	s.flags = append(s.flags, flagInfo{
		name:     name,
		usage:    usage,
		defValue: value,
		typeName: "string",
	})
}

// Uint registers an unsigned integer flag in the current section.
func (fs *FlagSet) Uint(p *uint, name string, value uint, usage string) {
	fs.flags.UintVar(p, name, value, usage)
	s := fs.current()
	s.flags = append(s.flags, flagInfo{
		name:     name,
		usage:    usage,
		defValue: strconv.FormatUint(uint64(value), 10),
		typeName: "uint",
	})
}

// Parse parses the given arguments. The version flag is handled before
// regular flag parsing and reported as ErrShowedVersion.
func (fs *FlagSet) Parse(args []string) error {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			if fs.version != "" {
				fmt.Println(fs.version)
			} else {
				fmt.Println("version not set")
			}
			return ErrShowedVersion
		}
	}

	if err := fs.flags.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	return nil
}

// Args returns the non-flag arguments.
func (fs *FlagSet) Args() []string {
	return fs.flags.Args()
}

// ShowUsage prints the usage message with all flag sections.
func (fs *FlagSet) ShowUsage() {
	w := os.Stderr
	fmt.Fprintf(w, "%s - %s\n\n", fs.name, fs.description)
	fmt.Fprintf(w, "Usage:\n  %s [options]\n\n", fs.name)

	for _, s := range fs.sections {
		fmt.Fprintf(w, "%s:\n", s.name)

		maxWidth := 0
		for _, f := range s.flags {
			if len(f.name)+len(f.typeName) > maxWidth {
				maxWidth = len(f.name) + len(f.typeName)
			}
		}
		for _, f := range s.flags {
			left := f.name + " " + f.typeName
			fmt.Fprintf(w, "  -%-*s  %s (default: %s)\n", maxWidth+1, left, f.usage, f.defValue)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Global Flags:")
	fmt.Fprintln(w, "  --version     Show version information")
	fmt.Fprintln(w, "  --help        Show this help message")
}
