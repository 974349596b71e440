// Package x86 provides Intel 8086/80186 real mode CPU emulation.
//
// The package implements the instruction pipeline of a 16-bit x86 CPU:
// prefix handling, ModR/M effective address decoding, opcode dispatch and
// per-instruction execution including architectural flag updates. Memory is
// accessed through a bus interface over the 20-bit segmented address space;
// port I/O is dispatched to registered devices.
//
// Example usage:
//
//	m := mem.New(logger)
//	// map RAM and firmware ROM regions into m
//	cpu, err := x86.New(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cpu.Reset()
//	for {
//	    if err := cpu.Step(); err != nil {
//	        break
//	    }
//	}
//
// The core is single threaded: a step never yields mid-instruction and all
// effects of instruction N are visible before instruction N+1 decodes.
package x86
