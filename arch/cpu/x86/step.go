package x86

import "fmt"

// Prefix bytes recognized by the fetch loop.
const (
	prefixES  = 0x26
	prefixCS  = 0x2E
	prefixSS  = 0x36
	prefixDS  = 0x3E
	prefixREP = 0xF3
)

// Step fetches, decodes and executes a single instruction. It never yields
// mid-instruction; a returned error is fatal and leaves the CPU in the
// state reached so far.
func (c *CPU) Step() error {
	cs, ip := c.Seg(CS), c.IP

	opcode, prefixes, err := c.fetchOpcode()
	if err != nil {
		return err
	}

	ins, err := c.lookupInstruction(opcode, cs, ip)
	if err != nil {
		return err
	}

	if c.opts.tracing {
		fmt.Printf("%s[0x%02x] %s\n", prefixes.annotation(), opcode, ins.Syntax())
	}

	if err := ins.Func(c, opcode, prefixes); err != nil {
		return fmt.Errorf("executing %s at %04X:%04X: %w", ins.Name, cs, ip, err)
	}
	return nil
}

// fetchOpcode absorbs segment override and REP prefixes and returns the
// primary opcode byte. With multiple segment overrides the last one wins;
// REP on a non-string opcode has no effect.
func (c *CPU) fetchOpcode() (uint8, Prefixes, error) {
	var prefixes Prefixes
	for {
		b, err := c.Fetch8()
		if err != nil {
			return 0, Prefixes{}, err
		}

		switch b {
		case prefixES:
			prefixes.Segment, prefixes.HasSegment = ES, true
		case prefixCS:
			prefixes.Segment, prefixes.HasSegment = CS, true
		case prefixSS:
			prefixes.Segment, prefixes.HasSegment = SS, true
		case prefixDS:
			prefixes.Segment, prefixes.HasSegment = DS, true
		case prefixREP:
			prefixes.Rep = true
		default:
			return b, prefixes, nil
		}
	}
}

// lookupInstruction resolves an opcode byte to its instruction. For shared
// opcode bytes the /digit extension is obtained by peeking, not consuming,
// the reg field of the following ModR/M byte.
func (c *CPU) lookupInstruction(opcode uint8, cs, ip uint16) (*Instruction, error) {
	entry := Opcodes[opcode]

	if entry.Extensions != nil {
		ext, err := c.peekExtension()
		if err != nil {
			return nil, err
		}
		ins := entry.Extensions[ext]
		if ins == nil {
			return nil, fmt.Errorf("%w: 0x%02X /%d at %04X:%04X", ErrUnknownExtension, opcode, ext, cs, ip)
		}
		return ins, nil
	}

	if entry.Instruction == nil {
		return nil, fmt.Errorf("%w: 0x%02X at %04X:%04X", ErrUnknownOpcode, opcode, cs, ip)
	}
	return entry.Instruction, nil
}

// peekExtension reads the reg field of the ModR/M byte at CS:IP without
// advancing IP.
func (c *CPU) peekExtension() (uint8, error) {
	b, err := c.GetMem8(CS, c.IP)
	if err != nil {
		return 0, err
	}
	return b >> 3 & 7, nil
}
