package x86

import "strings"

// Prefixes holds the prefix bytes consumed before an opcode. A fresh value
// is used for every instruction.
type Prefixes struct {
	Segment    SegmentReg // segment override, valid if HasSegment is set
	HasSegment bool
	Rep        bool
}

// annotation formats the prefixes for the instruction trace line.
func (p Prefixes) annotation() string {
	var buf strings.Builder
	if p.HasSegment {
		buf.WriteString("[" + p.Segment.String() + ":] ")
	}
	if p.Rep {
		buf.WriteString("[rep] ")
	}
	return buf.String()
}

// Instruction contains information about an x86 CPU instruction. The
// emulation function consumes the instruction's operand bytes (ModR/M,
// displacement, immediates) from CS:IP and executes its semantics. The
// opcode byte is passed through for instructions that encode a register in
// their low bits.
type Instruction struct {
	Name     string // lowercased mnemonic
	Operands string // operand template for tracing, e.g. "r/m16, r16"

	Func func(c *CPU, opcode uint8, prefixes Prefixes) error
}

// Syntax returns the mnemonic with its operand template.
func (ins *Instruction) Syntax() string {
	if ins.Operands == "" {
		return ins.Name
	}
	return ins.Name + " " + ins.Operands
}
