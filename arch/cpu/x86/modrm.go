package x86

import "fmt"

// RegKind selects how the reg field of a ModR/M byte is interpreted. The
// dispatching opcode decides the kind; opcodes that use the reg field as a
// /digit extension pass RegKindNone.
type RegKind uint8

const (
	RegKindNone RegKind = iota
	RegKindByte
	RegKindWord
	RegKindSegment
)

// Width selects between byte and word sized r/m operands.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
)

// RMPointer is the effective address recipe produced by ModR/M memory
// decoding: a default segment, up to two base registers and an optional
// displacement, collapsed to (segment, offset) at access time.
type RMPointer struct {
	segment SegmentReg

	firstReg  GeneralWordReg
	secondReg GeneralWordReg
	hasFirst  bool
	hasSecond bool

	disp uint16 // disp8 values are sign extended at decode time
}

// Segment returns the segment register the pointer resolves against, with
// any override prefix already applied.
func (p RMPointer) Segment() SegmentReg {
	return p.segment
}

// Offset computes the effective offset: the wrapping 16-bit sum of the base
// register values and the displacement.
func (p RMPointer) Offset(c *CPU) uint16 {
	var offset uint16
	if p.hasFirst {
		offset += c.Reg16(p.firstReg)
	}
	if p.hasSecond {
		offset += c.Reg16(p.secondReg)
	}
	return offset + p.disp
}

// regMemKind discriminates the RegMem variants.
type regMemKind uint8

const (
	regMem8 regMemKind = iota
	regMem16
	regMemPtr
)

// RegMem is the r/m operand of a ModR/M byte: either a register of the
// width dictated by the opcode or a memory reference.
type RegMem struct {
	kind regMemKind

	reg8  GeneralByteReg
	reg16 GeneralWordReg
	ptr   RMPointer
}

// Pointer returns the memory reference of the operand. The second return
// value is false for register operands.
func (rm RegMem) Pointer() (RMPointer, bool) {
	if rm.kind != regMemPtr {
		return RMPointer{}, false
	}
	return rm.ptr, true
}

// Get8 reads the byte sized operand value.
func (rm RegMem) Get8(c *CPU) (uint8, error) {
	switch rm.kind {
	case regMem8:
		return c.Reg8(rm.reg8), nil
	case regMemPtr:
		return c.GetMem8(rm.ptr.segment, rm.ptr.Offset(c))
	default:
		return 0, fmt.Errorf("%w: byte access on word register %s", ErrIllegalOperand, rm.reg16)
	}
}

// Get16 reads the word sized operand value.
func (rm RegMem) Get16(c *CPU) (uint16, error) {
	switch rm.kind {
	case regMem16:
		return c.Reg16(rm.reg16), nil
	case regMemPtr:
		return c.GetMem16(rm.ptr.segment, rm.ptr.Offset(c))
	default:
		return 0, fmt.Errorf("%w: word access on byte register %s", ErrIllegalOperand, rm.reg8)
	}
}

// Set8 writes the byte sized operand.
func (rm RegMem) Set8(c *CPU, value uint8) error {
	switch rm.kind {
	case regMem8:
		c.SetReg8(rm.reg8, value)
		return nil
	case regMemPtr:
		return c.SetMem8(rm.ptr.segment, rm.ptr.Offset(c), value)
	default:
		return fmt.Errorf("%w: byte access on word register %s", ErrIllegalOperand, rm.reg16)
	}
}

// Set16 writes the word sized operand.
func (rm RegMem) Set16(c *CPU, value uint16) error {
	switch rm.kind {
	case regMem16:
		c.SetReg16(rm.reg16, value)
		return nil
	case regMemPtr:
		return c.SetMem16(rm.ptr.segment, rm.ptr.Offset(c), value)
	default:
		return fmt.Errorf("%w: word access on byte register %s", ErrIllegalOperand, rm.reg8)
	}
}

// ModRM holds a decoded ModR/M byte: the reg field interpreted per the
// opcode's RegKind and the r/m operand.
type ModRM struct {
	RegByte GeneralByteReg // valid for RegKindByte
	RegWord GeneralWordReg // valid for RegKindWord
	RegSeg  SegmentReg     // valid for RegKindSegment

	RM RegMem
}

// rmBase describes the base register and default segment recipe for one
// value of the rm field. The table follows the 8086 effective address rows;
// rm=6 is the direct address special case for mod=0 and a BP base otherwise.
type rmBase struct {
	segment   SegmentReg
	firstReg  GeneralWordReg
	secondReg GeneralWordReg
	hasFirst  bool
	hasSecond bool
}

var rmBases = [8]rmBase{
	{segment: DS, firstReg: BX, secondReg: SI, hasFirst: true, hasSecond: true},
	{segment: DS, firstReg: BX, secondReg: DI, hasFirst: true, hasSecond: true},
	{segment: SS, firstReg: BP, secondReg: SI, hasFirst: true, hasSecond: true},
	{segment: SS, firstReg: BP, secondReg: DI, hasFirst: true, hasSecond: true},
	{segment: DS, firstReg: SI, hasFirst: true},
	{segment: DS, firstReg: DI, hasFirst: true},
	{segment: SS, firstReg: BP, hasFirst: true},
	{segment: DS, firstReg: BX, hasFirst: true},
}

// decodeModRM fetches and decodes a ModR/M byte, consuming any displacement
// bytes. rmWidth dictates the register width of a mod=3 operand; the
// segment override of the active prefixes replaces the default segment of
// memory operands unconditionally.
func (c *CPU) decodeModRM(regKind RegKind, rmWidth Width, prefixes Prefixes) (ModRM, error) {
	b, err := c.Fetch8()
	if err != nil {
		return ModRM{}, err
	}

	mod := b >> 6
	reg := b >> 3 & 7
	rm := b & 7

	var decoded ModRM
	switch regKind {
	case RegKindByte:
		decoded.RegByte = byteRegOrder[reg]
	case RegKindWord:
		decoded.RegWord = wordRegOrder[reg]
	case RegKindSegment:
		if reg > 3 {
			return ModRM{}, fmt.Errorf("%w: segment register encoding %d", ErrIllegalOperand, reg)
		}
		decoded.RegSeg = segRegOrder[reg]
	case RegKindNone:
	}

	if mod == 3 {
		if rmWidth == Width8 {
			decoded.RM = RegMem{kind: regMem8, reg8: byteRegOrder[rm]}
		} else {
			decoded.RM = RegMem{kind: regMem16, reg16: wordRegOrder[rm]}
		}
		return decoded, nil
	}

	ptr := RMPointer{}

	base := rmBases[rm]
	ptr.segment = base.segment
	ptr.firstReg = base.firstReg
	ptr.secondReg = base.secondReg
	ptr.hasFirst = base.hasFirst
	ptr.hasSecond = base.hasSecond

	switch mod {
	case 0:
		if rm == 6 { // direct address, no base register
			ptr = RMPointer{segment: DS}
			disp, err := c.Fetch16()
			if err != nil {
				return ModRM{}, err
			}
			ptr.disp = disp
		}
	case 1:
		disp, err := c.Fetch8()
		if err != nil {
			return ModRM{}, err
		}
		ptr.disp = uint16(int16(int8(disp)))
	case 2:
		disp, err := c.Fetch16()
		if err != nil {
			return ModRM{}, err
		}
		ptr.disp = disp
	}

	if prefixes.HasSegment {
		ptr.segment = prefixes.Segment
	}

	decoded.RM = RegMem{kind: regMemPtr, ptr: ptr}
	return decoded, nil
}
