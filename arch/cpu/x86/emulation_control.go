package x86

// Conditional short jumps and control flow instructions.

// shortJumpConditions maps the low nibble of the 0x70-0x7F opcodes to the
// jump condition, in opcode order: JO, JNO, JC, JNC, JZ, JNZ, JBE, JA, JS,
// JNS, JP, JNP, JL, JGE, JLE, JG.
var shortJumpConditions = [16]func(f Flags) bool{
	func(f Flags) bool { return f.GetOverflow() },
	func(f Flags) bool { return !f.GetOverflow() },
	func(f Flags) bool { return f.GetCarry() },
	func(f Flags) bool { return !f.GetCarry() },
	func(f Flags) bool { return f.GetZero() },
	func(f Flags) bool { return !f.GetZero() },
	func(f Flags) bool { return f.GetCarry() || f.GetZero() },
	func(f Flags) bool { return !(f.GetCarry() || f.GetZero()) },
	func(f Flags) bool { return f.GetSign() },
	func(f Flags) bool { return !f.GetSign() },
	func(f Flags) bool { return f.GetParity() },
	func(f Flags) bool { return !f.GetParity() },
	func(f Flags) bool { return f.GetSign() != f.GetOverflow() },
	func(f Flags) bool { return f.GetSign() == f.GetOverflow() },
	func(f Flags) bool { return f.GetZero() || f.GetSign() != f.GetOverflow() },
	func(f Flags) bool { return !(f.GetZero() || f.GetSign() != f.GetOverflow()) },
}

// jumpShort consumes the disp8 operand and adds it sign extended to IP if
// taken. IP already points past the displacement when the jump applies.
func (c *CPU) jumpShort(taken bool) error {
	disp, err := c.Fetch8()
	if err != nil {
		return err
	}
	if taken {
		c.IP += uint16(int16(int8(disp)))
	}
	return nil
}

// jumpShortCond - Jcc rel8 (0x70-0x7F), the condition encoded in the low
// opcode nibble.
func jumpShortCond(c *CPU, opcode uint8, _ Prefixes) error {
	return c.jumpShort(shortJumpConditions[opcode&0x0F](c.Flags))
}

// jcxz - JCXZ rel8 (0xE3): jumps iff CX is zero.
func jcxz(c *CPU, _ uint8, _ Prefixes) error {
	return c.jumpShort(c.Reg16(CX) == 0)
}

// ret - RET (0xC3), near return.
func ret(c *CPU, _ uint8, _ Prefixes) error {
	ip, err := c.pop16()
	if err != nil {
		return err
	}
	c.IP = ip
	return nil
}

// enter - ENTER imm16, imm8 (0xC8): stack frame setup with nesting support.
func enter(c *CPU, _ uint8, _ Prefixes) error {
	frameSize, err := c.Fetch16()
	if err != nil {
		return err
	}
	level, err := c.Fetch8()
	if err != nil {
		return err
	}
	level %= 32

	if err := c.push16(c.Reg16(BP)); err != nil {
		return err
	}
	frameTemp := c.Reg16(SP)

	if level > 0 {
		for i := uint8(1); i < level; i++ {
			c.SetReg16(BP, c.Reg16(BP)-2)
			saved, err := c.GetMem16(SS, c.Reg16(BP))
			if err != nil {
				return err
			}
			if err := c.push16(saved); err != nil {
				return err
			}
		}
		if err := c.push16(frameTemp); err != nil {
			return err
		}
	}

	c.SetReg16(BP, frameTemp)
	c.SetReg16(SP, c.Reg16(SP)-frameSize)
	return nil
}

// callRel16 - CALL rel16 (0xE8): pushes the address of the next instruction
// and adds the relative displacement to IP, wrapping.
func callRel16(c *CPU, _ uint8, _ Prefixes) error {
	rel, err := c.Fetch16()
	if err != nil {
		return err
	}
	if err := c.push16(c.IP); err != nil {
		return err
	}
	c.IP += rel
	return nil
}

// jmpFar - JMP ptr16:16 (0xEA): loads IP then CS from the immediate far
// pointer, offset first.
func jmpFar(c *CPU, _ uint8, _ Prefixes) error {
	offset, err := c.Fetch16()
	if err != nil {
		return err
	}
	segment, err := c.Fetch16()
	if err != nil {
		return err
	}
	c.IP = offset
	c.SetSeg(CS, segment)
	return nil
}
