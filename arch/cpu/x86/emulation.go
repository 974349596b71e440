package x86

import "fmt"

// Arithmetic and logic instructions.

// addRM8R8 - ADD r/m8, r8 (0x00).
func addRM8R8(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindByte, Width8, prefixes)
	if err != nil {
		return err
	}
	a, err := modrm.RM.Get8(c)
	if err != nil {
		return err
	}
	return modrm.RM.Set8(c, c.add8(a, c.Reg8(modrm.RegByte), 0))
}

// addR16RM16 - ADD r16, r/m16 (0x03).
func addR16RM16(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindWord, Width16, prefixes)
	if err != nil {
		return err
	}
	b, err := modrm.RM.Get16(c)
	if err != nil {
		return err
	}
	c.SetReg16(modrm.RegWord, c.add16(c.Reg16(modrm.RegWord), b, 0))
	return nil
}

// addAXImm16 - ADD AX, imm16 (0x05).
func addAXImm16(c *CPU, _ uint8, _ Prefixes) error {
	imm, err := c.Fetch16()
	if err != nil {
		return err
	}
	c.SetReg16(AX, c.add16(c.Reg16(AX), imm, 0))
	return nil
}

// adcAXImm16 - ADC AX, imm16 (0x15).
func adcAXImm16(c *CPU, _ uint8, _ Prefixes) error {
	imm, err := c.Fetch16()
	if err != nil {
		return err
	}
	var carry uint16
	if c.Flags.GetCarry() {
		carry = 1
	}
	c.SetReg16(AX, c.add16(c.Reg16(AX), imm, carry))
	return nil
}

// xorRM16R16 - XOR r/m16, r16 (0x31).
func xorRM16R16(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindWord, Width16, prefixes)
	if err != nil {
		return err
	}
	a, err := modrm.RM.Get16(c)
	if err != nil {
		return err
	}
	result := a ^ c.Reg16(modrm.RegWord)
	c.logicFlags16(result)
	return modrm.RM.Set16(c, result)
}

// cmpALImm8 - CMP AL, imm8 (0x3C).
func cmpALImm8(c *CPU, _ uint8, _ Prefixes) error {
	imm, err := c.Fetch8()
	if err != nil {
		return err
	}
	c.sub8(c.Reg8(AL), imm)
	return nil
}

// cmpAXImm16 - CMP AX, imm16 (0x3D).
func cmpAXImm16(c *CPU, _ uint8, _ Prefixes) error {
	imm, err := c.Fetch16()
	if err != nil {
		return err
	}
	c.sub16(c.Reg16(AX), imm)
	return nil
}

// cmpRM8Imm8 - CMP r/m8, imm8 (0x80 /7).
func cmpRM8Imm8(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindNone, Width8, prefixes)
	if err != nil {
		return err
	}
	a, err := modrm.RM.Get8(c)
	if err != nil {
		return err
	}
	imm, err := c.Fetch8()
	if err != nil {
		return err
	}
	c.sub8(a, imm)
	return nil
}

// addRM16Imm8 - ADD r/m16, imm8 (0x83 /0), the immediate sign extended to
// 16 bits.
func addRM16Imm8(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindNone, Width16, prefixes)
	if err != nil {
		return err
	}
	a, err := modrm.RM.Get16(c)
	if err != nil {
		return err
	}
	imm, err := c.Fetch8()
	if err != nil {
		return err
	}
	return modrm.RM.Set16(c, c.add16(a, uint16(int16(int8(imm))), 0))
}

// Transfer instructions.

// movRM8R8 - MOV r/m8, r8 (0x88).
func movRM8R8(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindByte, Width8, prefixes)
	if err != nil {
		return err
	}
	return modrm.RM.Set8(c, c.Reg8(modrm.RegByte))
}

// movRM16R16 - MOV r/m16, r16 (0x89).
func movRM16R16(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindWord, Width16, prefixes)
	if err != nil {
		return err
	}
	return modrm.RM.Set16(c, c.Reg16(modrm.RegWord))
}

// movR8RM8 - MOV r8, r/m8 (0x8A).
func movR8RM8(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindByte, Width8, prefixes)
	if err != nil {
		return err
	}
	value, err := modrm.RM.Get8(c)
	if err != nil {
		return err
	}
	c.SetReg8(modrm.RegByte, value)
	return nil
}

// movR16RM16 - MOV r16, r/m16 (0x8B).
func movR16RM16(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindWord, Width16, prefixes)
	if err != nil {
		return err
	}
	value, err := modrm.RM.Get16(c)
	if err != nil {
		return err
	}
	c.SetReg16(modrm.RegWord, value)
	return nil
}

// movRM16Sreg - MOV r/m16, Sreg (0x8C).
func movRM16Sreg(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindSegment, Width16, prefixes)
	if err != nil {
		return err
	}
	return modrm.RM.Set16(c, c.Seg(modrm.RegSeg))
}

// movSregRM16 - MOV Sreg, r/m16 (0x8E). CS is not a permitted destination.
func movSregRM16(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindSegment, Width16, prefixes)
	if err != nil {
		return err
	}
	if modrm.RegSeg == CS {
		return fmt.Errorf("%w: mov to cs", ErrIllegalOperand)
	}
	value, err := modrm.RM.Get16(c)
	if err != nil {
		return err
	}
	c.SetSeg(modrm.RegSeg, value)
	return nil
}

// movALMoffs8 - MOV AL, moffs8 (0xA0). The direct offset resolves against
// DS unless a segment override is active.
func movALMoffs8(c *CPU, _ uint8, prefixes Prefixes) error {
	offset, err := c.Fetch16()
	if err != nil {
		return err
	}
	segment := DS
	if prefixes.HasSegment {
		segment = prefixes.Segment
	}
	value, err := c.GetMem8(segment, offset)
	if err != nil {
		return err
	}
	c.SetReg8(AL, value)
	return nil
}

// movR8Imm8 - MOV r8, imm8 (0xB0-0xB7), the register encoded in the opcode.
func movR8Imm8(c *CPU, opcode uint8, _ Prefixes) error {
	imm, err := c.Fetch8()
	if err != nil {
		return err
	}
	c.SetReg8(byteRegOrder[opcode&7], imm)
	return nil
}

// movR16Imm16 - MOV r16, imm16 (0xB8-0xBF), the register encoded in the
// opcode.
func movR16Imm16(c *CPU, opcode uint8, _ Prefixes) error {
	imm, err := c.Fetch16()
	if err != nil {
		return err
	}
	c.SetReg16(wordRegOrder[opcode&7], imm)
	return nil
}

// lesR16M16 - LES r16, m16:16 (0xC4): loads the named register from the
// lower word of the memory operand and ES from the upper word.
func lesR16M16(c *CPU, _ uint8, prefixes Prefixes) error {
	modrm, err := c.decodeModRM(RegKindWord, Width16, prefixes)
	if err != nil {
		return err
	}
	ptr, ok := modrm.RM.Pointer()
	if !ok {
		return fmt.Errorf("%w: les requires a memory operand", ErrIllegalOperand)
	}

	offset := ptr.Offset(c)
	low, err := c.GetMem16(ptr.Segment(), offset)
	if err != nil {
		return err
	}
	high, err := c.GetMem16(ptr.Segment(), offset+2)
	if err != nil {
		return err
	}

	c.SetReg16(modrm.RegWord, low)
	c.SetSeg(ES, high)
	return nil
}

// Stack instructions.

// pushSeg - PUSH ES/DS (0x06, 0x1E), the segment register encoded in the
// opcode.
func pushSeg(c *CPU, opcode uint8, _ Prefixes) error {
	return c.push16(c.Seg(segRegOrder[opcode>>3&3]))
}

// popES - POP ES (0x07).
func popES(c *CPU, _ uint8, _ Prefixes) error {
	value, err := c.pop16()
	if err != nil {
		return err
	}
	c.SetSeg(ES, value)
	return nil
}

// pushR16 - PUSH r16 (0x50-0x57), the register encoded in the opcode.
func pushR16(c *CPU, opcode uint8, _ Prefixes) error {
	return c.push16(c.Reg16(wordRegOrder[opcode&7]))
}

// popR16 - POP r16 (0x58-0x5F), the register encoded in the opcode.
func popR16(c *CPU, opcode uint8, _ Prefixes) error {
	value, err := c.pop16()
	if err != nil {
		return err
	}
	c.SetReg16(wordRegOrder[opcode&7], value)
	return nil
}

// popa - POPA (0x61): restores DI, SI, BP, BX, DX, CX and AX; the saved SP
// slot is read and discarded.
func popa(c *CPU, _ uint8, _ Prefixes) error {
	order := []GeneralWordReg{DI, SI, BP}
	for _, reg := range order {
		value, err := c.pop16()
		if err != nil {
			return err
		}
		c.SetReg16(reg, value)
	}

	if _, err := c.pop16(); err != nil { // skip the saved SP
		return err
	}

	order = []GeneralWordReg{BX, DX, CX, AX}
	for _, reg := range order {
		value, err := c.pop16()
		if err != nil {
			return err
		}
		c.SetReg16(reg, value)
	}
	return nil
}

// pushImm16 - PUSH imm16 (0x68).
func pushImm16(c *CPU, _ uint8, _ Prefixes) error {
	imm, err := c.Fetch16()
	if err != nil {
		return err
	}
	return c.push16(imm)
}

// pushImm8 - PUSH imm8 (0x6A), the immediate sign extended to 16 bits.
func pushImm8(c *CPU, _ uint8, _ Prefixes) error {
	imm, err := c.Fetch8()
	if err != nil {
		return err
	}
	return c.push16(uint16(int16(int8(imm))))
}

// Flag instructions.

// pushf - PUSHF (0x9C).
func pushf(c *CPU, _ uint8, _ Prefixes) error {
	return c.push16(uint16(c.Flags))
}

// popf - POPF (0x9D).
func popf(c *CPU, _ uint8, _ Prefixes) error {
	value, err := c.pop16()
	if err != nil {
		return err
	}
	c.Flags = Flags(value).normalize()
	return nil
}

// sahf - SAHF (0x9E): stores AH into the low flag byte (SF, ZF, AF, PF, CF).
func sahf(c *CPU, _ uint8, _ Prefixes) error {
	f := c.Flags&^lahfMask | Flags(c.Reg8(AH))&lahfMask
	c.Flags = f.normalize()
	return nil
}

// lahf - LAHF (0x9F): loads AH from the low flag byte.
func lahf(c *CPU, _ uint8, _ Prefixes) error {
	c.SetReg8(AH, uint8(c.Flags.normalize()))
	return nil
}

// cmc - CMC (0xF5).
func cmc(c *CPU, _ uint8, _ Prefixes) error {
	c.Flags = c.Flags.set(FlagCarry, !c.Flags.GetCarry())
	return nil
}

// clc - CLC (0xF8).
func clc(c *CPU, _ uint8, _ Prefixes) error {
	c.Flags = c.Flags.set(FlagCarry, false)
	return nil
}

// stc - STC (0xF9).
func stc(c *CPU, _ uint8, _ Prefixes) error {
	c.Flags = c.Flags.set(FlagCarry, true)
	return nil
}

// cli - CLI (0xFA).
func cli(c *CPU, _ uint8, _ Prefixes) error {
	c.Flags = c.Flags.set(FlagInterrupt, false)
	return nil
}

// sti - STI (0xFB).
func sti(c *CPU, _ uint8, _ Prefixes) error {
	c.Flags = c.Flags.set(FlagInterrupt, true)
	return nil
}

// cld - CLD (0xFC).
func cld(c *CPU, _ uint8, _ Prefixes) error {
	c.Flags = c.Flags.set(FlagDirection, false)
	return nil
}

// std - STD (0xFD).
func std(c *CPU, _ uint8, _ Prefixes) error {
	c.Flags = c.Flags.set(FlagDirection, true)
	return nil
}

// Port instructions.

// inALImm8 - IN AL, imm8 (0xE4).
func inALImm8(c *CPU, _ uint8, _ Prefixes) error {
	port, err := c.Fetch8()
	if err != nil {
		return err
	}
	c.SetReg8(AL, c.ports.In8(uint16(port)))
	return nil
}

// inAXImm8 - IN AX, imm8 (0xE5).
func inAXImm8(c *CPU, _ uint8, _ Prefixes) error {
	port, err := c.Fetch8()
	if err != nil {
		return err
	}
	c.SetReg16(AX, c.ports.In16(uint16(port)))
	return nil
}

// outImm8AL - OUT imm8, AL (0xE6).
func outImm8AL(c *CPU, _ uint8, _ Prefixes) error {
	port, err := c.Fetch8()
	if err != nil {
		return err
	}
	c.ports.Out8(uint16(port), c.Reg8(AL))
	return nil
}

// outImm8AX - OUT imm8, AX (0xE7).
func outImm8AX(c *CPU, _ uint8, _ Prefixes) error {
	port, err := c.Fetch8()
	if err != nil {
		return err
	}
	c.ports.Out16(uint16(port), c.Reg16(AX))
	return nil
}

// inALDX - IN AL, DX (0xEC).
func inALDX(c *CPU, _ uint8, _ Prefixes) error {
	c.SetReg8(AL, c.ports.In8(c.Reg16(DX)))
	return nil
}

// inAXDX - IN AX, DX (0xED).
func inAXDX(c *CPU, _ uint8, _ Prefixes) error {
	c.SetReg16(AX, c.ports.In16(c.Reg16(DX)))
	return nil
}

// outDXAL - OUT DX, AL (0xEE).
func outDXAL(c *CPU, _ uint8, _ Prefixes) error {
	c.ports.Out8(c.Reg16(DX), c.Reg8(AL))
	return nil
}

// outDXAX - OUT DX, AX (0xEF).
func outDXAX(c *CPU, _ uint8, _ Prefixes) error {
	c.ports.Out16(c.Reg16(DX), c.Reg16(AX))
	return nil
}
