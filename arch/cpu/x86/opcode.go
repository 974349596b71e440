package x86

// Opcode represents one entry of the primary dispatch table. Opcodes that
// share a primary byte carry an extension table keyed on the reg field of
// the following ModR/M byte instead of a single instruction.
type Opcode struct {
	Instruction *Instruction
	Extensions  *[8]*Instruction
}

// extension tables for the shared opcode bytes. Only the /digit forms the
// CPU implements are populated; empty slots are unknown extensions.

// group 0x80: immediate byte ALU operations, /7 is CMP r/m8, imm8.
var group80 = [8]*Instruction{
	7: CmpRM8Imm8,
}

// group 0x83: sign extended immediate word ALU operations, /0 is
// ADD r/m16, imm8.
var group83 = [8]*Instruction{
	0: AddRM16Imm8,
}

// Opcodes maps the primary opcode byte to instruction information. Bytes
// left empty decode as unknown opcodes and halt the core.
var Opcodes = [256]Opcode{
	0x00: {Instruction: AddRM8R8},
	0x03: {Instruction: AddR16RM16},
	0x05: {Instruction: AddAXImm16},
	0x06: {Instruction: PushES},
	0x07: {Instruction: PopES},
	0x15: {Instruction: AdcAXImm16},
	0x1E: {Instruction: PushDS},
	0x31: {Instruction: XorRM16R16},
	0x3C: {Instruction: CmpALImm8},
	0x3D: {Instruction: CmpAXImm16},

	0x50: {Instruction: PushR16},
	0x51: {Instruction: PushR16},
	0x52: {Instruction: PushR16},
	0x53: {Instruction: PushR16},
	0x54: {Instruction: PushR16},
	0x55: {Instruction: PushR16},
	0x56: {Instruction: PushR16},
	0x57: {Instruction: PushR16},
	0x58: {Instruction: PopR16},
	0x59: {Instruction: PopR16},
	0x5A: {Instruction: PopR16},
	0x5B: {Instruction: PopR16},
	0x5C: {Instruction: PopR16},
	0x5D: {Instruction: PopR16},
	0x5E: {Instruction: PopR16},
	0x5F: {Instruction: PopR16},

	0x61: {Instruction: Popa},
	0x68: {Instruction: PushImm16},
	0x6A: {Instruction: PushImm8},

	0x70: {Instruction: Jo},
	0x71: {Instruction: Jno},
	0x72: {Instruction: Jc},
	0x73: {Instruction: Jnc},
	0x74: {Instruction: Jz},
	0x75: {Instruction: Jnz},
	0x76: {Instruction: Jbe},
	0x77: {Instruction: Ja},
	0x78: {Instruction: Js},
	0x79: {Instruction: Jns},
	0x7A: {Instruction: Jp},
	0x7B: {Instruction: Jnp},
	0x7C: {Instruction: Jl},
	0x7D: {Instruction: Jge},
	0x7E: {Instruction: Jle},
	0x7F: {Instruction: Jg},

	0x80: {Extensions: &group80},
	0x83: {Extensions: &group83},

	0x88: {Instruction: MovRM8R8},
	0x89: {Instruction: MovRM16R16},
	0x8A: {Instruction: MovR8RM8},
	0x8B: {Instruction: MovR16RM16},
	0x8C: {Instruction: MovRM16Sreg},
	0x8E: {Instruction: MovSregRM16},

	0x9C: {Instruction: Pushf},
	0x9D: {Instruction: Popf},
	0x9E: {Instruction: Sahf},
	0x9F: {Instruction: Lahf},

	0xA0: {Instruction: MovALMoffs8},
	0xAA: {Instruction: Stosb},
	0xAB: {Instruction: Stosw},

	0xB0: {Instruction: MovR8Imm8},
	0xB1: {Instruction: MovR8Imm8},
	0xB2: {Instruction: MovR8Imm8},
	0xB3: {Instruction: MovR8Imm8},
	0xB4: {Instruction: MovR8Imm8},
	0xB5: {Instruction: MovR8Imm8},
	0xB6: {Instruction: MovR8Imm8},
	0xB7: {Instruction: MovR8Imm8},
	0xB8: {Instruction: MovR16Imm16},
	0xB9: {Instruction: MovR16Imm16},
	0xBA: {Instruction: MovR16Imm16},
	0xBB: {Instruction: MovR16Imm16},
	0xBC: {Instruction: MovR16Imm16},
	0xBD: {Instruction: MovR16Imm16},
	0xBE: {Instruction: MovR16Imm16},
	0xBF: {Instruction: MovR16Imm16},

	0xC3: {Instruction: Ret},
	0xC4: {Instruction: LesR16M16},
	0xC8: {Instruction: Enter},

	0xE3: {Instruction: Jcxz},
	0xE4: {Instruction: InALImm8},
	0xE5: {Instruction: InAXImm8},
	0xE6: {Instruction: OutImm8AL},
	0xE7: {Instruction: OutImm8AX},
	0xE8: {Instruction: CallRel},
	0xEA: {Instruction: JmpFar},
	0xEC: {Instruction: InALDX},
	0xED: {Instruction: InAXDX},
	0xEE: {Instruction: OutDXAL},
	0xEF: {Instruction: OutDXAX},

	0xF5: {Instruction: Cmc},
	0xF8: {Instruction: Clc},
	0xF9: {Instruction: Stc},
	0xFA: {Instruction: Cli},
	0xFB: {Instruction: Sti},
	0xFC: {Instruction: Cld},
	0xFD: {Instruction: Std},
}
