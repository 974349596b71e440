package x86

// Instruction name constants, used by the category sets and tests.
const (
	AdcName   = "adc"
	AddName   = "add"
	CallName  = "call"
	ClcName   = "clc"
	CldName   = "cld"
	CliName   = "cli"
	CmcName   = "cmc"
	CmpName   = "cmp"
	EnterName = "enter"
	InName    = "in"
	JaName    = "ja"
	JbeName   = "jbe"
	JcName    = "jc"
	JcxzName  = "jcxz"
	JgName    = "jg"
	JgeName   = "jge"
	JlName    = "jl"
	JleName   = "jle"
	JmpName   = "jmp"
	JncName   = "jnc"
	JnoName   = "jno"
	JnpName   = "jnp"
	JnsName   = "jns"
	JnzName   = "jnz"
	JoName    = "jo"
	JpName    = "jp"
	JsName    = "js"
	JzName    = "jz"
	LahfName  = "lahf"
	LesName   = "les"
	MovName   = "mov"
	OutName   = "out"
	PopName   = "pop"
	PopaName  = "popa"
	PopfName  = "popf"
	PushName  = "push"
	PushfName = "pushf"
	RetName   = "ret"
	SahfName  = "sahf"
	StcName   = "stc"
	StdName   = "std"
	StiName   = "sti"
	StosbName = "stosb"
	StoswName = "stosw"
	XorName   = "xor"
)

// Instruction definitions wired into the opcode dispatch table.
var (
	// Arithmetic and logic
	AddRM8R8    = &Instruction{Name: AddName, Operands: "r/m8, r8", Func: addRM8R8}
	AddR16RM16  = &Instruction{Name: AddName, Operands: "r16, r/m16", Func: addR16RM16}
	AddAXImm16  = &Instruction{Name: AddName, Operands: "ax, imm16", Func: addAXImm16}
	AddRM16Imm8 = &Instruction{Name: AddName, Operands: "r/m16, imm8", Func: addRM16Imm8}
	AdcAXImm16  = &Instruction{Name: AdcName, Operands: "ax, imm16", Func: adcAXImm16}
	XorRM16R16  = &Instruction{Name: XorName, Operands: "r/m16, r16", Func: xorRM16R16}
	CmpALImm8   = &Instruction{Name: CmpName, Operands: "al, imm8", Func: cmpALImm8}
	CmpAXImm16  = &Instruction{Name: CmpName, Operands: "ax, imm16", Func: cmpAXImm16}
	CmpRM8Imm8  = &Instruction{Name: CmpName, Operands: "r/m8, imm8", Func: cmpRM8Imm8}

	// Transfer
	MovRM8R8    = &Instruction{Name: MovName, Operands: "r/m8, r8", Func: movRM8R8}
	MovRM16R16  = &Instruction{Name: MovName, Operands: "r/m16, r16", Func: movRM16R16}
	MovR8RM8    = &Instruction{Name: MovName, Operands: "r8, r/m8", Func: movR8RM8}
	MovR16RM16  = &Instruction{Name: MovName, Operands: "r16, r/m16", Func: movR16RM16}
	MovRM16Sreg = &Instruction{Name: MovName, Operands: "r/m16, sreg", Func: movRM16Sreg}
	MovSregRM16 = &Instruction{Name: MovName, Operands: "sreg, r/m16", Func: movSregRM16}
	MovALMoffs8 = &Instruction{Name: MovName, Operands: "al, moffs8", Func: movALMoffs8}
	MovR8Imm8   = &Instruction{Name: MovName, Operands: "r8, imm8", Func: movR8Imm8}
	MovR16Imm16 = &Instruction{Name: MovName, Operands: "r16, imm16", Func: movR16Imm16}
	LesR16M16   = &Instruction{Name: LesName, Operands: "r16, m16:16", Func: lesR16M16}

	// Stack
	PushES    = &Instruction{Name: PushName, Operands: "es", Func: pushSeg}
	PushDS    = &Instruction{Name: PushName, Operands: "ds", Func: pushSeg}
	PopES     = &Instruction{Name: PopName, Operands: "es", Func: popES}
	PushR16   = &Instruction{Name: PushName, Operands: "r16", Func: pushR16}
	PopR16    = &Instruction{Name: PopName, Operands: "r16", Func: popR16}
	Popa      = &Instruction{Name: PopaName, Func: popa}
	PushImm16 = &Instruction{Name: PushName, Operands: "imm16", Func: pushImm16}
	PushImm8  = &Instruction{Name: PushName, Operands: "imm8", Func: pushImm8}

	// Conditional short jumps
	Jo   = &Instruction{Name: JoName, Operands: "rel8", Func: jumpShortCond}
	Jno  = &Instruction{Name: JnoName, Operands: "rel8", Func: jumpShortCond}
	Jc   = &Instruction{Name: JcName, Operands: "rel8", Func: jumpShortCond}
	Jnc  = &Instruction{Name: JncName, Operands: "rel8", Func: jumpShortCond}
	Jz   = &Instruction{Name: JzName, Operands: "rel8", Func: jumpShortCond}
	Jnz  = &Instruction{Name: JnzName, Operands: "rel8", Func: jumpShortCond}
	Jbe  = &Instruction{Name: JbeName, Operands: "rel8", Func: jumpShortCond}
	Ja   = &Instruction{Name: JaName, Operands: "rel8", Func: jumpShortCond}
	Js   = &Instruction{Name: JsName, Operands: "rel8", Func: jumpShortCond}
	Jns  = &Instruction{Name: JnsName, Operands: "rel8", Func: jumpShortCond}
	Jp   = &Instruction{Name: JpName, Operands: "rel8", Func: jumpShortCond}
	Jnp  = &Instruction{Name: JnpName, Operands: "rel8", Func: jumpShortCond}
	Jl   = &Instruction{Name: JlName, Operands: "rel8", Func: jumpShortCond}
	Jge  = &Instruction{Name: JgeName, Operands: "rel8", Func: jumpShortCond}
	Jle  = &Instruction{Name: JleName, Operands: "rel8", Func: jumpShortCond}
	Jg   = &Instruction{Name: JgName, Operands: "rel8", Func: jumpShortCond}
	Jcxz = &Instruction{Name: JcxzName, Operands: "rel8", Func: jcxz}

	// Flags
	Pushf = &Instruction{Name: PushfName, Func: pushf}
	Popf  = &Instruction{Name: PopfName, Func: popf}
	Sahf  = &Instruction{Name: SahfName, Func: sahf}
	Lahf  = &Instruction{Name: LahfName, Func: lahf}
	Cmc   = &Instruction{Name: CmcName, Func: cmc}
	Clc   = &Instruction{Name: ClcName, Func: clc}
	Stc   = &Instruction{Name: StcName, Func: stc}
	Cli   = &Instruction{Name: CliName, Func: cli}
	Sti   = &Instruction{Name: StiName, Func: sti}
	Cld   = &Instruction{Name: CldName, Func: cld}
	Std   = &Instruction{Name: StdName, Func: std}

	// Strings
	Stosb = &Instruction{Name: StosbName, Func: stosb}
	Stosw = &Instruction{Name: StoswName, Func: stosw}

	// Control
	Ret     = &Instruction{Name: RetName, Func: ret}
	Enter   = &Instruction{Name: EnterName, Operands: "imm16, imm8", Func: enter}
	CallRel = &Instruction{Name: CallName, Operands: "rel16", Func: callRel16}
	JmpFar  = &Instruction{Name: JmpName, Operands: "ptr16:16", Func: jmpFar}

	// Ports
	InALImm8  = &Instruction{Name: InName, Operands: "al, imm8", Func: inALImm8}
	InAXImm8  = &Instruction{Name: InName, Operands: "ax, imm8", Func: inAXImm8}
	OutImm8AL = &Instruction{Name: OutName, Operands: "imm8, al", Func: outImm8AL}
	OutImm8AX = &Instruction{Name: OutName, Operands: "imm8, ax", Func: outImm8AX}
	InALDX    = &Instruction{Name: InName, Operands: "al, dx", Func: inALDX}
	InAXDX    = &Instruction{Name: InName, Operands: "ax, dx", Func: inAXDX}
	OutDXAL   = &Instruction{Name: OutName, Operands: "dx, al", Func: outDXAL}
	OutDXAX   = &Instruction{Name: OutName, Operands: "dx, ax", Func: outDXAX}
)
