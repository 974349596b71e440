package x86

// GeneralByteReg represents one of the eight byte addressable general
// registers. The values index the CPU register byte array directly: the low
// bytes AL, CL, DL, BL occupy indices 0-3 and the high bytes AH, CH, DH, BH
// indices 4-7, so that the word view of register r pairs index r and r+4.
type GeneralByteReg uint8

const (
	AL GeneralByteReg = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
)

// GeneralWordReg represents a 16-bit general register. AX, CX, DX and BX are
// word views over the byte register pairs; SP, BP, SI and DI exist only at
// word width and occupy the upper half of the register byte array.
type GeneralWordReg uint8

const (
	AX GeneralWordReg = 0
	CX GeneralWordReg = 1
	DX GeneralWordReg = 2
	BX GeneralWordReg = 3
	SP GeneralWordReg = 8
	BP GeneralWordReg = 9
	SI GeneralWordReg = 10
	DI GeneralWordReg = 11
)

// SegmentReg represents one of the four segment registers. The constant
// values match the x86 segment register encoding used in ModR/M reg fields
// and in the PUSH/POP segment opcodes.
type SegmentReg uint8

const (
	ES SegmentReg = iota
	CS
	SS
	DS
)

// byteRegOrder maps the 3-bit register encoding of ModR/M fields and the
// 0xB0-0xB7 opcodes to byte registers.
var byteRegOrder = [8]GeneralByteReg{AL, CL, DL, BL, AH, CH, DH, BH}

// wordRegOrder maps the 3-bit register encoding of ModR/M fields and the
// 0x50-0x5F and 0xB8-0xBF opcodes to word registers.
var wordRegOrder = [8]GeneralWordReg{AX, CX, DX, BX, SP, BP, SI, DI}

// segRegOrder maps the 2-bit segment register encoding to segment registers.
var segRegOrder = [4]SegmentReg{ES, CS, SS, DS}

var generalByteRegNames = map[GeneralByteReg]string{
	AL: "al", CL: "cl", DL: "dl", BL: "bl",
	AH: "ah", CH: "ch", DH: "dh", BH: "bh",
}

var generalWordRegNames = map[GeneralWordReg]string{
	AX: "ax", CX: "cx", DX: "dx", BX: "bx",
	SP: "sp", BP: "bp", SI: "si", DI: "di",
}

var segmentRegNames = map[SegmentReg]string{
	ES: "es", CS: "cs", SS: "ss", DS: "ds",
}

// String returns the register mnemonic.
func (r GeneralByteReg) String() string {
	if name, exists := generalByteRegNames[r]; exists {
		return name
	}
	return "unknown"
}

// String returns the register mnemonic.
func (r GeneralWordReg) String() string {
	if name, exists := generalWordRegNames[r]; exists {
		return name
	}
	return "unknown"
}

// String returns the register mnemonic.
func (r SegmentReg) String() string {
	if name, exists := segmentRegNames[r]; exists {
		return name
	}
	return "unknown"
}
