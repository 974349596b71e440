package x86

// CPU implements the 8086/80186 real mode instruction pipeline. It owns the
// register file and flags exclusively; memory is reached through the bus
// passed to New and port I/O through the Ports plane.
type CPU struct {
	// The eight byte registers occupy indices 0-7 so that the word view of
	// register r is the little endian pair (r, r+4). SP, BP, SI and DI live
	// in the pairs (8,12) to (11,15).
	regs     [16]uint8
	segments [4]uint16

	IP    uint16
	Flags Flags

	memory *Memory
	ports  *Ports

	opts Options
}

// New creates a new CPU running against the given memory bus.
func New(bus Bus, options ...Option) (*CPU, error) {
	if bus == nil {
		return nil, ErrNilBus
	}

	c := &CPU{
		memory: NewMemory(bus),
		ports:  NewPorts(),
		opts:   NewOptions(options...),
	}
	c.Reset()
	return c, nil
}

// Reset puts the CPU into the architectural reset state: CS=0xFFFF and IP=0,
// so the first instruction fetched is the reset vector at linear 0xFFFF0.
// All other registers are zeroed and the flags hold only their reserved bits.
func (c *CPU) Reset() {
	c.regs = [16]uint8{}

	c.SetSeg(CS, 0xFFFF)
	c.SetSeg(DS, 0x0000)
	c.SetSeg(ES, 0x0000)
	c.SetSeg(SS, 0x0000)

	c.IP = 0
	c.Flags = Flags(0).normalize()
}

// Memory returns the CPU memory.
func (c *CPU) Memory() *Memory {
	return c.memory
}

// Ports returns the port I/O plane.
func (c *CPU) Ports() *Ports {
	return c.ports
}

// Reg8 returns the value of a byte register.
func (c *CPU) Reg8(reg GeneralByteReg) uint8 {
	return c.regs[reg]
}

// SetReg8 sets a byte register.
func (c *CPU) SetReg8(reg GeneralByteReg, value uint8) {
	c.regs[reg] = value
}

// Reg16 returns the value of a word register, composing the low and high
// byte in little endian order.
func (c *CPU) Reg16(reg GeneralWordReg) uint16 {
	low := c.regs[reg]
	high := c.regs[reg+4]
	return uint16(high)<<8 | uint16(low)
}

// SetReg16 sets a word register, splitting the value into its low and high
// byte.
func (c *CPU) SetReg16(reg GeneralWordReg, value uint16) {
	c.regs[reg] = uint8(value)
	c.regs[reg+4] = uint8(value >> 8)
}

// Seg returns the value of a segment register.
func (c *CPU) Seg(reg SegmentReg) uint16 {
	return c.segments[reg]
}

// SetSeg sets a segment register.
func (c *CPU) SetSeg(reg SegmentReg, value uint16) {
	c.segments[reg] = value
}

// GetMem8 reads a byte at the given segment register and offset.
func (c *CPU) GetMem8(segment SegmentReg, offset uint16) (uint8, error) {
	return c.memory.Read8(c.Seg(segment), offset)
}

// GetMem16 reads a word at the given segment register and offset.
func (c *CPU) GetMem16(segment SegmentReg, offset uint16) (uint16, error) {
	return c.memory.Read16(c.Seg(segment), offset)
}

// SetMem8 writes a byte at the given segment register and offset.
func (c *CPU) SetMem8(segment SegmentReg, offset uint16, value uint8) error {
	return c.memory.Write8(c.Seg(segment), offset, value)
}

// SetMem16 writes a word at the given segment register and offset.
func (c *CPU) SetMem16(segment SegmentReg, offset uint16, value uint16) error {
	return c.memory.Write16(c.Seg(segment), offset, value)
}

// Fetch8 reads the byte at CS:IP and advances IP by 1.
func (c *CPU) Fetch8() (uint8, error) {
	value, err := c.GetMem8(CS, c.IP)
	if err != nil {
		return 0, err
	}
	c.IP++
	return value, nil
}

// Fetch16 reads the word at CS:IP and advances IP by 2.
func (c *CPU) Fetch16() (uint16, error) {
	value, err := c.GetMem16(CS, c.IP)
	if err != nil {
		return 0, err
	}
	c.IP += 2
	return value, nil
}

// push16 pushes a word onto the stack at SS:SP, decrementing SP first.
func (c *CPU) push16(value uint16) error {
	sp := c.Reg16(SP) - 2
	c.SetReg16(SP, sp)
	return c.SetMem16(SS, sp, value)
}

// pop16 pops a word from the stack at SS:SP, incrementing SP afterwards.
func (c *CPU) pop16() (uint16, error) {
	sp := c.Reg16(SP)
	value, err := c.GetMem16(SS, sp)
	if err != nil {
		return 0, err
	}
	c.SetReg16(SP, sp+2)
	return value, nil
}

// State contains a snapshot of the CPU register state.
type State struct {
	AX, CX, DX, BX uint16
	SP, BP, SI, DI uint16
	ES, CS, SS, DS uint16
	IP             uint16
	Flags          Flags
}

// State returns a snapshot of the current register state.
func (c *CPU) State() State {
	return State{
		AX: c.Reg16(AX), CX: c.Reg16(CX), DX: c.Reg16(DX), BX: c.Reg16(BX),
		SP: c.Reg16(SP), BP: c.Reg16(BP), SI: c.Reg16(SI), DI: c.Reg16(DI),
		ES: c.Seg(ES), CS: c.Seg(CS), SS: c.Seg(SS), DS: c.Seg(DS),
		IP:    c.IP,
		Flags: c.Flags,
	}
}
