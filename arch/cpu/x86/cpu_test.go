package x86

import (
	"testing"

	"github.com/retroenv/retro86/assert"
)

// testBus is a flat 1 MiB memory with no unmapped holes, used by most CPU
// tests.
type testBus struct {
	data [1 << 20]uint8
}

func (b *testBus) Read8(addr uint32) (uint8, error) {
	return b.data[addr&AddressMask], nil
}

func (b *testBus) Write8(addr uint32, value uint8) error {
	b.data[addr&AddressMask] = value
	return nil
}

type cpuTest struct {
	Name  string
	Setup func(t *testing.T, cpu *CPU)
	Check func(t *testing.T, cpu *CPU)
}

// cpuTestSetup creates a CPU executing from 0000:0100 with the stack at
// 0000:1000.
func cpuTestSetup(t *testing.T) *CPU {
	t.Helper()

	cpu, err := New(&testBus{})
	assert.NoError(t, err)

	cpu.SetSeg(CS, 0x0000)
	cpu.IP = 0x0100
	cpu.SetReg16(SP, 0x1000)
	return cpu
}

// loadCode writes a byte sequence at CS:IP.
func loadCode(t *testing.T, cpu *CPU, code ...uint8) {
	t.Helper()
	for i, b := range code {
		assert.NoError(t, cpu.SetMem8(CS, cpu.IP+uint16(i), b))
	}
}

func runCPUTest(t *testing.T, tests []cpuTest) {
	t.Helper()

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			cpu := cpuTestSetup(t)
			test.Setup(t, cpu)
			test.Check(t, cpu)
		})
	}
}

func TestNewNilBus(t *testing.T) {
	t.Parallel()
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilBus)
}

func TestReset(t *testing.T) {
	t.Parallel()
	cpu, err := New(&testBus{})
	assert.NoError(t, err)

	cpu.SetReg16(AX, 0x1234)
	cpu.SetSeg(DS, 0x2000)
	cpu.IP = 0x4711
	cpu.Flags = cpu.Flags.set(FlagCarry, true)

	cpu.Reset()

	assert.Equal(t, 0xFFFF, cpu.Seg(CS))
	assert.Equal(t, 0, cpu.Seg(DS))
	assert.Equal(t, 0, cpu.Seg(ES))
	assert.Equal(t, 0, cpu.Seg(SS))
	assert.Equal(t, 0, cpu.IP)
	assert.Equal(t, 0, cpu.Reg16(AX))
	assert.Equal(t, Flags(1<<FlagReserved1), cpu.Flags)

	// the reset vector is the byte at linear 0xFFFF0
	assert.Equal(t, uint32(0xFFFF0), LinearAddress(cpu.Seg(CS), cpu.IP))
}

func TestRegisterAliasing(t *testing.T) {
	t.Parallel()
	cpu, err := New(&testBus{})
	assert.NoError(t, err)

	wordRegs := []GeneralWordReg{AX, CX, DX, BX}
	lowRegs := []GeneralByteReg{AL, CL, DL, BL}
	highRegs := []GeneralByteReg{AH, CH, DH, BH}

	for i, reg := range wordRegs {
		cpu.SetReg16(reg, 0xABCD)
		assert.Equal(t, 0xCD, cpu.Reg8(lowRegs[i]), "low byte of %s", reg)
		assert.Equal(t, 0xAB, cpu.Reg8(highRegs[i]), "high byte of %s", reg)

		cpu.SetReg8(lowRegs[i], 0x11)
		cpu.SetReg8(highRegs[i], 0x22)
		assert.Equal(t, 0x2211, cpu.Reg16(reg), "word view of %s", reg)
	}

	// word only registers do not alias the byte registers
	cpu.SetReg16(AX, 0x0000)
	cpu.SetReg16(SP, 0x1234)
	cpu.SetReg16(BP, 0x5678)
	cpu.SetReg16(SI, 0x9ABC)
	cpu.SetReg16(DI, 0xDEF0)
	assert.Equal(t, 0, cpu.Reg16(AX))
	assert.Equal(t, 0x1234, cpu.Reg16(SP))
	assert.Equal(t, 0x5678, cpu.Reg16(BP))
	assert.Equal(t, 0x9ABC, cpu.Reg16(SI))
	assert.Equal(t, 0xDEF0, cpu.Reg16(DI))
}

func TestStackRoundTrip(t *testing.T) {
	t.Parallel()
	cpu := cpuTestSetup(t)

	assert.NoError(t, cpu.push16(0xBEEF))
	assert.Equal(t, 0x0FFE, cpu.Reg16(SP))

	value, err := cpu.pop16()
	assert.NoError(t, err)
	assert.Equal(t, 0xBEEF, value)
	assert.Equal(t, 0x1000, cpu.Reg16(SP))
}

func TestFetch(t *testing.T) {
	t.Parallel()
	cpu := cpuTestSetup(t)
	loadCode(t, cpu, 0x12, 0x34, 0x56)

	b, err := cpu.Fetch8()
	assert.NoError(t, err)
	assert.Equal(t, 0x12, b)
	assert.Equal(t, 0x0101, cpu.IP)

	w, err := cpu.Fetch16()
	assert.NoError(t, err)
	assert.Equal(t, 0x5634, w)
	assert.Equal(t, 0x0103, cpu.IP)
}

func TestState(t *testing.T) {
	t.Parallel()
	cpu := cpuTestSetup(t)
	cpu.SetReg16(AX, 0x1111)
	cpu.SetReg16(DI, 0x2222)
	cpu.SetSeg(DS, 0x3333)

	state := cpu.State()
	assert.Equal(t, 0x1111, state.AX)
	assert.Equal(t, 0x2222, state.DI)
	assert.Equal(t, 0x3333, state.DS)
	assert.Equal(t, 0x0100, state.IP)
}
