package x86

import (
	"testing"

	"github.com/retroenv/retro86/assert"
)

func TestAdd8Flags(t *testing.T) {
	t.Parallel()
	tests := []cpuTest{
		{
			Name: "no carry",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0x34, cpu.add8(0x12, 0x22, 0))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.False(t, cpu.Flags.GetCarry())
				assert.False(t, cpu.Flags.GetZero())
				assert.False(t, cpu.Flags.GetSign())
				assert.False(t, cpu.Flags.GetOverflow())
			},
		},
		{
			Name: "unsigned overflow sets carry and zero",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0x00, cpu.add8(0xFF, 0x01, 0))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.True(t, cpu.Flags.GetCarry())
				assert.True(t, cpu.Flags.GetZero())
				assert.False(t, cpu.Flags.GetOverflow())
				assert.True(t, cpu.Flags.GetAuxCarry())
				assert.True(t, cpu.Flags.GetParity())
			},
		},
		{
			Name: "signed overflow",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0x80, cpu.add8(0x7F, 0x01, 0))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.False(t, cpu.Flags.GetCarry())
				assert.True(t, cpu.Flags.GetOverflow())
				assert.True(t, cpu.Flags.GetSign())
			},
		},
		{
			Name: "carry in",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0x10, cpu.add8(0x0F, 0x00, 1))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.True(t, cpu.Flags.GetAuxCarry())
				assert.False(t, cpu.Flags.GetCarry())
			},
		},
	}
	runCPUTest(t, tests)
}

func TestAdd16Flags(t *testing.T) {
	t.Parallel()
	tests := []cpuTest{
		{
			Name: "unsigned overflow",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0x0000, cpu.add16(0xFFFF, 0x0001, 0))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.True(t, cpu.Flags.GetCarry())
				assert.True(t, cpu.Flags.GetZero())
			},
		},
		{
			Name: "signed overflow",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0x8000, cpu.add16(0x7FFF, 0x0001, 0))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.True(t, cpu.Flags.GetOverflow())
				assert.True(t, cpu.Flags.GetSign())
				assert.False(t, cpu.Flags.GetCarry())
			},
		},
	}
	runCPUTest(t, tests)
}

func TestSubFlags(t *testing.T) {
	t.Parallel()
	tests := []cpuTest{
		{
			Name: "equal operands set zero",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0x00, cpu.sub8(0x05, 0x05))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.True(t, cpu.Flags.GetZero())
				assert.False(t, cpu.Flags.GetCarry())
				assert.True(t, cpu.Flags.GetParity())
			},
		},
		{
			Name: "borrow sets carry",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0xFF, cpu.sub8(0x00, 0x01))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.True(t, cpu.Flags.GetCarry())
				assert.True(t, cpu.Flags.GetSign())
				assert.True(t, cpu.Flags.GetAuxCarry())
			},
		},
		{
			Name: "signed overflow",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0x7F, cpu.sub8(0x80, 0x01))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.True(t, cpu.Flags.GetOverflow())
				assert.False(t, cpu.Flags.GetSign())
				assert.False(t, cpu.Flags.GetCarry())
			},
		},
		{
			Name: "word borrow",
			Setup: func(t *testing.T, cpu *CPU) {
				assert.Equal(t, 0xFFFF, cpu.sub16(0x0000, 0x0001))
			},
			Check: func(t *testing.T, cpu *CPU) {
				assert.True(t, cpu.Flags.GetCarry())
				assert.True(t, cpu.Flags.GetSign())
			},
		},
	}
	runCPUTest(t, tests)
}

func TestParity(t *testing.T) {
	t.Parallel()
	cpu := cpuTestSetup(t)

	// parity is computed over the low 8 bits only
	cpu.logicFlags16(0xFF01) // one bit set in the low byte
	assert.False(t, cpu.Flags.GetParity())

	cpu.logicFlags16(0xFF03) // two bits set in the low byte
	assert.True(t, cpu.Flags.GetParity())

	cpu.logicFlags8(0x00)
	assert.True(t, cpu.Flags.GetParity())
}

func TestLogicFlags(t *testing.T) {
	t.Parallel()
	cpu := cpuTestSetup(t)

	cpu.Flags = cpu.Flags.set(FlagCarry, true)
	cpu.Flags = cpu.Flags.set(FlagOverflow, true)
	cpu.Flags = cpu.Flags.set(FlagAuxCarry, true)

	cpu.logicFlags8(0x80)
	assert.False(t, cpu.Flags.GetCarry())
	assert.False(t, cpu.Flags.GetOverflow())
	assert.False(t, cpu.Flags.GetAuxCarry())
	assert.True(t, cpu.Flags.GetSign())
	assert.False(t, cpu.Flags.GetZero())
}

func TestFlagsNormalize(t *testing.T) {
	t.Parallel()

	f := Flags(0xFFFF).normalize()
	assert.Equal(t, uint16(0xFFD7), uint16(f), "bits 3 and 5 read as zero")

	f = Flags(0).normalize()
	assert.Equal(t, uint16(0x0002), uint16(f), "bit 1 reads as one")
}
