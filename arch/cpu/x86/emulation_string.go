package x86

// String store instructions. The destination segment of STOS is
// architecturally fixed to ES; segment override prefixes do not apply.

// advanceDI moves DI by the element size in the direction selected by DF.
func (c *CPU) advanceDI(size uint16) {
	if c.Flags.GetDirection() {
		c.SetReg16(DI, c.Reg16(DI)-size)
	} else {
		c.SetReg16(DI, c.Reg16(DI)+size)
	}
}

// repeatString runs one store, or CX stores under a REP prefix. CX is
// tested before and decremented after every iteration, so REP with CX=0
// stores nothing.
func (c *CPU) repeatString(rep bool, size uint16, store func() error) error {
	if !rep {
		if err := store(); err != nil {
			return err
		}
		c.advanceDI(size)
		return nil
	}

	for c.Reg16(CX) != 0 {
		if err := store(); err != nil {
			return err
		}
		c.advanceDI(size)
		c.SetReg16(CX, c.Reg16(CX)-1)
	}
	return nil
}

// stosb - STOSB (0xAA): stores AL at ES:DI.
func stosb(c *CPU, _ uint8, prefixes Prefixes) error {
	return c.repeatString(prefixes.Rep, 1, func() error {
		return c.SetMem8(ES, c.Reg16(DI), c.Reg8(AL))
	})
}

// stosw - STOSW (0xAB): stores AX at ES:DI.
func stosw(c *CPU, _ uint8, prefixes Prefixes) error {
	return c.repeatString(prefixes.Rep, 2, func() error {
		return c.SetMem16(ES, c.Reg16(DI), c.Reg16(AX))
	})
}
