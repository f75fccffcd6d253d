package cpu

// ADC implements the accumulator add-with-carry semantics, including BCD
// mode. It updates C, Z, N, V and writes the result to A.
func (c *Chip) ADC(operand uint8) {
	a := c.A
	carryIn := uint16(0)
	if c.FlagGet(PCarry) {
		carryIn = 1
	}

	if c.FlagGet(PDecimal) {
		// Binary sum drives Z, per the documented NMOS idiosyncrasy.
		binSum := uint16(a) + uint16(operand) + carryIn

		lo := (a & 0x0F) + (operand & 0x0F) + uint8(carryIn)
		if lo > 9 {
			lo = ((lo + 6) & 0x0F) + 0x10
		}
		hi := uint16(a&0xF0) + uint16(operand&0xF0) + uint16(lo)
		if hi > 0x99 {
			hi += 0x60
		}
		result := uint8(hi & 0xFF)

		c.FlagSet(PCarry, hi > 0x99)
		zeroCheck(c, uint8(binSum))
		negativeCheck(c, result)
		c.FlagSet(POverflow, (a^result)&(operand^result)&0x80 != 0)
		c.A = result
		return
	}

	sum := uint16(a) + uint16(operand) + carryIn
	result := uint8(sum)
	c.FlagSet(PCarry, sum > 0xFF)
	setNZ(c, result)
	c.FlagSet(POverflow, (a^result)&(operand^result)&0x80 != 0)
	c.A = result
}

// SBC implements the accumulator subtract-with-borrow semantics. In
// binary mode it is equivalent to ADC with the operand's bits inverted;
// decimal mode mirrors ADC's BCD adjustment using ten's-complement.
func (c *Chip) SBC(operand uint8) {
	if !c.FlagGet(PDecimal) {
		c.ADC(^operand)
		return
	}

	a := c.A
	borrowIn := uint16(0)
	if !c.FlagGet(PCarry) {
		borrowIn = 1
	}

	binDiff := int16(a) - int16(operand) - int16(borrowIn)

	lo := int16(a&0x0F) - int16(operand&0x0F) - int16(borrowIn)
	if lo < 0 {
		lo = ((lo - 6) & 0x0F) - 0x10
	}
	hi := int16(a&0xF0) - int16(operand&0xF0) + lo
	if hi < 0 {
		hi -= 0x60
	}
	result := uint8(hi & 0xFF)

	c.FlagSet(PCarry, binDiff >= 0)
	zeroCheck(c, uint8(binDiff))
	negativeCheck(c, uint8(binDiff))
	c.FlagSet(POverflow, (a^operand)&(a^uint8(binDiff))&0x80 != 0)
	c.A = result
}

// iADC handles ADC in every addressing mode.
func iADC(f Facade, mode AddrMode) {
	operand := readOperand(f, mode)
	f.ADC(operand)
}

// iSBC handles SBC in every addressing mode.
func iSBC(f Facade, mode AddrMode) {
	operand := readOperand(f, mode)
	f.SBC(operand)
}
