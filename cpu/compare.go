package cpu

// iCompare computes reg-operand as an unsigned 9-bit subtraction without
// storing the result. C is set if reg >= operand, Z if they're equal,
// and N from bit 7 of the low-8 difference.
func iCompare(f Facade, mode AddrMode, reg uint8) {
	operand := readOperand(f, mode)
	regVal := f.RegGet(reg)
	diff := uint16(regVal) - uint16(operand)
	f.FlagSet(PCarry, regVal >= operand)
	zeroCheck(f, uint8(diff))
	negativeCheck(f, uint8(diff))
}

func iCMP(f Facade, mode AddrMode) { iCompare(f, mode, RegA) }
func iCPX(f Facade, mode AddrMode) { iCompare(f, mode, RegX) }
func iCPY(f Facade, mode AddrMode) { iCompare(f, mode, RegY) }
