package cpu

// iLogic reads operand via mode, applies op to A and the operand, stores
// the result in A, and sets N/Z. Shared by AND/EOR/ORA.
func iLogic(f Facade, mode AddrMode, op func(a, operand uint8) uint8) {
	operand := readOperand(f, mode)
	result := op(f.RegGet(RegA), operand)
	f.RegSet(RegA, result)
	setNZ(f, result)
}

func iAND(f Facade, mode AddrMode) {
	iLogic(f, mode, func(a, operand uint8) uint8 { return a & operand })
}

func iEOR(f Facade, mode AddrMode) {
	iLogic(f, mode, func(a, operand uint8) uint8 { return a ^ operand })
}

func iORA(f Facade, mode AddrMode) {
	iLogic(f, mode, func(a, operand uint8) uint8 { return a | operand })
}

// iBIT computes A & operand without storing it. Z comes from the AND
// result; N and V come directly from bits 7 and 6 of the operand, not
// the AND result.
func iBIT(f Facade, mode AddrMode) {
	operand := readOperand(f, mode)
	zeroCheck(f, f.RegGet(RegA)&operand)
	f.FlagSet(PNegative, operand&0x80 != 0)
	f.FlagSet(POverflow, operand&0x40 != 0)
}
