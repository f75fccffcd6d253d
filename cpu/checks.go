package cpu

// zeroCheck sets the Z flag on f from val.
func zeroCheck(f Facade, val uint8) {
	f.FlagSet(PZero, val == 0)
}

// negativeCheck sets the N flag on f from val's high bit.
func negativeCheck(f Facade, val uint8) {
	f.FlagSet(PNegative, val&0x80 != 0)
}

// setNZ sets both Z and N on f from val, the common case for load/
// transfer/logic/shift/inc-dec results.
func setNZ(f Facade, val uint8) {
	zeroCheck(f, val)
	negativeCheck(f, val)
}
