package cpu

// iTransfer copies register src to register dst, charging the 1 internal
// cycle every implied 2-cycle instruction needs beyond the opcode fetch.
// If setFlags is true, N and Z are set from the transferred value (every
// transfer except TXS does this).
func iTransfer(f Facade, src, dst uint8, setFlags bool) {
	f.AddCycles(1)
	val := f.RegGet(src)
	f.RegSet(dst, val)
	if setFlags {
		setNZ(f, val)
	}
}

func iTAX(f Facade) { iTransfer(f, RegA, RegX, true) }
func iTAY(f Facade) { iTransfer(f, RegA, RegY, true) }
func iTXA(f Facade) { iTransfer(f, RegX, RegA, true) }
func iTYA(f Facade) { iTransfer(f, RegY, RegA, true) }

// iTSX copies SP into X, setting N and Z.
func iTSX(f Facade) {
	f.AddCycles(1)
	val := f.GetSP()
	f.RegSet(RegX, val)
	setNZ(f, val)
}

// iTXS copies X into SP. No flags are touched.
func iTXS(f Facade) {
	f.AddCycles(1)
	f.SetSP(f.RegGet(RegX))
}
