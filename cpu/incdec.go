package cpu

// iIncDecMem adjusts the byte at the effective address for mode by
// delta (+1 or -1), wrapping modulo 256, and sets N/Z. INC/DEC have no
// accumulator form, so the reference is always memory and always goes
// through the dummy-write-then-write RMW cycle accounting (see iShift).
func iIncDecMem(f Facade, mode AddrMode, delta uint8) {
	ref := resolveRef(f, mode, true)
	old := f.ReadRef(ref)
	f.WriteRef(ref, old)
	result := old + delta
	f.WriteRef(ref, result)
	setNZ(f, result)
}

func iINC(f Facade, mode AddrMode) { iIncDecMem(f, mode, 1) }
func iDEC(f Facade, mode AddrMode) { iIncDecMem(f, mode, 0xFF) }

// iIncDecReg adjusts register reg by delta, charging the 1 internal cycle
// every implied 2-cycle instruction needs.
func iIncDecReg(f Facade, reg uint8, delta uint8) {
	f.AddCycles(1)
	result := f.RegGet(reg) + delta
	f.RegSet(reg, result)
	setNZ(f, result)
}

func iINX(f Facade) { iIncDecReg(f, RegX, 1) }
func iDEX(f Facade) { iIncDecReg(f, RegX, 0xFF) }
func iINY(f Facade) { iIncDecReg(f, RegY, 1) }
func iDEY(f Facade) { iIncDecReg(f, RegY, 0xFF) }
