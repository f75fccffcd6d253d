package cpu

// iShift resolves the target reference for mode, reads its current
// value, applies op (which updates the carry flag and returns the new
// value), and writes the result back. For a memory reference this issues
// a dummy write-back of the unmodified value before the final write,
// reproducing the real 6502 read-modify-write bus cycle -- which is also
// how the fixed 7-cycle absolute,X override in §4.2 falls out without a
// special case (resolveRef already forces the page-cross charge for any
// RMW reference).
func iShift(f Facade, mode AddrMode, op func(f Facade, v uint8) uint8) {
	ref := resolveRef(f, mode, true)
	old := f.ReadRef(ref)
	if ref.IsMemory() {
		f.WriteRef(ref, old)
	} else {
		f.AddCycles(1)
	}
	result := op(f, old)
	f.WriteRef(ref, result)
	setNZ(f, result)
}

func shiftASL(f Facade, v uint8) uint8 {
	f.FlagSet(PCarry, v&0x80 != 0)
	return v << 1
}

func shiftLSR(f Facade, v uint8) uint8 {
	f.FlagSet(PCarry, v&0x01 != 0)
	return v >> 1
}

func shiftROL(f Facade, v uint8) uint8 {
	var carryIn uint8
	if f.FlagGet(PCarry) {
		carryIn = 1
	}
	f.FlagSet(PCarry, v&0x80 != 0)
	return (v << 1) | carryIn
}

func shiftROR(f Facade, v uint8) uint8 {
	var carryIn uint8
	if f.FlagGet(PCarry) {
		carryIn = 0x80
	}
	f.FlagSet(PCarry, v&0x01 != 0)
	return (v >> 1) | carryIn
}

func iASL(f Facade, mode AddrMode) { iShift(f, mode, shiftASL) }
func iLSR(f Facade, mode AddrMode) { iShift(f, mode, shiftLSR) }
func iROL(f Facade, mode AddrMode) { iShift(f, mode, shiftROL) }
func iROR(f Facade, mode AddrMode) { iShift(f, mode, shiftROR) }
