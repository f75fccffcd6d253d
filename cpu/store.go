package cpu

// iStore writes register reg to the effective address for mode. Indexed
// stores always charge the page-cross cycle (forWrite=true), matching
// real hardware where the penalty is never data-dependent for a write.
func iStore(f Facade, mode AddrMode, reg uint8) {
	ref := resolveRef(f, mode, true)
	f.WriteRef(ref, f.RegGet(reg))
}

func iSTA(f Facade, mode AddrMode) { iStore(f, mode, RegA) }
func iSTX(f Facade, mode AddrMode) { iStore(f, mode, RegX) }
func iSTY(f Facade, mode AddrMode) { iStore(f, mode, RegY) }
