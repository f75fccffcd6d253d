package cpu

// iLoad reads operand via mode and stores it in register reg, setting N
// and Z from the loaded value. Shared by LDA/LDX/LDY.
func iLoad(f Facade, mode AddrMode, reg uint8) {
	val := readOperand(f, mode)
	f.RegSet(reg, val)
	setNZ(f, val)
}

func iLDA(f Facade, mode AddrMode) { iLoad(f, mode, RegA) }
func iLDX(f Facade, mode AddrMode) { iLoad(f, mode, RegX) }
func iLDY(f Facade, mode AddrMode) { iLoad(f, mode, RegY) }
