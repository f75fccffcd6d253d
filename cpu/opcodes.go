package cpu

// opcodeDef describes one entry of the 256-slot instruction table: its
// mnemonic (for diagnostics and disassembly), whether it's a legal NMOS
// opcode, and the handler to run. Handlers are already bound to their
// addressing mode via closures built in buildOpcodeTable, so the
// dispatcher just calls Run(f).
type opcodeDef struct {
	Name  string
	Legal bool
	Run   func(f Facade)
}

// illegalDef is the default table entry: a 1-cycle fetch with no further
// effect, reported through the error sink by the dispatcher.
var illegalDef = opcodeDef{Name: "unsupported", Legal: false, Run: func(Facade) {}}

// buildOpcodeTable constructs a fresh 256-entry handler table. It is a
// plain function rather than a package-level var so no process-wide
// mutable state is shared across Chip instances (spec.md §9, "Global
// singletons").
func buildOpcodeTable() [256]opcodeDef {
	var t [256]opcodeDef
	for i := range t {
		t[i] = illegalDef
	}

	def := func(op uint8, name string, fn func(f Facade)) {
		t[op] = opcodeDef{Name: name, Legal: true, Run: fn}
	}
	withMode := func(op uint8, name string, h func(f Facade, mode AddrMode), mode AddrMode) {
		def(op, name, func(f Facade) { h(f, mode) })
	}

	// Load.
	withMode(0xA9, "LDA", iLDA, Immediate)
	withMode(0xA5, "LDA", iLDA, ZeroPage)
	withMode(0xB5, "LDA", iLDA, ZeroPageX)
	withMode(0xAD, "LDA", iLDA, Absolute)
	withMode(0xBD, "LDA", iLDA, AbsoluteX)
	withMode(0xB9, "LDA", iLDA, AbsoluteY)
	withMode(0xA1, "LDA", iLDA, IndirectX)
	withMode(0xB1, "LDA", iLDA, IndirectY)

	withMode(0xA2, "LDX", iLDX, Immediate)
	withMode(0xA6, "LDX", iLDX, ZeroPage)
	withMode(0xB6, "LDX", iLDX, ZeroPageY)
	withMode(0xAE, "LDX", iLDX, Absolute)
	withMode(0xBE, "LDX", iLDX, AbsoluteY)

	withMode(0xA0, "LDY", iLDY, Immediate)
	withMode(0xA4, "LDY", iLDY, ZeroPage)
	withMode(0xB4, "LDY", iLDY, ZeroPageX)
	withMode(0xAC, "LDY", iLDY, Absolute)
	withMode(0xBC, "LDY", iLDY, AbsoluteX)

	// Store.
	withMode(0x85, "STA", iSTA, ZeroPage)
	withMode(0x95, "STA", iSTA, ZeroPageX)
	withMode(0x8D, "STA", iSTA, Absolute)
	withMode(0x9D, "STA", iSTA, AbsoluteX)
	withMode(0x99, "STA", iSTA, AbsoluteY)
	withMode(0x81, "STA", iSTA, IndirectX)
	withMode(0x91, "STA", iSTA, IndirectY)

	withMode(0x86, "STX", iSTX, ZeroPage)
	withMode(0x96, "STX", iSTX, ZeroPageY)
	withMode(0x8E, "STX", iSTX, Absolute)

	withMode(0x84, "STY", iSTY, ZeroPage)
	withMode(0x94, "STY", iSTY, ZeroPageX)
	withMode(0x8C, "STY", iSTY, Absolute)

	// Transfer.
	def(0xAA, "TAX", iTAX)
	def(0xA8, "TAY", iTAY)
	def(0x8A, "TXA", iTXA)
	def(0x98, "TYA", iTYA)
	def(0xBA, "TSX", iTSX)
	def(0x9A, "TXS", iTXS)

	// Stack.
	def(0x48, "PHA", iPHA)
	def(0x08, "PHP", iPHP)
	def(0x68, "PLA", iPLA)
	def(0x28, "PLP", iPLP)

	// Arithmetic.
	withMode(0x69, "ADC", iADC, Immediate)
	withMode(0x65, "ADC", iADC, ZeroPage)
	withMode(0x75, "ADC", iADC, ZeroPageX)
	withMode(0x6D, "ADC", iADC, Absolute)
	withMode(0x7D, "ADC", iADC, AbsoluteX)
	withMode(0x79, "ADC", iADC, AbsoluteY)
	withMode(0x61, "ADC", iADC, IndirectX)
	withMode(0x71, "ADC", iADC, IndirectY)

	withMode(0xE9, "SBC", iSBC, Immediate)
	withMode(0xE5, "SBC", iSBC, ZeroPage)
	withMode(0xF5, "SBC", iSBC, ZeroPageX)
	withMode(0xED, "SBC", iSBC, Absolute)
	withMode(0xFD, "SBC", iSBC, AbsoluteX)
	withMode(0xF9, "SBC", iSBC, AbsoluteY)
	withMode(0xE1, "SBC", iSBC, IndirectX)
	withMode(0xF1, "SBC", iSBC, IndirectY)

	// Logic.
	withMode(0x29, "AND", iAND, Immediate)
	withMode(0x25, "AND", iAND, ZeroPage)
	withMode(0x35, "AND", iAND, ZeroPageX)
	withMode(0x2D, "AND", iAND, Absolute)
	withMode(0x3D, "AND", iAND, AbsoluteX)
	withMode(0x39, "AND", iAND, AbsoluteY)
	withMode(0x21, "AND", iAND, IndirectX)
	withMode(0x31, "AND", iAND, IndirectY)

	withMode(0x49, "EOR", iEOR, Immediate)
	withMode(0x45, "EOR", iEOR, ZeroPage)
	withMode(0x55, "EOR", iEOR, ZeroPageX)
	withMode(0x4D, "EOR", iEOR, Absolute)
	withMode(0x5D, "EOR", iEOR, AbsoluteX)
	withMode(0x59, "EOR", iEOR, AbsoluteY)
	withMode(0x41, "EOR", iEOR, IndirectX)
	withMode(0x51, "EOR", iEOR, IndirectY)

	withMode(0x09, "ORA", iORA, Immediate)
	withMode(0x05, "ORA", iORA, ZeroPage)
	withMode(0x15, "ORA", iORA, ZeroPageX)
	withMode(0x0D, "ORA", iORA, Absolute)
	withMode(0x1D, "ORA", iORA, AbsoluteX)
	withMode(0x19, "ORA", iORA, AbsoluteY)
	withMode(0x01, "ORA", iORA, IndirectX)
	withMode(0x11, "ORA", iORA, IndirectY)

	withMode(0x24, "BIT", iBIT, ZeroPage)
	withMode(0x2C, "BIT", iBIT, Absolute)

	// Shift/rotate.
	withMode(0x0A, "ASL", iASL, Accumulator)
	withMode(0x06, "ASL", iASL, ZeroPage)
	withMode(0x16, "ASL", iASL, ZeroPageX)
	withMode(0x0E, "ASL", iASL, Absolute)
	withMode(0x1E, "ASL", iASL, AbsoluteX)

	withMode(0x4A, "LSR", iLSR, Accumulator)
	withMode(0x46, "LSR", iLSR, ZeroPage)
	withMode(0x56, "LSR", iLSR, ZeroPageX)
	withMode(0x4E, "LSR", iLSR, Absolute)
	withMode(0x5E, "LSR", iLSR, AbsoluteX)

	withMode(0x2A, "ROL", iROL, Accumulator)
	withMode(0x26, "ROL", iROL, ZeroPage)
	withMode(0x36, "ROL", iROL, ZeroPageX)
	withMode(0x2E, "ROL", iROL, Absolute)
	withMode(0x3E, "ROL", iROL, AbsoluteX)

	withMode(0x6A, "ROR", iROR, Accumulator)
	withMode(0x66, "ROR", iROR, ZeroPage)
	withMode(0x76, "ROR", iROR, ZeroPageX)
	withMode(0x6E, "ROR", iROR, Absolute)
	withMode(0x7E, "ROR", iROR, AbsoluteX)

	// Inc/dec.
	withMode(0xE6, "INC", iINC, ZeroPage)
	withMode(0xF6, "INC", iINC, ZeroPageX)
	withMode(0xEE, "INC", iINC, Absolute)
	withMode(0xFE, "INC", iINC, AbsoluteX)

	withMode(0xC6, "DEC", iDEC, ZeroPage)
	withMode(0xD6, "DEC", iDEC, ZeroPageX)
	withMode(0xCE, "DEC", iDEC, Absolute)
	withMode(0xDE, "DEC", iDEC, AbsoluteX)

	def(0xE8, "INX", iINX)
	def(0xCA, "DEX", iDEX)
	def(0xC8, "INY", iINY)
	def(0x88, "DEY", iDEY)

	// Compare.
	withMode(0xC9, "CMP", iCMP, Immediate)
	withMode(0xC5, "CMP", iCMP, ZeroPage)
	withMode(0xD5, "CMP", iCMP, ZeroPageX)
	withMode(0xCD, "CMP", iCMP, Absolute)
	withMode(0xDD, "CMP", iCMP, AbsoluteX)
	withMode(0xD9, "CMP", iCMP, AbsoluteY)
	withMode(0xC1, "CMP", iCMP, IndirectX)
	withMode(0xD1, "CMP", iCMP, IndirectY)

	withMode(0xE0, "CPX", iCPX, Immediate)
	withMode(0xE4, "CPX", iCPX, ZeroPage)
	withMode(0xEC, "CPX", iCPX, Absolute)

	withMode(0xC0, "CPY", iCPY, Immediate)
	withMode(0xC4, "CPY", iCPY, ZeroPage)
	withMode(0xCC, "CPY", iCPY, Absolute)

	// Status.
	def(0x18, "CLC", iCLC)
	def(0x38, "SEC", iSEC)
	def(0xD8, "CLD", iCLD)
	def(0xF8, "SED", iSED)
	def(0x58, "CLI", iCLI)
	def(0x78, "SEI", iSEI)
	def(0xB8, "CLV", iCLV)

	// Branches.
	def(0x90, "BCC", iBCC)
	def(0xB0, "BCS", iBCS)
	def(0xD0, "BNE", iBNE)
	def(0xF0, "BEQ", iBEQ)
	def(0x10, "BPL", iBPL)
	def(0x30, "BMI", iBMI)
	def(0x50, "BVC", iBVC)
	def(0x70, "BVS", iBVS)

	// Jump/subroutine.
	def(0x4C, "JMP", iJMP)
	def(0x6C, "JMP", iJMPIndirect)
	def(0x20, "JSR", iJSR)
	def(0x60, "RTS", iRTS)
	def(0x00, "BRK", iBRK)
	def(0x40, "RTI", iRTI)

	// No-op.
	def(0xEA, "NOP", iNOP)

	return t
}
