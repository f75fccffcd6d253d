package cpu

// iJMP handles JMP absolute.
func iJMP(f Facade) {
	f.SetPC(f.ReadPCWord())
}

// iJMPIndirect handles JMP (indirect), reproducing the original NMOS
// page-wrap bug: when the pointer's low byte is 0xFF, the high byte of
// the target is fetched from the start of the same page (xx00) instead
// of crossing into the next page.
func iJMPIndirect(f Facade) {
	ptr := f.ReadPCWord()
	lo := f.ReadByte(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := f.ReadByte(hiAddr)
	f.SetPC(uint16(hi)<<8 | uint16(lo))
}

// iJSR reads the low byte of the target, pushes the address of the
// instruction's high-order operand byte (return_pc - 1, high byte first
// per PushWord), reads the high byte, and jumps. The source this is
// grounded on pushes low-byte first for 16-bit stack values, which is a
// bug for JSR/RTS: RTS pulls low then high (PullWord's contract), so JSR
// must push high then low for the round trip to recover the original
// word -- PushWord already does this correctly.
func iJSR(f Facade) {
	lo := f.ReadPCByte()
	f.AddCycles(1) // internal cycle before the stack pushes
	retAddr := f.GetPC()
	f.PushWord(retAddr)
	hi := f.ReadPCByte()
	f.SetPC(uint16(hi)<<8 | uint16(lo))
}

// iRTS pulls the return address pushed by JSR and resumes at addr+1.
func iRTS(f Facade) {
	f.AddCycles(2) // internal cycles: discard operand byte, stack housekeeping
	addr := f.PullWord()
	f.SetPC(addr + 1)
	f.AddCycles(1) // PC increment cycle
}
