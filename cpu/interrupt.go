package cpu

// iBRK implements the software break: it discards the padding byte after
// the opcode, pushes PC and P (with B and the unused bit forced to 1),
// sets the interrupt-disable flag, and jumps through the IRQ vector.
// Full IRQ/NMI line sequencing is out of scope (spec non-goals); this
// only covers the BRK instruction's own documented effect.
func iBRK(f Facade) {
	f.ReadPCByte() // discard the signature byte
	f.PushWord(f.GetPC())
	f.PushByte(f.GetP() | PBreak | PUnused)
	f.FlagSet(PInterrupt, true)
	f.SetPC(f.ReadWord(IRQVector))
}

// iRTI pulls P (preserving the caller's view of bits 4/5 exactly as PLP
// does) and PC, resuming the interrupted instruction stream.
func iRTI(f Facade) {
	f.AddCycles(1)
	popped := f.PullByte()
	cur := f.GetP()
	f.SetP((popped &^ (PBreak | PUnused)) | (cur & (PBreak | PUnused)))
	f.SetPC(f.PullWord())
}
