package cpu

// iPHA pushes A.
func iPHA(f Facade) {
	f.AddCycles(1)
	f.PushByte(f.RegGet(RegA))
}

// iPHP pushes P with bits 4 (B) and 5 (unused) forced to 1.
func iPHP(f Facade) {
	f.AddCycles(1)
	f.PushByte(f.GetP() | PBreak | PUnused)
}

// iPLA pulls into A, setting N and Z from the popped value.
func iPLA(f Facade) {
	f.AddCycles(2)
	val := f.PullByte()
	f.RegSet(RegA, val)
	setNZ(f, val)
}

// iPLP pulls into P, but bits 4 and 5 of the pre-pull P are preserved --
// the popped value's bits 4 and 5 are discarded.
func iPLP(f Facade) {
	f.AddCycles(2)
	popped := f.PullByte()
	cur := f.GetP()
	f.SetP((popped &^ (PBreak | PUnused)) | (cur & (PBreak | PUnused)))
}
