package cpu

// iBranch reads the signed relative offset (always 1 cycle) and, only
// if cond holds, applies it via Branch (which charges the taken/
// page-cross cycles). The source this module is grounded on left its
// branch handler empty and always applied the offset; the condition
// check belongs here, at the handler level, not in Branch itself.
func iBranch(f Facade, cond bool) {
	offset := int8(f.ReadPCByte())
	if cond {
		f.Branch(offset)
	}
}

func iBCC(f Facade) { iBranch(f, !f.FlagGet(PCarry)) }
func iBCS(f Facade) { iBranch(f, f.FlagGet(PCarry)) }
func iBNE(f Facade) { iBranch(f, !f.FlagGet(PZero)) }
func iBEQ(f Facade) { iBranch(f, f.FlagGet(PZero)) }
func iBPL(f Facade) { iBranch(f, !f.FlagGet(PNegative)) }
func iBMI(f Facade) { iBranch(f, f.FlagGet(PNegative)) }
func iBVC(f Facade) { iBranch(f, !f.FlagGet(POverflow)) }
func iBVS(f Facade) { iBranch(f, f.FlagGet(POverflow)) }
