package cpu

// iNOP burns the one internal cycle a no-operation instruction spends
// beyond its opcode fetch.
func iNOP(f Facade) {
	f.AddCycles(1)
}
