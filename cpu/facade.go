package cpu

// Facade is the set of CPU-state operations available to operation
// handlers. *Chip implements it directly; TestExecute can substitute an
// alternate implementation so tests can observe exactly which facade
// calls a handler makes without mutating real CPU/memory state.
type Facade interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, val uint8)
	ReadWord(addr uint16) uint16

	ReadPCByte() uint8
	ReadPCWord() uint16

	RegGet(id uint8) uint8
	RegSet(id uint8, val uint8)

	FlagGet(mask uint8) bool
	FlagSet(mask uint8, val bool)

	PushByte(val uint8)
	PushWord(val uint16)
	PullByte() uint8
	PullWord() uint16

	GetP() uint8
	SetP(val uint8)
	GetPC() uint16
	SetPC(addr uint16)
	GetSP() uint8
	SetSP(val uint8)

	// Branch adds the signed relative offset to PC and charges the
	// branch-taken cycle cost (including the page-cross penalty).
	// Handlers must check the branch condition themselves and only call
	// Branch when the condition holds.
	Branch(offset int8)

	ReadRef(ref Reference) uint8
	WriteRef(ref Reference, val uint8)

	// ADC/SBC apply the accumulator add/subtract semantics (including BCD
	// mode) and update C, Z, N, V. They consume no additional cycles
	// themselves -- the operand fetch already charged for its addressing
	// mode.
	ADC(operand uint8)
	SBC(operand uint8)

	// AddCycles charges n cycles not already accounted for by another
	// facade call (index-calculation cycles, the various "dummy" internal
	// cycles real 6502 hardware spends on stack/PC housekeeping).
	AddCycles(n int)
}

// ReadByte reads mem[addr], charging 1 cycle.
func (c *Chip) ReadByte(addr uint16) uint8 {
	c.cycles++
	return c.mem.Read(addr)
}

// WriteByte writes val to mem[addr], charging 1 cycle.
func (c *Chip) WriteByte(addr uint16, val uint8) {
	c.cycles++
	c.mem.Write(addr, val)
}

// ReadWord reads a little-endian word at addr, charging 2 cycles.
func (c *Chip) ReadWord(addr uint16) uint16 {
	lo := c.ReadByte(addr)
	hi := c.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// ReadPCByte reads the byte at PC, advances PC, and charges 1 cycle.
func (c *Chip) ReadPCByte() uint8 {
	v := c.ReadByte(c.PC)
	c.PC++
	return v
}

// ReadPCWord reads the little-endian word at PC, advances PC by 2, and
// charges 2 cycles.
func (c *Chip) ReadPCWord() uint16 {
	lo := c.ReadPCByte()
	hi := c.ReadPCByte()
	return uint16(hi)<<8 | uint16(lo)
}

// RegGet returns the value of register id. Charges no cycles. An invalid
// id is reported and returns the sentinel 0xFF.
func (c *Chip) RegGet(id uint8) uint8 {
	switch id {
	case RegA:
		return c.A
	case RegX:
		return c.X
	case RegY:
		return c.Y
	}
	c.reportf("%s", InvalidRegister{Reg: id}.Error())
	return 0xFF
}

// RegSet writes val to register id. Charges no cycles and does not touch
// flags. An invalid id is reported and makes no state change.
func (c *Chip) RegSet(id uint8, val uint8) {
	switch id {
	case RegA:
		c.A = val
	case RegX:
		c.X = val
	case RegY:
		c.Y = val
	default:
		c.reportf("%s", InvalidRegister{Reg: id}.Error())
	}
}

// FlagGet reports whether the status bit named by mask is set.
func (c *Chip) FlagGet(mask uint8) bool {
	return c.P&mask != 0
}

// FlagSet sets or clears the status bit named by mask.
func (c *Chip) FlagSet(mask uint8, val bool) {
	if val {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// PushByte writes val to the stack page and decrements SP, charging 1
// cycle.
func (c *Chip) PushByte(val uint8) {
	c.cycles++
	c.mem.Write(0x0100|uint16(c.SP), val)
	c.SP--
}

// PushWord pushes val as two bytes, high byte first then low byte, so a
// matching PullWord recovers the original value (low pulled first, then
// high).
func (c *Chip) PushWord(val uint16) {
	c.PushByte(uint8(val >> 8))
	c.PushByte(uint8(val))
}

// PullByte increments SP and reads the stack byte, charging 1 cycle.
func (c *Chip) PullByte() uint8 {
	c.cycles++
	c.SP++
	return c.mem.Read(0x0100 | uint16(c.SP))
}

// PullWord pulls a word pushed by PushWord: low byte first, then high.
func (c *Chip) PullWord() uint16 {
	lo := c.PullByte()
	hi := c.PullByte()
	return uint16(hi)<<8 | uint16(lo)
}

// GetP returns the raw status register.
func (c *Chip) GetP() uint8 { return c.P }

// SetP overwrites the raw status register.
func (c *Chip) SetP(val uint8) { c.P = val }

// GetPC returns the program counter.
func (c *Chip) GetPC() uint16 { return c.PC }

// SetPC overwrites the program counter.
func (c *Chip) SetPC(addr uint16) { c.PC = addr }

// GetSP returns the stack pointer.
func (c *Chip) GetSP() uint8 { return c.SP }

// SetSP overwrites the stack pointer.
func (c *Chip) SetSP(val uint8) { c.SP = val }

// Branch adds offset to PC, charging 1 cycle plus 1 more if the branch
// crosses a page boundary.
func (c *Chip) Branch(offset int8) {
	before := c.PC
	c.PC = uint16(int32(before) + int32(offset))
	c.cycles++
	if before&0xFF00 != c.PC&0xFF00 {
		c.cycles++
	}
}

// ReadRef reads the byte named by ref, dispatching to RegGet or ReadByte.
func (c *Chip) ReadRef(ref Reference) uint8 {
	switch ref.kind {
	case refRegister:
		return c.RegGet(ref.reg)
	case refMemory:
		return c.ReadByte(ref.addr)
	}
	c.reportf("%s", InvalidReference{Kind: ref.kind}.Error())
	return 0xFF
}

// WriteRef writes val to the location named by ref, dispatching to RegSet
// or WriteByte.
func (c *Chip) WriteRef(ref Reference, val uint8) {
	switch ref.kind {
	case refRegister:
		c.RegSet(ref.reg, val)
	case refMemory:
		c.WriteByte(ref.addr, val)
	default:
		c.reportf("%s", InvalidReference{Kind: ref.kind}.Error())
	}
}

// AddCycles charges n cycles not already accounted for by another facade
// call.
func (c *Chip) AddCycles(n int) {
	c.cycles += n
}
