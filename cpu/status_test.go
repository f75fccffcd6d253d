package cpu

import "testing"

func TestStatusFlagOpcodes(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		mask   uint8
		want   bool
	}{
		{"CLC", 0x18, PCarry, false},
		{"SEC", 0x38, PCarry, true},
		{"CLD", 0xD8, PDecimal, false},
		{"SED", 0xF8, PDecimal, true},
		{"CLI", 0x58, PInterrupt, false},
		{"SEI", 0x78, PInterrupt, true},
		{"CLV", 0xB8, POverflow, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, _ := newTestChip(t, 0x0400, []uint8{test.opcode})
			c.P = 0xFF &^ test.mask
			if test.want {
				c.P = 0
			} else {
				c.P = 0xFF
			}
			got := c.Execute(1)
			if c.FlagGet(test.mask) != test.want {
				t.Errorf("%s: flag got %t want %t", test.name, c.FlagGet(test.mask), test.want)
			}
			if got != 2 {
				t.Errorf("%s: cycles got %d want 2", test.name, got)
			}
		})
	}
}

func TestNOPBurnsOneCycleBeyondFetch(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, []uint8{0xEA})
	got := c.Execute(1)
	if got != 2 {
		t.Errorf("cycles: got %d want 2", got)
	}
	if c.PC != 0x0401 {
		t.Errorf("PC: got 0x%.4X want 0x0401", c.PC)
	}
}

func TestBRKAndRTI(t *testing.T) {
	c, mem := newTestChip(t, 0x0400, []uint8{0x00, 0x00}) // BRK, padding

	// Point the IRQ vector at a handler that immediately RTIs.
	handlerAddr := uint16(0x0900)
	mem.Write(IRQVector, uint8(handlerAddr))
	mem.Write(IRQVector+1, uint8(handlerAddr>>8))
	mem.Write(handlerAddr, 0x40) // RTI

	c.Execute(1) // BRK
	if c.PC != handlerAddr {
		t.Errorf("PC after BRK: got 0x%.4X want 0x%.4X", c.PC, handlerAddr)
	}
	if !c.FlagGet(PInterrupt) {
		t.Errorf("I clear after BRK, want set")
	}

	c.Execute(1) // RTI
	if c.PC != 0x0402 {
		t.Errorf("PC after RTI: got 0x%.4X want 0x0402", c.PC)
	}
}
