package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestShiftMemoryCycles checks the fixed cycle counts for ASL across
// every memory addressing mode, including the absolute,X RMW override
// that must total 7 regardless of page crossing.
func TestShiftMemoryCycles(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		want    int
	}{
		{"zero page", []uint8{0x06, 0x10}, 5},
		{"zero page,X", []uint8{0x16, 0x10}, 6},
		{"absolute", []uint8{0x0E, 0x00, 0x02}, 6},
		{"absolute,X no cross", []uint8{0x1E, 0x00, 0x02}, 7},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, _ := newTestChip(t, 0x0400, test.program)
			got := c.Execute(1)
			if got != test.want {
				t.Errorf("cycles: got %d want %d\nstate: %s", got, test.want, spew.Sdump(c))
			}
		})
	}
}

func TestASLAccumulatorCarry(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, []uint8{0x0A})
	c.A = 0x80
	c.Execute(1)
	if c.A != 0x00 {
		t.Errorf("A: got 0x%.2X want 0x00", c.A)
	}
	if !c.FlagGet(PCarry) {
		t.Errorf("C clear, want set")
	}
	if !c.FlagGet(PZero) {
		t.Errorf("Z clear, want set")
	}
}

func TestROLCarryChaining(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, []uint8{0x2A})
	c.A = 0x80
	c.FlagSet(PCarry, true)
	c.Execute(1)
	if c.A != 0x01 {
		t.Errorf("A: got 0x%.2X want 0x01 (carry rotated in)", c.A)
	}
	if !c.FlagGet(PCarry) {
		t.Errorf("C clear, want set (bit 7 rotated out)")
	}
}

func TestRORCarryChaining(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, []uint8{0x6A})
	c.A = 0x01
	c.FlagSet(PCarry, true)
	c.Execute(1)
	if c.A != 0x80 {
		t.Errorf("A: got 0x%.2X want 0x80", c.A)
	}
	if !c.FlagGet(PCarry) {
		t.Errorf("C clear, want set (bit 0 rotated out)")
	}
}

func TestLSR(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, []uint8{0x4A})
	c.A = 0x03
	c.Execute(1)
	if c.A != 0x01 {
		t.Errorf("A: got 0x%.2X want 0x01", c.A)
	}
	if !c.FlagGet(PCarry) {
		t.Errorf("C clear, want set")
	}
	if c.FlagGet(PNegative) {
		t.Errorf("N set, want clear: LSR always clears bit 7")
	}
}

func TestIncDecMemWraps(t *testing.T) {
	c, mem := newTestChip(t, 0x0400, []uint8{0xE6, 0x10})
	mem.Write(0x0010, 0xFF)
	c.Execute(1)
	if got := mem.Read(0x0010); got != 0x00 {
		t.Errorf("mem[0x10]: got 0x%.2X want 0x00 (wrapped)", got)
	}
	if !c.FlagGet(PZero) {
		t.Errorf("Z clear, want set")
	}
}

func TestIncDecRegCycles(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, []uint8{0xE8}) // INX
	c.X = 0x7F
	got := c.Execute(1)
	if c.X != 0x80 {
		t.Errorf("X: got 0x%.2X want 0x80", c.X)
	}
	if !c.FlagGet(PNegative) {
		t.Errorf("N clear, want set")
	}
	if got != 2 {
		t.Errorf("cycles: got %d want 2", got)
	}
}
