package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestADCBinary(t *testing.T) {
	tests := []struct {
		name       string
		a, operand uint8
		carryIn    bool
		wantA      uint8
		wantC, wantV, wantZ, wantN bool
	}{
		{"no overflow", 0x10, 0x20, false, 0x30, false, false, false, false},
		{"unsigned carry", 0xFF, 0x01, false, 0x00, true, false, true, false},
		{"signed overflow positive", 0x7F, 0x01, false, 0x80, false, true, false, true},
		{"signed overflow negative", 0x80, 0x80, false, 0x00, true, true, true, false},
		{"carry in", 0x01, 0x01, true, 0x03, false, false, false, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, _ := newTestChip(t, 0x0400, nil)
			c.A = test.a
			c.FlagSet(PCarry, test.carryIn)
			c.ADC(test.operand)
			if c.A != test.wantA {
				t.Errorf("A: got 0x%.2X want 0x%.2X\nstate: %s", c.A, test.wantA, spew.Sdump(c))
			}
			if c.FlagGet(PCarry) != test.wantC {
				t.Errorf("C: got %t want %t", c.FlagGet(PCarry), test.wantC)
			}
			if c.FlagGet(POverflow) != test.wantV {
				t.Errorf("V: got %t want %t", c.FlagGet(POverflow), test.wantV)
			}
			if c.FlagGet(PZero) != test.wantZ {
				t.Errorf("Z: got %t want %t", c.FlagGet(PZero), test.wantZ)
			}
			if c.FlagGet(PNegative) != test.wantN {
				t.Errorf("N: got %t want %t", c.FlagGet(PNegative), test.wantN)
			}
		})
	}
}

func TestSBCBinaryIsInvertedADC(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, nil)
	c.A = 0x50
	c.FlagSet(PCarry, true) // no borrow
	c.SBC(0x20)
	if c.A != 0x30 {
		t.Errorf("A: got 0x%.2X want 0x30\nstate: %s", c.A, spew.Sdump(c))
	}
	if !c.FlagGet(PCarry) {
		t.Errorf("C clear, want set (no borrow)")
	}
}

func TestSBCBinaryBorrow(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, nil)
	c.A = 0x10
	c.FlagSet(PCarry, true)
	c.SBC(0x20)
	if c.A != 0xF0 {
		t.Errorf("A: got 0x%.2X want 0xF0", c.A)
	}
	if c.FlagGet(PCarry) {
		t.Errorf("C set, want clear (borrow occurred)")
	}
}

func TestSBCDecimal(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, nil)
	c.FlagSet(PDecimal, true)
	c.FlagSet(PCarry, true) // no borrow
	c.A = 0x45
	c.SBC(0x12)
	if c.A != 0x33 {
		t.Errorf("A: got 0x%.2X want 0x33 (BCD 45-12)\nstate: %s", c.A, spew.Sdump(c))
	}
	if !c.FlagGet(PCarry) {
		t.Errorf("C clear, want set")
	}
}

func TestADCDoesNotTouchXY(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, nil)
	c.X, c.Y = 0x11, 0x22
	c.ADC(0x01)
	if c.X != 0x11 || c.Y != 0x22 {
		t.Errorf("X/Y mutated by ADC: X=0x%.2X Y=0x%.2X", c.X, c.Y)
	}
}
