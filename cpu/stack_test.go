package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestPushPullByteRoundTrip(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, nil)
	sp := c.SP
	c.PushByte(0x42)
	if c.SP != sp-1 {
		t.Errorf("SP after push: got 0x%.2X want 0x%.2X", c.SP, sp-1)
	}
	got := c.PullByte()
	if got != 0x42 {
		t.Errorf("pulled: got 0x%.2X want 0x42", got)
	}
	if c.SP != sp {
		t.Errorf("SP after round trip: got 0x%.2X want 0x%.2X", c.SP, sp)
	}
}

func TestPushPullWordRoundTrip(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, nil)
	sp := c.SP
	c.PushWord(0xBEEF)
	got := c.PullWord()
	if got != 0xBEEF {
		t.Errorf("pulled: got 0x%.4X want 0xBEEF", got)
	}
	if c.SP != sp {
		t.Errorf("SP after round trip: got 0x%.2X want 0x%.2X", c.SP, sp)
	}
}

func TestPHPSetsBreakAndUnused(t *testing.T) {
	c, mem := newTestChip(t, 0x0400, []uint8{0x08})
	c.P = 0x00
	c.Execute(1)
	pushed := mem.Read(0x0100 | uint16(c.SP+1))
	if pushed&(PBreak|PUnused) != (PBreak | PUnused) {
		t.Errorf("pushed P: got 0x%.2X, want bits 4 and 5 set", pushed)
	}
}

func TestPLPPreservesBreakAndUnused(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, []uint8{0x28}) // PLP
	c.P = PBreak | PUnused | PCarry
	c.PushByte(0x00) // pull will read this, bits 4/5 clear in the popped byte
	c.Execute(1)
	if c.P&(PBreak|PUnused) != (PBreak | PUnused) {
		t.Errorf("P after PLP: got 0x%.2X, want bits 4/5 preserved\nstate: %s", c.P, spew.Sdump(c))
	}
	if c.FlagGet(PCarry) {
		t.Errorf("C set, want clear: popped byte should have overwritten it")
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, []uint8{0x48, 0xA9, 0x00, 0x68}) // PHA, LDA #0, PLA
	c.A = 0x99
	c.Execute(3)
	if c.A != 0x99 {
		t.Errorf("A after PHA/LDA/PLA: got 0x%.2X want 0x99", c.A)
	}
}

func TestSPStaysInRangeAfterWrap(t *testing.T) {
	c, _ := newTestChip(t, 0x0400, nil)
	c.SP = 0xFF
	c.PullByte() // wraps SP to 0x00
	if c.SP != 0x00 {
		t.Errorf("SP: got 0x%.2X want 0x00 (wrapped)", c.SP)
	}
	c.SP = 0x00
	c.PushByte(0x01) // wraps SP to 0xFF
	if c.SP != 0xFF {
		t.Errorf("SP: got 0x%.2X want 0xFF (wrapped)", c.SP)
	}
}
