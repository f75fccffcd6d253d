package disassemble

import (
	"strings"
	"testing"

	"github.com/corvid6502/sixfiveohtwo/memory"
)

func TestStepImmediate(t *testing.T) {
	mem := memory.New()
	mem.Load(0x0400, []uint8{0xA9, 0x42})
	text, n := Step(0x0400, mem)
	if n != 2 {
		t.Errorf("length: got %d want 2", n)
	}
	if !strings.Contains(text, "LDA") || !strings.Contains(text, "#$42") {
		t.Errorf("text: got %q, want it to mention LDA #$42", text)
	}
}

func TestStepAbsolute(t *testing.T) {
	mem := memory.New()
	mem.Load(0x0400, []uint8{0x4C, 0x34, 0x12})
	text, n := Step(0x0400, mem)
	if n != 3 {
		t.Errorf("length: got %d want 3", n)
	}
	if !strings.Contains(text, "JMP") || !strings.Contains(text, "$1234") {
		t.Errorf("text: got %q, want it to mention JMP $1234", text)
	}
}

func TestStepImplied(t *testing.T) {
	mem := memory.New()
	mem.Load(0x0400, []uint8{0xEA})
	text, n := Step(0x0400, mem)
	if n != 1 {
		t.Errorf("length: got %d want 1", n)
	}
	if !strings.Contains(text, "NOP") {
		t.Errorf("text: got %q, want it to mention NOP", text)
	}
}

func TestStepRelative(t *testing.T) {
	mem := memory.New()
	mem.Load(0x0400, []uint8{0x90, 0x0F})
	text, n := Step(0x0400, mem)
	if n != 2 {
		t.Errorf("length: got %d want 2", n)
	}
	if !strings.Contains(text, "0411") {
		t.Errorf("text: got %q, want it to resolve the branch target to 0411", text)
	}
}
