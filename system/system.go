// Package system implements the loader/CLI collaborator described in
// spec.md §6: reading a raw program binary into memory and patching the
// reset vector so a CPU reset jumps straight into it. This is
// intentionally trivial and has no dependency on the cpu package's
// instruction semantics.
package system

import (
	"fmt"
	"io"

	"github.com/corvid6502/sixfiveohtwo/memory"
)

// Opcodes used to build the reset-vector trampoline. These are the raw
// byte values, not cpu package constants, since this package must stay
// free of any cpu-internal dependency.
const (
	opJSR = 0x20
	opNOP = 0xEA
)

// LoadFunctionalTest loads program starting at address 0x0000, the
// layout used by the Klaus Dormann-style 6502 functional test suite
// ("functional-test" mode in spec.md §6). It returns the load address
// (always 0) for symmetry with LoadTMPx.
func LoadFunctionalTest(mem *memory.Memory, r io.Reader) (uint16, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading functional-test image: %w", err)
	}
	mem.Load(0x0000, data)
	return 0, nil
}

// LoadTMPx loads a program whose first two bytes are a little-endian
// load address ("tmpx" mode in spec.md §6), returning that address.
func LoadTMPx(mem *memory.Memory, r io.Reader) (uint16, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading tmpx image: %w", err)
	}
	if len(data) < 2 {
		return 0, fmt.Errorf("tmpx image too short: need a 2 byte load address, got %d bytes", len(data))
	}
	addr := uint16(data[0]) | uint16(data[1])<<8
	mem.Load(addr, data[2:])
	return addr, nil
}

// PatchResetVector writes [JSR, startLo, startHi, NOP] at 0xFFFC..0xFFFF:
// a JSR startPC instruction followed by a NOP, so execution that begins
// at 0xFFFC calls into the loaded program. A CPU Reset reads its PC from
// 0xFFFC/0xFFFD, which now hold the JSR opcode and startLo, so Reset on
// its own sets PC to neither 0xFFFC nor startPC.
func PatchResetVector(mem *memory.Memory, startPC uint16) {
	mem.Write(0xFFFC, opJSR)
	mem.Write(0xFFFD, uint8(startPC))
	mem.Write(0xFFFE, uint8(startPC>>8))
	mem.Write(0xFFFF, opNOP)
}
