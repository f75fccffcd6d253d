package cpu

import "fmt"

// IllegalOpcode indicates the dispatcher encountered an opcode with no
// legal handler. It is non-fatal: the instruction still executes as a
// 1-cycle fetch with no further effect.
type IllegalOpcode struct {
	Opcode uint8
}

// Error implements the error interface.
func (e IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode 0x%.2X", e.Opcode)
}

// InvalidRegister indicates a handler passed an out-of-range register id
// to RegGet/RegSet. This always indicates an implementation bug, not a
// property of the emulated program.
type InvalidRegister struct {
	Reg uint8
}

// Error implements the error interface.
func (e InvalidRegister) Error() string {
	return fmt.Sprintf("invalid register id %d", e.Reg)
}

// InvalidReference indicates a Reference carried a kind ReadRef/WriteRef
// don't recognize. Like InvalidRegister, this is an implementation bug.
type InvalidReference struct {
	Kind refKind
}

// Error implements the error interface.
func (e InvalidReference) Error() string {
	return fmt.Sprintf("invalid reference kind %d", e.Kind)
}
