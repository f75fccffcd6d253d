package cpu

import (
	"fmt"
	"io"
	"os"

	"github.com/corvid6502/sixfiveohtwo/memory"
)

// Chip is the register file and working state of an NMOS 6502. The zero
// value is not usable directly; construct one with NewChip. CPU state is
// undefined until Reset is called.
type Chip struct {
	A, X, Y uint8
	PC      uint16
	SP      uint8
	P       uint8

	mem    *memory.Memory
	errs   io.Writer
	cycles int // running tally of cycles charged by facade calls on this Chip
	table  [256]opcodeDef
}

// Option configures a Chip at construction time.
type Option func(*Chip)

// WithErrorSink overrides where non-fatal diagnostics (illegal opcodes,
// invalid register/reference ids) are reported. Defaults to os.Stderr.
func WithErrorSink(w io.Writer) Option {
	return func(c *Chip) { c.errs = w }
}

// NewChip constructs a Chip bound to mem. Call Reset before executing.
func NewChip(mem *memory.Memory, opts ...Option) *Chip {
	c := &Chip{mem: mem, errs: os.Stderr, table: buildOpcodeTable()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset sets PC from the reset vector, SP to 0xFF, zeroes A/X/Y, clears D
// and I, and zeroes the remaining flags. Memory is unaffected by a CPU
// Reset -- callers that also want memory zeroed should call mem.Reset()
// themselves.
func (c *Chip) Reset() {
	lo := c.mem.Read(ResetVector)
	hi := c.mem.Read(ResetVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.SP = 0xFF
	c.A, c.X, c.Y = 0, 0, 0
	c.P = 0
}

// reportf writes a non-fatal diagnostic to the configured error sink.
func (c *Chip) reportf(format string, args ...interface{}) {
	fmt.Fprintf(c.errs, format+"\n", args...)
}
