// Package asm is a hand-assembler test helper: it turns literal hex-token
// lines of the form "OP A1 A2 ..." into a byte stream, so cpu tests can
// write short test programs without hand-encoding opcode slices inline.
// It has no opcode table of its own and does no assembly in the
// mnemonic sense -- it is purely a hex-token reader.
package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// Bytes parses lines of whitespace-separated two-digit hex tokens and
// concatenates them into a single byte slice, in order. Blank lines and
// lines consisting only of whitespace are skipped.
func Bytes(lines []string) ([]byte, error) {
	var out []byte
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseUint(tok, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid hex token %q: %w", i+1, tok, err)
			}
			out = append(out, byte(v))
		}
	}
	return out, nil
}
