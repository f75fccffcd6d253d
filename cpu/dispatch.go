package cpu

// Execute fetches, decodes, and runs n instructions against the Chip's
// own state, returning the total cycles consumed.
func (c *Chip) Execute(n int) int {
	return c.TestExecute(n, c)
}

// TestExecute behaves exactly like Execute except the handler invocation
// receives alt as the CPU facade instead of c. This lets tests verify
// that a handler calls the expected facade operations without mutating
// real CPU/memory state -- when alt != c, the opcode fetch (and its
// cycle) still happens against the real Chip, but everything the handler
// itself does happens against alt.
func (c *Chip) TestExecute(n int, alt Facade) int {
	total := 0
	for i := 0; i < n; i++ {
		op := c.mem.Read(c.PC)
		c.PC++
		c.cycles++
		total++

		def := c.table[op]
		if !def.Legal {
			c.reportf("%s", IllegalOpcode{Opcode: op}.Error())
		}

		before := c.cycles
		def.Run(alt)
		total += c.cycles - before
	}
	return total
}
