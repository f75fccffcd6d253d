// loadrom loads a raw 6502 program image into a fresh Chip, runs it for
// a fixed instruction budget, and prints final register state. It
// supports the two load modes described in the system package: a
// functional-test image loaded at 0x0000, or a "tmpx" image carrying its
// own two-byte little-endian load address.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/corvid6502/sixfiveohtwo/cpu"
	"github.com/corvid6502/sixfiveohtwo/disassemble"
	"github.com/corvid6502/sixfiveohtwo/memory"
	"github.com/corvid6502/sixfiveohtwo/system"
)

var (
	mode   = flag.String("mode", "tmpx", "Load mode: \"functest\" or \"tmpx\"")
	start  = flag.Int("start", 0, "Start PC override for functest mode")
	steps  = flag.Int("steps", 1000, "Number of instructions to execute")
	disasm = flag.Bool("disasm", false, "Print a disassembly trace of each instruction before executing it")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [flags] <image>", os.Args[0])
	}
	fn := flag.Args()[0]

	f, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %q: %v", fn, err)
	}
	defer f.Close()

	mem := memory.New()

	var startPC uint16
	switch *mode {
	case "functest":
		if _, err := system.LoadFunctionalTest(mem, f); err != nil {
			log.Fatalf("Can't load %q: %v", fn, err)
		}
		startPC = uint16(*start)
	case "tmpx":
		addr, err := system.LoadTMPx(mem, f)
		if err != nil {
			log.Fatalf("Can't load %q: %v", fn, err)
		}
		startPC = addr
	default:
		log.Fatalf("Invalid -mode %q, must be \"functest\" or \"tmpx\"", *mode)
	}

	system.PatchResetVector(mem, startPC)

	c := cpu.NewChip(mem)
	c.Reset()
	// Start at the patched JSR so the first instruction calls startPC.
	c.PC = cpu.ResetVector

	total := 0
	for i := 0; i < *steps; i++ {
		if *disasm {
			text, _ := disassemble.Step(c.PC, mem)
			fmt.Println(text)
		}
		total += c.Execute(1)
	}

	fmt.Printf("Ran %d instructions (%d cycles)\n", *steps, total)
	fmt.Printf("A=%.2X X=%.2X Y=%.2X SP=%.2X PC=%.4X P=%.2X\n",
		c.A, c.X, c.Y, c.SP, c.PC, c.P)
}
