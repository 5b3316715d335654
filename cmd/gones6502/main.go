// Command gones6502 loads an iNES ROM image and runs its 6502 program
// to completion, with no PPU/APU/controller I/O attached.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/bdwalton/gones6502/bus"
	"github.com/bdwalton/gones6502/cartridge"
	"github.com/bdwalton/gones6502/cpu"
)

var (
	romFile = flag.String("nes_rom", "", "Path to iNES ROM to run.")
	resetPC = flag.Uint("reset-pc", 0, "Override the reset vector with this address instead of reading $FFFC/$FFFD.")
	trace   = flag.Bool("trace", false, "Log each instruction's mnemonic and pre-execution register state to stderr before executing it.")
)

func main() {
	flag.Parse()

	cart, err := cartridge.New(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	b := bus.New(cart)
	c := cpu.New(b)
	c.Reset()

	if *resetPC != 0 {
		c.SetPC(uint16(*resetPC))
	}

	for {
		if *trace {
			opcode := b.Read(c.PC())
			name, _ := cpu.OpcodeName(opcode)
			log.Printf("opcode=%02x(%s) %s", opcode, name, c)
		}

		err := c.Step()
		if err == nil {
			continue
		}
		if errors.Is(err, cpu.ErrHaltOnBreak) {
			os.Exit(0)
		}
		log.Printf("halted: %v", err)
		os.Exit(1)
	}
}
