// Package bus implements the NES CPU address-space dispatcher: 2 KiB of
// CPU RAM, memory-mapped PPU/APU/IO stub windows, and the cartridge.
// https://www.nesdev.org/wiki/CPU_memory_map
package bus

import "github.com/bdwalton/gones6502/cartridge"

const (
	ramSize = 0x0800 // 2KiB of internal CPU RAM

	maxRAMMirrored = 0x1FFF // $0000-$1FFF: RAM, mirrored 4x
	maxPPUMirrored = 0x3FFF // $2000-$3FFF: PPU registers (stub), mirrored
	maxAPUIO       = 0x4017 // $4000-$4017: APU/IO registers (stub)
	maxIOReserved  = 0x401F // $4018-$401F: reserved (stub)
)

// Cartridge is the subset of *cartridge.Cartridge the bus needs to
// dispatch reads/writes in $4020-$FFFF.
type Cartridge interface {
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
}

// Bus owns the CPU's internal RAM and routes every 16-bit address to
// RAM, a peripheral stub, or the cartridge. No bus operation can fail:
// every address is defined, and unimplemented windows read as $00 and
// discard writes.
type Bus struct {
	ram  [ramSize]uint8
	cart Cartridge
}

// New returns a Bus backed by cart. cart may be nil only if the caller
// never issues a read/write in $4020-$FFFF (tests that stay within RAM).
func New(cart Cartridge) *Bus {
	return &Bus{cart: cart}
}

var _ Cartridge = (*cartridge.Cartridge)(nil)

// Read returns the byte at addr.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= maxRAMMirrored:
		return b.ram[addr&(ramSize-1)]
	case addr <= maxPPUMirrored:
		return 0 // PPU registers: not implemented
	case addr <= maxAPUIO:
		return 0 // APU/IO registers: not implemented
	case addr <= maxIOReserved:
		return 0 // reserved: not implemented
	default:
		return b.cart.PrgRead(addr)
	}
}

// Write stores val at addr. Writes into $4020-$FFFF reach the
// cartridge, which lets test harnesses pre-populate PRG through the bus.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= maxRAMMirrored:
		b.ram[addr&(ramSize-1)] = val
	case addr <= maxPPUMirrored:
		// discarded: PPU registers not implemented
	case addr <= maxAPUIO:
		// discarded: APU/IO registers not implemented
	case addr <= maxIOReserved:
		// discarded: reserved window
	default:
		b.cart.PrgWrite(addr, val)
	}
}

// Read16 returns the two bytes at addr and addr+1, little-endian.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return (hi << 8) | lo
}
