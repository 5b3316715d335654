package bus

import (
	"testing"

	"github.com/bdwalton/gones6502/cartridge"
)

func TestRAMMirroring(t *testing.T) {
	b := New(cartridge.NewEmpty())

	for i := 0; i < 10; i++ {
		b.Write(uint16(i), uint8(i+1))
	}

	for _, base := range []uint16{0, 0x0800, 0x1000, 0x1800} {
		for i := 0; i < 10; i++ {
			if got := b.Read(base + uint16(i)); got != uint8(i+1) {
				t.Errorf("Read(0x%04x) = 0x%02x, wanted 0x%02x", base+uint16(i), got, i+1)
			}
		}
	}
}

func TestStubWindowsReadZeroDiscardWrites(t *testing.T) {
	b := New(cartridge.NewEmpty())

	for _, addr := range []uint16{0x2000, 0x2007, 0x3FFF, 0x4000, 0x4017, 0x4018, 0x401F} {
		b.Write(addr, 0xFF)
		if got := b.Read(addr); got != 0 {
			t.Errorf("Read(0x%04x) = 0x%02x after write, wanted 0 (stub window)", addr, got)
		}
	}
}

func TestCartridgeWindow(t *testing.T) {
	b := New(cartridge.NewEmpty())

	b.Write(0x8000, 0x42)
	if got := b.Read(0x8000); got != 0x42 {
		t.Errorf("Read(0x8000) = 0x%02x, wanted 0x42", got)
	}
}

func TestRead16(t *testing.T) {
	b := New(cartridge.NewEmpty())

	b.Write(0x00, 0xCD)
	b.Write(0x01, 0xAB)
	if got := b.Read16(0x00); got != 0xABCD {
		t.Errorf("Read16(0x00) = 0x%04x, wanted 0xABCD", got)
	}
}
