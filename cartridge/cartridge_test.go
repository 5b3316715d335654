package cartridge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeROM(t *testing.T, prgUnits, chrUnits int, flags6 byte, trainer bool, fill byte) string {
	t.Helper()

	h := []byte{0x4E, 0x45, 0x53, 0x1A, byte(prgUnits), byte(chrUnits), flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	var buf []byte
	buf = append(buf, h...)
	if trainer {
		buf = append(buf, make([]byte, trainerSize)...)
	}

	prg := make([]byte, prgUnits*prgUnit)
	for i := range prg {
		prg[i] = fill
	}
	buf = append(buf, prg...)

	chr := make([]byte, chrUnits*chrUnit)
	for i := range chr {
		chr[i] = fill + 1
	}
	buf = append(buf, chr...)

	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatalf("couldn't write test ROM: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	path := writeROM(t, 1, 1, 0, false, 0xAB)

	c, err := New(path)
	if err != nil {
		t.Fatalf("New() returned err %v", err)
	}

	if got := c.PrgRead(0x8000); got != 0xAB {
		t.Errorf("PrgRead(0x8000) = 0x%02x, wanted 0xAB", got)
	}
	if got := c.ChrRead(0); got != 0xAC {
		t.Errorf("ChrRead(0) = 0x%02x, wanted 0xAC", got)
	}
}

func TestNewWithTrainer(t *testing.T) {
	path := writeROM(t, 1, 1, FlagTrainer, true, 0x11)

	c, err := New(path)
	if err != nil {
		t.Fatalf("New() returned err %v", err)
	}

	if got := c.PrgRead(0x8000); got != 0x11 {
		t.Errorf("PrgRead(0x8000) = 0x%02x, wanted 0x11 (trainer should have been skipped)", got)
	}
}

func TestNewInvalidHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nes")
	if err := os.WriteFile(path, []byte("not a rom"), 0644); err != nil {
		t.Fatalf("couldn't write test file: %v", err)
	}

	if _, err := New(path); err == nil {
		t.Errorf("New() on a non-ROM file should have failed")
	}
}

func TestNewEmpty(t *testing.T) {
	c := NewEmpty()

	if got := c.PrgRead(0x8000); got != 0 {
		t.Errorf("PrgRead(0x8000) on an empty cartridge = 0x%02x, wanted 0", got)
	}

	c.PrgWrite(0x8000, 0x42)
	if got := c.PrgRead(0x8000); got != 0x42 {
		t.Errorf("PrgRead(0x8000) after write = 0x%02x, wanted 0x42", got)
	}
}

// A 16 KiB PRG bank mirrors twice across $8000-$FFFF.
func TestBankMirroring16KiB(t *testing.T) {
	path := writeROM(t, 1, 1, 0, false, 0x00)
	c, err := New(path)
	if err != nil {
		t.Fatalf("New() returned err %v", err)
	}

	c.PrgWrite(0x8123, 0x7E)
	if got := c.PrgRead(0xC123); got != 0x7E {
		t.Errorf("PrgRead(0xC123) = 0x%02x, wanted 0x7E (should mirror 0x8123)", got)
	}
}

func TestBank32KiBNoMirroring(t *testing.T) {
	path := writeROM(t, 2, 1, 0, false, 0x00)
	c, err := New(path)
	if err != nil {
		t.Fatalf("New() returned err %v", err)
	}

	c.PrgWrite(0x8123, 0x7E)
	if got := c.PrgRead(0xC123); got == 0x7E {
		t.Errorf("PrgRead(0xC123) should not mirror 0x8123 for a 32KiB bank")
	}
}
