package cartridge

import (
	"fmt"
	"os"
)

// Cartridge holds the PRG-ROM and CHR-ROM banks decoded from an iNES
// file and implements the linear (no bank-switching) PRG mapping: CPU
// addresses in $4020-$FFFF are masked into the PRG bank, mirroring a
// 16 KiB bank twice across $8000-$FFFF.
type Cartridge struct {
	Header *Header
	prg    []byte
	chr    []byte
}

// New parses path as an iNES-family ROM image and splits it into PRG
// and CHR banks. The trainer, if present, is skipped.
func New(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read ROM file %q: %w", path, err)
	}

	if len(data) < headerSize {
		return nil, fmt.Errorf("file %q is only %d bytes: %w", path, len(data), ErrInvalidHeader)
	}

	h, err := parseHeader(data[:headerSize])
	if err != nil {
		return nil, fmt.Errorf("couldn't parse header of %q: %w", path, err)
	}

	if h.Mapper != 0 {
		return nil, fmt.Errorf("%q uses mapper %d, only mapper 0 (linear PRG mapping) is supported: %w", path, h.Mapper, ErrUnsupportedRom)
	}

	off := headerSize
	if h.Trainer {
		off += trainerSize
	}

	if len(data) < off+h.PrgSize+h.ChrSize {
		return nil, fmt.Errorf("file %q is truncated (have %d bytes, need %d): %w",
			path, len(data), off+h.PrgSize+h.ChrSize, ErrInvalidHeader)
	}

	c := &Cartridge{
		Header: h,
		prg:    make([]byte, h.PrgSize),
		chr:    make([]byte, h.ChrSize),
	}
	copy(c.prg, data[off:off+h.PrgSize])
	copy(c.chr, data[off+h.PrgSize:off+h.PrgSize+h.ChrSize])

	return c, nil
}

// NewEmpty returns a Cartridge with 16 KiB PRG and CHR banks, both
// filled with zeroes and no backing file. Intended for tests that
// build up a program directly through bus writes.
func NewEmpty() *Cartridge {
	return &Cartridge{
		Header: &Header{Version: VersionINES1, PrgSize: prgUnit, ChrSize: prgUnit},
		prg:    make([]byte, prgUnit),
		chr:    make([]byte, prgUnit),
	}
}

// bankOffset computes the effective PRG offset for CPU address addr
// (expected to be in $4020-$FFFF), mirroring a power-of-two-sized bank
// across the whole cartridge window.
func (c *Cartridge) bankOffset(addr uint16) int {
	n := len(c.prg)
	if n == 0 {
		return 0
	}
	return int(addr) & (n - 1)
}

// PrgRead returns the PRG-ROM byte at CPU address addr.
func (c *Cartridge) PrgRead(addr uint16) uint8 {
	if len(c.prg) == 0 {
		return 0
	}
	return c.prg[c.bankOffset(addr)]
}

// PrgWrite stores val at the PRG offset CPU address addr maps to.
// Logically PRG is load-time data; this exists to let test harnesses
// pre-populate programs through the bus.
func (c *Cartridge) PrgWrite(addr uint16, val uint8) {
	if len(c.prg) == 0 {
		return
	}
	c.prg[c.bankOffset(addr)] = val
}

// ChrRead returns the CHR-ROM byte at pattern-table address addr.
func (c *Cartridge) ChrRead(addr uint16) uint8 {
	if len(c.chr) == 0 {
		return 0
	}
	return c.chr[int(addr)%len(c.chr)]
}

// ChrWrite stores val into the CHR bank. The write always lands: the
// cartridge does not distinguish CHR-ROM boards from CHR-RAM boards.
func (c *Cartridge) ChrWrite(addr uint16, val uint8) {
	if len(c.chr) == 0 {
		return
	}
	c.chr[int(addr)%len(c.chr)] = val
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%s prg=%dB chr=%dB", c.Header, len(c.prg), len(c.chr))
}
