package cpu

// OperandKind discriminates the two shapes a decoded operand can take:
// a memory address the operation reads/writes through the bus, or an
// immediate/implied value already in hand.
type OperandKind uint8

const (
	KindAddress OperandKind = iota
	KindValue
)

// DecodedOperand is what an addressing-mode fetcher hands to an
// operation. Address is meaningful for KindAddress (including the
// branch target for Relative); Value is meaningful for KindValue.
type DecodedOperand struct {
	Kind    OperandKind
	Address uint16
	Value   uint8
}

// Byte resolves the operand to its 8-bit value, reading through bus if
// the operand is an address.
func (o DecodedOperand) Byte(bus Bus) uint8 {
	if o.Kind == KindAddress {
		return bus.Read(o.Address)
	}
	return o.Value
}

func addrOperand(addr uint16) DecodedOperand {
	return DecodedOperand{Kind: KindAddress, Address: addr}
}

func valueOperand(v uint8) DecodedOperand {
	return DecodedOperand{Kind: KindValue, Value: v}
}

// readZP16 reads a little-endian 16-bit value from two zero-page bytes
// at ptr and ptr+1, wrapping ptr+1 within page zero (the 6502's
// indirect zero-page addressing modes never carry into page one).
func readZP16(bus Bus, ptr uint8) uint16 {
	lo := uint16(bus.Read(uint16(ptr)))
	hi := uint16(bus.Read(uint16(ptr + 1)))
	return (hi << 8) | lo
}

// Each fetcher is called with c.pc pointing at the first byte after the
// opcode. It reads whatever operand bytes its mode consumes, advances
// c.pc past them, and returns the decoded operand.

func fetchImplied(c *CPU) DecodedOperand {
	return valueOperand(0)
}

func fetchAccumulator(c *CPU) DecodedOperand {
	return valueOperand(c.a)
}

func fetchImmediate(c *CPU) DecodedOperand {
	v := c.bus.Read(c.pc)
	c.pc++
	return valueOperand(v)
}

func fetchZeroPage(c *CPU) DecodedOperand {
	addr := uint16(c.bus.Read(c.pc))
	c.pc++
	return addrOperand(addr)
}

func fetchZeroPageX(c *CPU) DecodedOperand {
	addr := uint16(c.bus.Read(c.pc) + c.x)
	c.pc++
	return addrOperand(addr)
}

func fetchZeroPageY(c *CPU) DecodedOperand {
	addr := uint16(c.bus.Read(c.pc) + c.y)
	c.pc++
	return addrOperand(addr)
}

func fetchAbsolute(c *CPU) DecodedOperand {
	addr := c.read16(c.pc)
	c.pc += 2
	return addrOperand(addr)
}

func fetchAbsoluteX(c *CPU) DecodedOperand {
	base := c.read16(c.pc)
	c.pc += 2
	return addrOperand(base + uint16(c.x))
}

func fetchAbsoluteY(c *CPU) DecodedOperand {
	base := c.read16(c.pc)
	c.pc += 2
	return addrOperand(base + uint16(c.y))
}

// fetchIndirect is JMP's own addressing mode: the operand bytes name a
// pointer, and the address jumped to is read from that pointer.
func fetchIndirect(c *CPU) DecodedOperand {
	ptr := c.read16(c.pc)
	c.pc += 2
	return addrOperand(c.read16(ptr))
}

func fetchIndirectX(c *CPU) DecodedOperand {
	zp := c.bus.Read(c.pc) + c.x
	c.pc++
	return addrOperand(readZP16(c.bus, zp))
}

func fetchIndirectY(c *CPU) DecodedOperand {
	zp := c.bus.Read(c.pc)
	c.pc++
	base := readZP16(c.bus, zp)
	return addrOperand(base + uint16(c.y))
}

// fetchRelative decodes a branch target as (address of the next
// instruction) + signed offset, matching hardware behavior: by the
// time this runs c.pc has already advanced past the offset byte, which
// is exactly that address.
func fetchRelative(c *CPU) DecodedOperand {
	offset := int8(c.bus.Read(c.pc))
	c.pc++
	return addrOperand(uint16(int32(c.pc) + int32(offset)))
}
