package cpu

// fetchFunc decodes the operand of an instruction, reading from and
// advancing past the bytes that follow the opcode.
type fetchFunc func(c *CPU) DecodedOperand

// opFunc executes a decoded instruction against the CPU's registers
// and bus.
type opFunc func(c *CPU, o DecodedOperand)

type opEntry struct {
	name  string
	fetch fetchFunc
	op    opFunc
}

// opcodeTable is a dense dispatch table indexed by opcode byte, filled
// once by this file's init. A nil entry means the byte names no
// documented 6502 instruction.
var opcodeTable [256]*opEntry

// define registers one opcode/addressing-mode pair. Called only from
// this file's init, so a duplicate registration panics during package
// initialization, not at a point callers can trigger.
func define(opcode uint8, name string, fetch fetchFunc, op opFunc) {
	if opcodeTable[opcode] != nil {
		panic("cpu: duplicate opcode registration")
	}
	opcodeTable[opcode] = &opEntry{name: name, fetch: fetch, op: op}
}

func init() {
	define(0x69, "ADC", fetchImmediate, opADC)
	define(0x65, "ADC", fetchZeroPage, opADC)
	define(0x75, "ADC", fetchZeroPageX, opADC)
	define(0x6D, "ADC", fetchAbsolute, opADC)
	define(0x7D, "ADC", fetchAbsoluteX, opADC)
	define(0x79, "ADC", fetchAbsoluteY, opADC)
	define(0x61, "ADC", fetchIndirectX, opADC)
	define(0x71, "ADC", fetchIndirectY, opADC)

	define(0x29, "AND", fetchImmediate, opAND)
	define(0x25, "AND", fetchZeroPage, opAND)
	define(0x35, "AND", fetchZeroPageX, opAND)
	define(0x2D, "AND", fetchAbsolute, opAND)
	define(0x3D, "AND", fetchAbsoluteX, opAND)
	define(0x39, "AND", fetchAbsoluteY, opAND)
	define(0x21, "AND", fetchIndirectX, opAND)
	define(0x31, "AND", fetchIndirectY, opAND)

	define(0x0A, "ASL", fetchAccumulator, opASL)
	define(0x06, "ASL", fetchZeroPage, opASL)
	define(0x16, "ASL", fetchZeroPageX, opASL)
	define(0x0E, "ASL", fetchAbsolute, opASL)
	define(0x1E, "ASL", fetchAbsoluteX, opASL)

	define(0x90, "BCC", fetchRelative, opBCC)
	define(0xB0, "BCS", fetchRelative, opBCS)
	define(0xF0, "BEQ", fetchRelative, opBEQ)
	define(0x30, "BMI", fetchRelative, opBMI)
	define(0xD0, "BNE", fetchRelative, opBNE)
	define(0x10, "BPL", fetchRelative, opBPL)
	define(0x50, "BVC", fetchRelative, opBVC)
	define(0x70, "BVS", fetchRelative, opBVS)

	define(0x24, "BIT", fetchZeroPage, opBIT)
	define(0x2C, "BIT", fetchAbsolute, opBIT)

	define(0x00, "BRK", fetchImplied, opNOP)

	define(0x18, "CLC", fetchImplied, opCLC)
	define(0xD8, "CLD", fetchImplied, opCLD)
	define(0x58, "CLI", fetchImplied, opCLI)
	define(0xB8, "CLV", fetchImplied, opCLV)

	define(0xC9, "CMP", fetchImmediate, opCMP)
	define(0xC5, "CMP", fetchZeroPage, opCMP)
	define(0xD5, "CMP", fetchZeroPageX, opCMP)
	define(0xCD, "CMP", fetchAbsolute, opCMP)
	define(0xDD, "CMP", fetchAbsoluteX, opCMP)
	define(0xD9, "CMP", fetchAbsoluteY, opCMP)
	define(0xC1, "CMP", fetchIndirectX, opCMP)
	define(0xD1, "CMP", fetchIndirectY, opCMP)

	define(0xE0, "CPX", fetchImmediate, opCPX)
	define(0xE4, "CPX", fetchZeroPage, opCPX)
	define(0xEC, "CPX", fetchAbsolute, opCPX)

	define(0xC0, "CPY", fetchImmediate, opCPY)
	define(0xC4, "CPY", fetchZeroPage, opCPY)
	define(0xCC, "CPY", fetchAbsolute, opCPY)

	define(0xC6, "DEC", fetchZeroPage, opDEC)
	define(0xD6, "DEC", fetchZeroPageX, opDEC)
	define(0xCE, "DEC", fetchAbsolute, opDEC)
	define(0xDE, "DEC", fetchAbsoluteX, opDEC)

	define(0xCA, "DEX", fetchImplied, opDEX)
	define(0x88, "DEY", fetchImplied, opDEY)

	define(0x49, "EOR", fetchImmediate, opEOR)
	define(0x45, "EOR", fetchZeroPage, opEOR)
	define(0x55, "EOR", fetchZeroPageX, opEOR)
	define(0x4D, "EOR", fetchAbsolute, opEOR)
	define(0x5D, "EOR", fetchAbsoluteX, opEOR)
	define(0x59, "EOR", fetchAbsoluteY, opEOR)
	define(0x41, "EOR", fetchIndirectX, opEOR)
	define(0x51, "EOR", fetchIndirectY, opEOR)

	define(0xE6, "INC", fetchZeroPage, opINC)
	define(0xF6, "INC", fetchZeroPageX, opINC)
	define(0xEE, "INC", fetchAbsolute, opINC)
	define(0xFE, "INC", fetchAbsoluteX, opINC)

	define(0xE8, "INX", fetchImplied, opINX)
	define(0xC8, "INY", fetchImplied, opINY)

	define(0x4C, "JMP", fetchAbsolute, opJMP)
	define(0x6C, "JMP", fetchIndirect, opJMP)
	define(0x20, "JSR", fetchAbsolute, opJSR)

	define(0xA9, "LDA", fetchImmediate, opLDA)
	define(0xA5, "LDA", fetchZeroPage, opLDA)
	define(0xB5, "LDA", fetchZeroPageX, opLDA)
	define(0xAD, "LDA", fetchAbsolute, opLDA)
	define(0xBD, "LDA", fetchAbsoluteX, opLDA)
	define(0xB9, "LDA", fetchAbsoluteY, opLDA)
	define(0xA1, "LDA", fetchIndirectX, opLDA)
	define(0xB1, "LDA", fetchIndirectY, opLDA)

	define(0xA2, "LDX", fetchImmediate, opLDX)
	define(0xA6, "LDX", fetchZeroPage, opLDX)
	define(0xB6, "LDX", fetchZeroPageY, opLDX)
	define(0xAE, "LDX", fetchAbsolute, opLDX)
	define(0xBE, "LDX", fetchAbsoluteY, opLDX)

	define(0xA0, "LDY", fetchImmediate, opLDY)
	define(0xA4, "LDY", fetchZeroPage, opLDY)
	define(0xB4, "LDY", fetchZeroPageX, opLDY)
	define(0xAC, "LDY", fetchAbsolute, opLDY)
	define(0xBC, "LDY", fetchAbsoluteX, opLDY)

	define(0x4A, "LSR", fetchAccumulator, opLSR)
	define(0x46, "LSR", fetchZeroPage, opLSR)
	define(0x56, "LSR", fetchZeroPageX, opLSR)
	define(0x4E, "LSR", fetchAbsolute, opLSR)
	define(0x5E, "LSR", fetchAbsoluteX, opLSR)

	define(0xEA, "NOP", fetchImplied, opNOP)

	define(0x09, "ORA", fetchImmediate, opORA)
	define(0x05, "ORA", fetchZeroPage, opORA)
	define(0x15, "ORA", fetchZeroPageX, opORA)
	define(0x0D, "ORA", fetchAbsolute, opORA)
	define(0x1D, "ORA", fetchAbsoluteX, opORA)
	define(0x19, "ORA", fetchAbsoluteY, opORA)
	define(0x01, "ORA", fetchIndirectX, opORA)
	define(0x11, "ORA", fetchIndirectY, opORA)

	define(0x48, "PHA", fetchImplied, opPHA)
	define(0x08, "PHP", fetchImplied, opPHP)
	define(0x68, "PLA", fetchImplied, opPLA)
	define(0x28, "PLP", fetchImplied, opPLP)

	define(0x2A, "ROL", fetchAccumulator, opROL)
	define(0x26, "ROL", fetchZeroPage, opROL)
	define(0x36, "ROL", fetchZeroPageX, opROL)
	define(0x2E, "ROL", fetchAbsolute, opROL)
	define(0x3E, "ROL", fetchAbsoluteX, opROL)

	define(0x6A, "ROR", fetchAccumulator, opROR)
	define(0x66, "ROR", fetchZeroPage, opROR)
	define(0x76, "ROR", fetchZeroPageX, opROR)
	define(0x6E, "ROR", fetchAbsolute, opROR)
	define(0x7E, "ROR", fetchAbsoluteX, opROR)

	define(0x40, "RTI", fetchImplied, opRTI)
	define(0x60, "RTS", fetchImplied, opRTS)

	define(0xE9, "SBC", fetchImmediate, opSBC)
	define(0xE5, "SBC", fetchZeroPage, opSBC)
	define(0xF5, "SBC", fetchZeroPageX, opSBC)
	define(0xED, "SBC", fetchAbsolute, opSBC)
	define(0xFD, "SBC", fetchAbsoluteX, opSBC)
	define(0xF9, "SBC", fetchAbsoluteY, opSBC)
	define(0xE1, "SBC", fetchIndirectX, opSBC)
	define(0xF1, "SBC", fetchIndirectY, opSBC)

	define(0x38, "SEC", fetchImplied, opSEC)
	define(0xF8, "SED", fetchImplied, opSED)
	define(0x78, "SEI", fetchImplied, opSEI)

	define(0x85, "STA", fetchZeroPage, opSTA)
	define(0x95, "STA", fetchZeroPageX, opSTA)
	define(0x8D, "STA", fetchAbsolute, opSTA)
	define(0x9D, "STA", fetchAbsoluteX, opSTA)
	define(0x99, "STA", fetchAbsoluteY, opSTA)
	define(0x81, "STA", fetchIndirectX, opSTA)
	define(0x91, "STA", fetchIndirectY, opSTA)

	define(0x86, "STX", fetchZeroPage, opSTX)
	define(0x96, "STX", fetchZeroPageY, opSTX)
	define(0x8E, "STX", fetchAbsolute, opSTX)

	define(0x84, "STY", fetchZeroPage, opSTY)
	define(0x94, "STY", fetchZeroPageX, opSTY)
	define(0x8C, "STY", fetchAbsolute, opSTY)

	define(0xAA, "TAX", fetchImplied, opTAX)
	define(0xA8, "TAY", fetchImplied, opTAY)
	define(0xBA, "TSX", fetchImplied, opTSX)
	define(0x8A, "TXA", fetchImplied, opTXA)
	define(0x9A, "TXS", fetchImplied, opTXS)
	define(0x98, "TYA", fetchImplied, opTYA)
}

func opLDA(c *CPU, o DecodedOperand) { c.a = o.Byte(c.bus); c.setZN(c.a) }
func opLDX(c *CPU, o DecodedOperand) { c.x = o.Byte(c.bus); c.setZN(c.x) }
func opLDY(c *CPU, o DecodedOperand) { c.y = o.Byte(c.bus); c.setZN(c.y) }

func opSTA(c *CPU, o DecodedOperand) { c.bus.Write(o.Address, c.a) }
func opSTX(c *CPU, o DecodedOperand) { c.bus.Write(o.Address, c.x) }
func opSTY(c *CPU, o DecodedOperand) { c.bus.Write(o.Address, c.y) }

func opTAX(c *CPU, o DecodedOperand) { c.x = c.a; c.setZN(c.x) }
func opTAY(c *CPU, o DecodedOperand) { c.y = c.a; c.setZN(c.y) }
func opTSX(c *CPU, o DecodedOperand) { c.x = c.sp; c.setZN(c.x) }
func opTXA(c *CPU, o DecodedOperand) { c.a = c.x; c.setZN(c.a) }
func opTXS(c *CPU, o DecodedOperand) { c.sp = c.x }
func opTYA(c *CPU, o DecodedOperand) { c.a = c.y; c.setZN(c.a) }

// adcValue implements ADC's addition, shared with SBC by feeding it the
// ones' complement of the subtrahend: A-M-(1-C) == A+(^M)+C.
func (c *CPU) adcValue(m uint8) {
	carryIn := uint16(0)
	if c.get(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(c.a) + uint16(m) + carryIn
	result := uint8(sum)

	c.set(FlagCarry, sum > 0xFF)
	c.set(FlagOverflow, (c.a^result)&(m^result)&0x80 != 0)
	c.a = result
	c.setZN(c.a)
}

func opADC(c *CPU, o DecodedOperand) { c.adcValue(o.Byte(c.bus)) }
func opSBC(c *CPU, o DecodedOperand) { c.adcValue(^o.Byte(c.bus)) }

func (c *CPU) compare(reg, m uint8) {
	c.set(FlagCarry, reg >= m)
	c.setZN(reg - m)
}

func opCMP(c *CPU, o DecodedOperand) { c.compare(c.a, o.Byte(c.bus)) }
func opCPX(c *CPU, o DecodedOperand) { c.compare(c.x, o.Byte(c.bus)) }
func opCPY(c *CPU, o DecodedOperand) { c.compare(c.y, o.Byte(c.bus)) }

func opAND(c *CPU, o DecodedOperand) { c.a &= o.Byte(c.bus); c.setZN(c.a) }
func opORA(c *CPU, o DecodedOperand) { c.a |= o.Byte(c.bus); c.setZN(c.a) }
func opEOR(c *CPU, o DecodedOperand) { c.a ^= o.Byte(c.bus); c.setZN(c.a) }

func (c *CPU) storeResult(o DecodedOperand, v uint8) {
	if o.Kind == KindAddress {
		c.bus.Write(o.Address, v)
	} else {
		c.a = v
	}
}

func opASL(c *CPU, o DecodedOperand) {
	v := o.Byte(c.bus)
	c.set(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	c.storeResult(o, v)
}

func opLSR(c *CPU, o DecodedOperand) {
	v := o.Byte(c.bus)
	c.set(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	c.storeResult(o, v)
}

func opROL(c *CPU, o DecodedOperand) {
	v := o.Byte(c.bus)
	oldCarry := c.get(FlagCarry)
	c.set(FlagCarry, v&0x80 != 0)
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.setZN(v)
	c.storeResult(o, v)
}

func opROR(c *CPU, o DecodedOperand) {
	v := o.Byte(c.bus)
	oldCarry := c.get(FlagCarry)
	c.set(FlagCarry, v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.setZN(v)
	c.storeResult(o, v)
}

func opINC(c *CPU, o DecodedOperand) {
	v := c.bus.Read(o.Address) + 1
	c.bus.Write(o.Address, v)
	c.setZN(v)
}

func opDEC(c *CPU, o DecodedOperand) {
	v := c.bus.Read(o.Address) - 1
	c.bus.Write(o.Address, v)
	c.setZN(v)
}

func opINX(c *CPU, o DecodedOperand) { c.x++; c.setZN(c.x) }
func opINY(c *CPU, o DecodedOperand) { c.y++; c.setZN(c.y) }
func opDEX(c *CPU, o DecodedOperand) { c.x--; c.setZN(c.x) }
func opDEY(c *CPU, o DecodedOperand) { c.y--; c.setZN(c.y) }

func opBIT(c *CPU, o DecodedOperand) {
	m := o.Byte(c.bus)
	c.set(FlagZero, c.a&m == 0)
	c.set(FlagOverflow, m&0x40 != 0)
	c.set(FlagNegative, m&0x80 != 0)
}

func (c *CPU) branch(o DecodedOperand, taken bool) {
	if taken {
		c.pc = o.Address
	}
}

func opBCC(c *CPU, o DecodedOperand) { c.branch(o, !c.get(FlagCarry)) }
func opBCS(c *CPU, o DecodedOperand) { c.branch(o, c.get(FlagCarry)) }
func opBEQ(c *CPU, o DecodedOperand) { c.branch(o, c.get(FlagZero)) }
func opBNE(c *CPU, o DecodedOperand) { c.branch(o, !c.get(FlagZero)) }
func opBMI(c *CPU, o DecodedOperand) { c.branch(o, c.get(FlagNegative)) }
func opBPL(c *CPU, o DecodedOperand) { c.branch(o, !c.get(FlagNegative)) }
func opBVC(c *CPU, o DecodedOperand) { c.branch(o, !c.get(FlagOverflow)) }
func opBVS(c *CPU, o DecodedOperand) { c.branch(o, c.get(FlagOverflow)) }

func opJMP(c *CPU, o DecodedOperand) { c.pc = o.Address }

func opJSR(c *CPU, o DecodedOperand) {
	c.pushAddr(c.pc - 1)
	c.pc = o.Address
}

func opRTS(c *CPU, o DecodedOperand) { c.pc = c.pullAddr() + 1 }

func opPHA(c *CPU, o DecodedOperand) { c.push(c.a) }
func opPHP(c *CPU, o DecodedOperand) { c.push(c.p) }
func opPLA(c *CPU, o DecodedOperand) { c.a = c.pull(); c.setZN(c.a) }
func opPLP(c *CPU, o DecodedOperand) { c.p = c.pull() }

func opCLC(c *CPU, o DecodedOperand) { c.set(FlagCarry, false) }
func opSEC(c *CPU, o DecodedOperand) { c.set(FlagCarry, true) }
func opCLD(c *CPU, o DecodedOperand) { c.set(FlagDecimal, false) }
func opSED(c *CPU, o DecodedOperand) { c.set(FlagDecimal, true) }
func opCLI(c *CPU, o DecodedOperand) { c.set(FlagInterruptDisable, false) }
func opSEI(c *CPU, o DecodedOperand) { c.set(FlagInterruptDisable, true) }
func opCLV(c *CPU, o DecodedOperand) { c.set(FlagOverflow, false) }

func opRTI(c *CPU, o DecodedOperand) {
	c.p = c.pull()
	c.pc = c.pullAddr()
}

func opNOP(c *CPU, o DecodedOperand) {}
