package chip8

// Opcode is one 16-bit instruction word, big-endian in memory: the byte at
// PC is the high byte. Decoding is total over all 65536 values; whether the
// nibble pattern names a real instruction is decided at dispatch.
type Opcode uint16

// Nibbles splits the word into its four 4-bit fields d1..d4, high to low.
func (op Opcode) Nibbles() (d1, d2, d3, d4 byte) {
	return byte(op >> 12), byte(op>>8) & 0xF, byte(op>>4) & 0xF, byte(op) & 0xF
}

// X is the register index in d2.
func (op Opcode) X() byte { return byte(op>>8) & 0xF }

// Y is the register index in d3.
func (op Opcode) Y() byte { return byte(op>>4) & 0xF }

// KK is the 8-bit immediate in d3d4.
func (op Opcode) KK() byte { return byte(op) }

// NNN is the 12-bit address in d2d3d4.
func (op Opcode) NNN() uint16 { return uint16(op) & 0xFFF }

// N is the low nibble d4.
func (op Opcode) N() byte { return byte(op) & 0xF }

// kind discriminates the decoded instruction variants. The names follow
// Cowgod's mnemonics, suffixed where one mnemonic covers several forms.
type kind uint8

const (
	opUnknown kind = iota
	opCLS          // 00E0
	opRET          // 00EE
	opJP           // 1nnn
	opCALL         // 2nnn
	opSEByte       // 3xkk
	opSNEByte      // 4xkk
	opSEReg        // 5xy0
	opLDByte       // 6xkk
	opADDByte      // 7xkk
	opLDReg        // 8xy0
	opOR           // 8xy1
	opAND          // 8xy2
	opXOR          // 8xy3
	opADDReg       // 8xy4
	opSUB          // 8xy5
	opSHR          // 8xy6
	opSUBN         // 8xy7
	opSHL          // 8xyE
	opSNEReg       // 9xy0
	opLDI          // Annn
	opJPV0         // Bnnn
	opRND          // Cxkk
	opDRW          // Dxyn
	opSKP          // Ex9E
	opSKNP         // ExA1
	opLDFromDT     // Fx07
	opLDKey        // Fx0A
	opLDToDT       // Fx15
	opLDToST       // Fx18
	opADDI         // Fx1E
	opLDFont       // Fx29
	opLDBCD        // Fx33
	opLDStore      // Fx55
	opLDLoad       // Fx65
)

// instruction is the discriminated value produced by decode and consumed by
// the executor. Operand fields are extracted eagerly; handlers only look at
// the ones their variant defines.
type instruction struct {
	raw  Opcode
	kind kind
	x    byte
	y    byte
	kk   byte
	nnn  uint16
	n    byte
}

// decode maps an opcode word to its instruction variant. Unrecognized
// patterns come back as opUnknown; decode itself never fails.
func decode(op Opcode) instruction {
	ins := instruction{
		raw: op,
		x:   op.X(),
		y:   op.Y(),
		kk:  op.KK(),
		nnn: op.NNN(),
		n:   op.N(),
	}

	d1, _, _, d4 := op.Nibbles()
	switch d1 {
	case 0x0:
		switch uint16(op) {
		case 0x00E0:
			ins.kind = opCLS
		case 0x00EE:
			ins.kind = opRET
		}
	case 0x1:
		ins.kind = opJP
	case 0x2:
		ins.kind = opCALL
	case 0x3:
		ins.kind = opSEByte
	case 0x4:
		ins.kind = opSNEByte
	case 0x5:
		if d4 == 0x0 {
			ins.kind = opSEReg
		}
	case 0x6:
		ins.kind = opLDByte
	case 0x7:
		ins.kind = opADDByte
	case 0x8:
		switch d4 {
		case 0x0:
			ins.kind = opLDReg
		case 0x1:
			ins.kind = opOR
		case 0x2:
			ins.kind = opAND
		case 0x3:
			ins.kind = opXOR
		case 0x4:
			ins.kind = opADDReg
		case 0x5:
			ins.kind = opSUB
		case 0x6:
			ins.kind = opSHR
		case 0x7:
			ins.kind = opSUBN
		case 0xE:
			ins.kind = opSHL
		}
	case 0x9:
		if d4 == 0x0 {
			ins.kind = opSNEReg
		}
	case 0xA:
		ins.kind = opLDI
	case 0xB:
		ins.kind = opJPV0
	case 0xC:
		ins.kind = opRND
	case 0xD:
		ins.kind = opDRW
	case 0xE:
		switch op.KK() {
		case 0x9E:
			ins.kind = opSKP
		case 0xA1:
			ins.kind = opSKNP
		}
	case 0xF:
		switch op.KK() {
		case 0x07:
			ins.kind = opLDFromDT
		case 0x0A:
			ins.kind = opLDKey
		case 0x15:
			ins.kind = opLDToDT
		case 0x18:
			ins.kind = opLDToST
		case 0x1E:
			ins.kind = opADDI
		case 0x29:
			ins.kind = opLDFont
		case 0x33:
			ins.kind = opLDBCD
		case 0x55:
			ins.kind = opLDStore
		case 0x65:
			ins.kind = opLDLoad
		}
	}
	return ins
}
