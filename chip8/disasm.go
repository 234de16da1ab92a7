package chip8

import "fmt"

// Disassembler. Dumps the loaded ROM to stdout, one instruction word per
// line:
// ADDR: WORD  MNEMONIC args

var mnemonics = map[kind]string{
	opCLS:      "CLS",
	opRET:      "RET",
	opJP:       "JP",
	opCALL:     "CALL",
	opSEByte:   "SE",
	opSNEByte:  "SNE",
	opSEReg:    "SE",
	opLDByte:   "LD",
	opADDByte:  "ADD",
	opLDReg:    "LD",
	opOR:       "OR",
	opAND:      "AND",
	opXOR:      "XOR",
	opADDReg:   "ADD",
	opSUB:      "SUB",
	opSHR:      "SHR",
	opSUBN:     "SUBN",
	opSHL:      "SHL",
	opSNEReg:   "SNE",
	opLDI:      "LD",
	opJPV0:     "JP",
	opRND:      "RND",
	opDRW:      "DRW",
	opSKP:      "SKP",
	opSKNP:     "SKNP",
	opLDFromDT: "LD",
	opLDKey:    "LD",
	opLDToDT:   "LD",
	opLDToST:   "LD",
	opADDI:     "ADD",
	opLDFont:   "LD",
	opLDBCD:    "LD",
	opLDStore:  "LD",
	opLDLoad:   "LD",
}

// Operand format strings per variant, filled from the decoded fields.
var operandFormats = map[kind]string{
	opJP:       "$%03x",
	opCALL:     "$%03x",
	opSEByte:   "v%x, $%02x",
	opSNEByte:  "v%x, $%02x",
	opSEReg:    "v%x, v%x",
	opLDByte:   "v%x, $%02x",
	opADDByte:  "v%x, $%02x",
	opLDReg:    "v%x, v%x",
	opOR:       "v%x, v%x",
	opAND:      "v%x, v%x",
	opXOR:      "v%x, v%x",
	opADDReg:   "v%x, v%x",
	opSUB:      "v%x, v%x",
	opSHR:      "v%x",
	opSUBN:     "v%x, v%x",
	opSHL:      "v%x",
	opSNEReg:   "v%x, v%x",
	opLDI:      "i, $%03x",
	opJPV0:     "v0, $%03x",
	opRND:      "v%x, $%02x",
	opDRW:      "v%x, v%x, %d",
	opSKP:      "v%x",
	opSKNP:     "v%x",
	opLDFromDT: "v%x, dt",
	opLDKey:    "v%x, k",
	opLDToDT:   "dt, v%x",
	opLDToST:   "st, v%x",
	opADDI:     "i, v%x",
	opLDFont:   "f, v%x",
	opLDBCD:    "b, v%x",
	opLDStore:  "[i], v%x",
	opLDLoad:   "v%x, [i]",
}

// disasmOp renders a single instruction word.
func disasmOp(op Opcode) string {
	ins := decode(op)
	switch ins.kind {
	case opUnknown:
		return fmt.Sprintf(".dw $%04x", uint16(op))
	case opCLS, opRET:
		return mnemonics[ins.kind]
	case opJP, opCALL:
		return fmt.Sprintf(mnemonics[ins.kind]+" "+operandFormats[ins.kind], ins.nnn)
	case opLDI, opJPV0:
		return fmt.Sprintf(mnemonics[ins.kind]+" "+operandFormats[ins.kind], ins.nnn)
	case opSEByte, opSNEByte, opLDByte, opADDByte, opRND:
		return fmt.Sprintf(mnemonics[ins.kind]+" "+operandFormats[ins.kind], ins.x, ins.kk)
	case opSEReg, opLDReg, opOR, opAND, opXOR, opADDReg, opSUB, opSUBN, opSNEReg:
		return fmt.Sprintf(mnemonics[ins.kind]+" "+operandFormats[ins.kind], ins.x, ins.y)
	case opDRW:
		return fmt.Sprintf(mnemonics[ins.kind]+" "+operandFormats[ins.kind], ins.x, ins.y, ins.n)
	default:
		return fmt.Sprintf(mnemonics[ins.kind]+" "+operandFormats[ins.kind], ins.x)
	}
}

// DisassembleOp prints the instruction at addr and returns its width in
// bytes.
func (c *Chip8) DisassembleOp(addr uint16) uint16 {
	addr &= addrMask
	op := Opcode(uint16(c.mem[addr])<<8 | uint16(c.mem[(addr+1)&addrMask]))
	fmt.Printf("%03x: %04x  %s\n", addr, uint16(op), disasmOp(op))
	return 2
}

// Disassemble dumps the loaded ROM region to stdout.
func (c *Chip8) Disassemble() {
	end := ProgramStart + uint16(c.romSize)
	for addr := uint16(ProgramStart); addr < end; {
		addr += c.DisassembleOp(addr)
	}
}
