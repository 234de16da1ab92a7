package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// exec dispatches one decoded instruction to its handler. The PC has
// already advanced past the instruction word.
//
// Flag conventions throughout: arithmetic, shift and draw handlers read
// their operands first and write vF last, so an instruction naming vF as a
// destination still ends with the flag value in vF.
func (c *Chip8) exec(ins instruction, input InputSource) error {
	switch ins.kind {
	case opCLS: // 00E0
		c.fb.Clear()

	case opRET: // 00EE
		addr, err := c.stack.Pop()
		if err != nil {
			return fmt.Errorf("RET at %03x: %w", c.prevPC(), err)
		}
		c.pc = addr

	case opJP: // 1nnn
		c.pc = ins.nnn

	case opCALL: // 2nnn
		if err := c.stack.Push(c.pc); err != nil {
			return fmt.Errorf("CALL %03x at %03x: %w", ins.nnn, c.prevPC(), err)
		}
		c.pc = ins.nnn

	case opSEByte: // 3xkk
		c.skipIf(c.vx[ins.x] == ins.kk)

	case opSNEByte: // 4xkk
		c.skipIf(c.vx[ins.x] != ins.kk)

	case opSEReg: // 5xy0
		c.skipIf(c.vx[ins.x] == c.vx[ins.y])

	case opLDByte: // 6xkk
		c.vx[ins.x] = ins.kk

	case opADDByte: // 7xkk
		// Wraps; does not touch the flag register.
		c.vx[ins.x] += ins.kk

	case opLDReg: // 8xy0
		c.vx[ins.x] = c.vx[ins.y]

	case opOR: // 8xy1
		c.vx[ins.x] |= c.vx[ins.y]

	case opAND: // 8xy2
		c.vx[ins.x] &= c.vx[ins.y]

	case opXOR: // 8xy3
		c.vx[ins.x] ^= c.vx[ins.y]

	case opADDReg: // 8xy4
		sum := uint16(c.vx[ins.x]) + uint16(c.vx[ins.y])
		c.vx[ins.x] = byte(sum)
		c.vx[0xF] = b2i(sum > 0xFF)

	case opSUB: // 8xy5
		xv, yv := c.vx[ins.x], c.vx[ins.y]
		c.vx[ins.x] = xv - yv
		c.vx[0xF] = b2i(xv > yv)

	case opSHR: // 8xy6
		xv := c.vx[ins.x]
		c.vx[ins.x] = xv >> 1
		c.vx[0xF] = xv & 1

	case opSUBN: // 8xy7
		xv, yv := c.vx[ins.x], c.vx[ins.y]
		c.vx[ins.x] = yv - xv
		c.vx[0xF] = b2i(yv > xv)

	case opSHL: // 8xyE
		xv := c.vx[ins.x]
		c.vx[ins.x] = xv << 1
		c.vx[0xF] = xv >> 7

	case opSNEReg: // 9xy0
		c.skipIf(c.vx[ins.x] != c.vx[ins.y])

	case opLDI: // Annn
		c.i = ins.nnn

	case opJPV0: // Bnnn
		c.pc = (ins.nnn + uint16(c.vx[0])) & addrMask

	case opRND: // Cxkk
		c.vx[ins.x] = byte(c.rng.Intn(0x100)) & ins.kk

	case opDRW: // Dxyn
		sprite := make([]byte, ins.n)
		for row := range sprite {
			sprite[row] = c.mem[(c.i+uint16(row))&addrMask]
		}
		c.vx[0xF] = c.fb.Draw(c.vx[ins.x], c.vx[ins.y], sprite)

	case opSKP: // Ex9E
		c.skipIf(keyDown(input, c.vx[ins.x]&0xF))

	case opSKNP: // ExA1
		c.skipIf(!keyDown(input, c.vx[ins.x]&0xF))

	case opLDFromDT: // Fx07
		c.vx[ins.x] = c.timers.Delay

	case opLDKey: // Fx0A
		// Host-loop-driven wait: with no key down the PC rewinds onto this
		// instruction so the next Step polls again. The host keeps
		// presenting and pumping input in the meantime.
		if k, ok := pressedKey(input); ok {
			c.vx[ins.x] = k
		} else {
			c.pc = c.prevPC()
		}

	case opLDToDT: // Fx15
		c.timers.Delay = c.vx[ins.x]

	case opLDToST: // Fx18
		c.timers.Sound = c.vx[ins.x]

	case opADDI: // Fx1E
		// Wraps within the 12-bit address space.
		c.i = (c.i + uint16(c.vx[ins.x])) & addrMask

	case opLDFont: // Fx29
		c.i = uint16(c.vx[ins.x]&0xF) * fontSpriteSize

	case opLDBCD: // Fx33
		v := c.vx[ins.x]
		c.mem[c.i&addrMask] = v / 100
		c.mem[(c.i+1)&addrMask] = v % 100 / 10
		c.mem[(c.i+2)&addrMask] = v % 10

	case opLDStore: // Fx55
		for r := byte(0); r <= ins.x; r++ {
			c.mem[(c.i+uint16(r))&addrMask] = c.vx[r]
		}

	case opLDLoad: // Fx65
		for r := byte(0); r <= ins.x; r++ {
			c.vx[r] = c.mem[(c.i+uint16(r))&addrMask]
		}

	default: // Decode miss: log it and complete the cycle as a no-op.
		c.logger.Warn("unknown opcode",
			log.String("opcode", fmt.Sprintf("%04x", uint16(ins.raw))),
			log.String("pc", fmt.Sprintf("%03x", c.prevPC())))
	}
	return nil
}

// skipIf advances the PC over the next instruction when cond holds.
func (c *Chip8) skipIf(cond bool) {
	if cond {
		c.pc = (c.pc + 2) & addrMask
	}
}

// prevPC is the address of the instruction currently executing.
func (c *Chip8) prevPC() uint16 {
	return (c.pc - 2) & addrMask
}

func b2i(b bool) byte {
	if b {
		return 1
	}
	return 0
}
