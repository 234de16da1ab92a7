// Package chip8 implements the CHIP-8 virtual machine: a fetch-decode-execute
// interpreter over 4KB of memory, sixteen 8-bit registers, a 16-entry call
// stack, a 64x32 monochrome framebuffer and two 60Hz countdown timers.
//
// The package owns no window, input device or clock. The host loop drives it:
// one Step per instruction, TickTimers with elapsed wall-clock time, and a
// Framebuffer snapshot whenever it wants to present.
package chip8

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const (
	// MemorySize is the flat byte-addressable address space.
	MemorySize = 0x1000
	// ProgramStart is where loaded ROM code begins executing. Everything
	// below is reserved for the font table.
	ProgramStart = 0x200

	addrMask = MemorySize - 1
)

// Chip8 is one machine instance. All state is exclusively owned by the
// control loop driving Step and TickTimers; nothing here is goroutine safe.
type Chip8 struct {
	vx [16]byte
	i  uint16
	pc uint16

	mem    [MemorySize]byte
	stack  Stack
	fb     Framebuffer
	timers Timers

	rng    *rand.Rand
	logger *log.Logger

	romSize int
	cycles  uint64

	input InputSource

	debug        bool
	atBreakpoint bool
	breakpoints  []uint16
}

// New returns a reset machine. The logger receives decode misses and
// breakpoint hits; it must not be nil.
func New(logger *log.Logger) *Chip8 {
	c := &Chip8{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
	c.Reset()
	return c
}

// Reset clears all machine state and rewrites the font table into the
// reserved low memory region. Loaded ROM bytes do not survive a reset.
func (c *Chip8) Reset() {
	c.vx = [16]byte{}
	c.i = 0
	c.pc = ProgramStart
	c.mem = [MemorySize]byte{}
	c.stack.Reset()
	c.fb.Clear()
	c.timers.Reset()
	c.romSize = 0
	c.cycles = 0
	c.atBreakpoint = false
	copy(c.mem[:], fontset[:])
}

// SeedRandom makes Cxkk deterministic, for tests and reproducible runs.
func (c *Chip8) SeedRandom(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// ErrROMTooLarge is returned by LoadROM when the image does not fit between
// the program offset and the end of memory.
var ErrROMTooLarge = fmt.Errorf("ROM exceeds %d bytes of program memory", MemorySize-ProgramStart)

// LoadROM copies a raw ROM image to the program offset. On error the
// machine state is unchanged.
func (c *Chip8) LoadROM(rom []byte) error {
	if len(rom) > MemorySize-ProgramStart {
		return fmt.Errorf("loading %d byte ROM: %w", len(rom), ErrROMTooLarge)
	}
	copy(c.mem[ProgramStart:], rom)
	c.romSize = len(rom)
	return nil
}

// SetInput attaches the default input capability used when the machine is
// stepped through the debugger surface. The host loop passes its input to
// Step directly.
func (c *Chip8) SetInput(in InputSource) {
	c.input = in
}

// TickTimers advances both countdown timers by the given elapsed wall-clock
// time. Decoupled from Step on purpose: timers run at 60Hz no matter how
// fast instructions execute.
func (c *Chip8) TickTimers(elapsed time.Duration) {
	c.timers.Tick(elapsed)
}

// Framebuffer returns a copy of the pixel grid for presentation.
func (c *Chip8) Framebuffer() [DisplayHeight][DisplayWidth]byte {
	return c.fb.Snapshot()
}

// DelayValue reads the delay timer.
func (c *Chip8) DelayValue() byte { return c.timers.Delay }

// SoundValue reads the sound timer. A nonzero value means an external audio
// device should be sounding; the core tracks the counter but drives nothing.
func (c *Chip8) SoundValue() byte { return c.timers.Sound }

// Cycles is the number of instructions executed since the last reset.
func (c *Chip8) Cycles() uint64 { return c.cycles }

// Step runs one fetch-decode-execute cycle. The PC advances past the
// instruction word before the handler runs, so jump and call handlers
// overwrite it afterward. Stack faults are returned and fatal; unknown
// opcodes are logged and complete as a no-op.
//
// When the PC sits on a breakpoint, Step switches the machine into debug
// mode and returns without executing; the next Step runs the instruction.
func (c *Chip8) Step(input InputSource) error {
	if len(c.breakpoints) > 0 && !c.atBreakpoint {
		for _, bp := range c.breakpoints {
			if c.pc == bp {
				c.atBreakpoint = true
				c.debug = true
				c.logger.Info("hit breakpoint",
					log.String("pc", fmt.Sprintf("%03x", c.pc)))
				return nil
			}
		}
	}
	c.atBreakpoint = false

	op := Opcode(uint16(c.mem[c.pc&addrMask])<<8 | uint16(c.mem[(c.pc+1)&addrMask]))
	c.pc = (c.pc + 2) & addrMask
	c.cycles++
	return c.exec(decode(op), input)
}

// Debugger surface, used by the console and the script runner.

// Memory exposes the raw address space.
func (c *Chip8) Memory() []byte { return c.mem[:] }

// RunOp steps the machine with the attached input. Execution errors drop
// the machine into debug mode instead of propagating; the interactive
// console is the caller here, not the host loop. Returns false when the
// step only paused on a breakpoint.
func (c *Chip8) RunOp() bool {
	before := c.cycles
	if err := c.Step(c.input); err != nil {
		c.logger.Error("execution fault", log.Err(err),
			log.String("pc", fmt.Sprintf("%03x", c.pc)))
		c.debug = true
	}
	return c.cycles != before
}

// Debugging exposes the debug flag; the host loop polls it to decide
// between running and showing the console.
func (c *Chip8) Debugging() *bool { return &c.debug }

// AddBreakpoint registers a PC value that pauses execution.
func (c *Chip8) AddBreakpoint(addr uint16) {
	c.breakpoints = append(c.breakpoints, addr&addrMask)
}

// DebugPrompt prints the console prompt.
func (c *Chip8) DebugPrompt() {
	fmt.Printf("%03x debug> ", c.pc)
}

// Registers lists the register names for the console's dump command.
func (c *Chip8) Registers() []string {
	names := make([]string, 0, 20)
	for i := 0; i < 16; i++ {
		names = append(names, fmt.Sprintf("v%x", i))
	}
	return append(names, "i", "pc", "dt", "st")
}

// RegByName resolves a register name to its value and canonical name.
func (c *Chip8) RegByName(name string) (uint16, string, bool) {
	switch name {
	case "i", "I":
		return c.i, "i", true
	case "pc", "PC":
		return c.pc, "pc", true
	case "dt", "DT":
		return uint16(c.timers.Delay), "dt", true
	case "st", "ST":
		return uint16(c.timers.Sound), "st", true
	}
	var idx byte
	if _, err := fmt.Sscanf(name, "v%x", &idx); err != nil || idx > 0xF {
		return 0, "", false
	}
	return uint16(c.vx[idx]), fmt.Sprintf("v%x", idx), true
}

// Exit terminates the host process.
func (c *Chip8) Exit() {
	os.Exit(0)
}
