package common

import (
	"fmt"
	"os"
)

// DebugCommand captures a self-describing debug command.
type DebugCommand interface {
	Describe() string
	Run(m Machine, args []string)
}

type debugBlob struct {
	desc string
	f    func(Machine, []string)
}

// DebugCommands is a map of command strings to command objects.
var DebugCommands = map[string]DebugCommand{
	"r": newCommand("Dump one or all (r)egisters ('r' vs. 'r v3')", cmdRegs),
	"q": newCommand("(Q)uit the emulator", func(m Machine, _ []string) { m.Exit() }),

	"c": newCommand("(C)ontinue execution", func(m Machine, _ []string) {
		*m.Debugging() = false
	}),

	"s": newCommand("(S)tep forward, run next instruction", func(m Machine, _ []string) {
		for !m.RunOp() {
		}
	}),

	"b": newCommand("Set a new (b)reakpoint at the given (hex) location",
		singleHexArg("No breakpoint location specified (needs hex number)",
			"Error parsing the location", func(m Machine, loc uint16) {
				m.AddBreakpoint(loc)
				fmt.Printf("Breakpoint set at PC = %03x\n", loc)
			})),
	"m": newCommand("Print a value from (m)emory",
		singleHexArg("No memory location specified", "Error parsing location",
			func(m Machine, loc uint16) {
				mem := m.Memory()
				x := mem[int(loc)%len(mem)]
				fmt.Printf("[%03x] = %02x (%d)\n", loc, x, x)
			})),

	"i": newCommand("Disassemble the (i)nstruction at the given location, or at PC",
		singleHexArg("No PC value given", "Error parsing location",
			func(m Machine, loc uint16) {
				for i := loc; i < loc+16; {
					i += m.DisassembleOp(i)
				}
			})),

	"db": newCommand("(D)ump the address space to the given file in (b)inary",
		func(m Machine, args []string) {
			if len(args) < 2 {
				fmt.Println("No filename given")
				return
			}

			f, err := os.Create(args[1])
			if err != nil {
				fmt.Printf("Could not open file: %v\n", err)
				return
			}

			f.Write(m.Memory())
			f.Close()
		}),
}

func newCommand(desc string, f func(m Machine, args []string)) DebugCommand {
	d := new(debugBlob)
	d.desc = desc
	d.f = f
	return d
}

func (dbg *debugBlob) Describe() string {
	return dbg.desc
}

func (dbg *debugBlob) Run(m Machine, args []string) {
	dbg.f(m, args)
}

func showReg(m Machine, name string, val uint16) {
	fmt.Printf("%-2s  %04x (%d)\n", name, val, val)
}

func cmdRegs(m Machine, args []string) {
	if len(args) > 1 {
		for _, r := range args[1:] {
			value, name, ok := m.RegByName(r)
			if ok {
				showReg(m, name, value)
			} else {
				fmt.Printf("%% Unknown register: %s\n", r)
			}
		}
	} else {
		for _, r := range m.Registers() {
			value, name, _ := m.RegByName(r)
			showReg(m, name, value)
		}
	}
}

func singleHexArg(notSpecifiedMsg, parseErrorMsg string,
	cmd func(m Machine, arg uint16)) func(Machine, []string) {
	return func(m Machine, args []string) {
		if len(args) <= 1 {
			fmt.Println(notSpecifiedMsg)
			return
		}

		var x uint16
		_, err := fmt.Sscanf(args[1], "%x", &x)
		if err != nil {
			fmt.Printf(parseErrorMsg+": %v\n", err)
			return
		}

		cmd(m, x)
	}
}
