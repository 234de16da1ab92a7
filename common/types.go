package common

import "bufio"

// Machine is the generic debugger-facing surface of the emulated machine,
// used by the debug console and the script runner.
type Machine interface {
	Memory() []byte
	Registers() []string
	RegByName(name string) (value uint16, canonical string, ok bool)
	RunOp() bool
	AddBreakpoint(addr uint16)
	Debugging() *bool
	DebugPrompt()
	DisassembleOp(addr uint16) uint16
	Exit()
}

// InputReader is shared by the console and scripting, since os.Stdin is
// global.
var InputReader *bufio.Reader
