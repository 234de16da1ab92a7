package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"chip8emu/chip8"
)

type command func(m *chip8.Chip8, args []string)

var cmds = map[string]command{
	"press":   cmdPress,
	"release": cmdRelease,
	"run":     cmdRun,
	"dump":    cmdDump,
	"quit":    cmdQuit,
}

func scriptKeyboard() *Keyboard {
	for _, d := range activeDevices {
		if kb, ok := d.(*Keyboard); ok {
			return kb
		}
	}
	return nil
}

func cmdPress(m *chip8.Chip8, args []string) {
	if len(args) < 1 {
		panic("'press' requires a single key character as an argument")
	}
	kb := scriptKeyboard()
	if kb == nil {
		panic("'press' requires the keyboard device")
	}
	kb.Press(chip8.HostKey(args[0][0]))
}

func cmdRelease(m *chip8.Chip8, args []string) {
	if len(args) < 1 {
		panic("'release' requires a single key character as an argument")
	}
	kb := scriptKeyboard()
	if kb == nil {
		panic("'release' requires the keyboard device")
	}
	kb.Release(chip8.HostKey(args[0][0]))
}

func cmdRun(m *chip8.Chip8, args []string) {
	if len(args) < 1 {
		panic("'run' requires an argument giving the cycle count")
	}

	cycles, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		panic("'run' requires a positive integer argument")
	}

	for i := uint64(0); i < cycles; i++ {
		m.RunOp()
	}
}

// cmdDump prints the framebuffer as text, one character per pixel.
func cmdDump(m *chip8.Chip8, args []string) {
	fb := m.Framebuffer()
	for _, row := range fb {
		var sb strings.Builder
		for _, px := range row {
			if px != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Println(sb.String())
	}
}

func cmdQuit(m *chip8.Chip8, args []string) {
	cleanupDevices()
	os.Exit(0)
}

func RunScript(m *chip8.Chip8, file string) {
	contents, err := os.ReadFile(file)
	if err != nil {
		panic(err)
	}

	lines := strings.Split(string(contents), "\n")
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}

		args := strings.Split(line, " ")
		if cmd, ok := cmds[args[0]]; ok {
			cmd(m, args[1:])
		} else {
			panic(fmt.Errorf("Unknown command '%s'", args[0]))
		}
	}
}
