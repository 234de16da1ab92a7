package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"chip8emu/chip8"
	"chip8emu/common"

	"github.com/retroenv/retrogolib/log"
)

func dumpDeviceList() {
	for name, desc := range deviceDescriptions {
		fmt.Printf("%-20s %s\n", name, desc)
	}
}

// Turbo removes the instruction rate limit. Timers still tick at 60Hz.
var Turbo bool

func main() {
	deviceList := flag.String("hw", "display,keyboard",
		"List of hardware devices. See -dump-hw for a list of devices.")
	dumpDevices := flag.Bool("dump-hw", false,
		"Dump a list of hardware devices and exit.")
	disassemble := flag.Bool("disassemble", false, "Disassemble the ROM to stdout")
	turboFlag := flag.Bool("turbo", false,
		"True to start in turbo (unlimited speed) mode. Default: false.")
	cps := flag.Int("cps", 500, "Instruction rate in cycles per second.")
	seed := flag.Int64("seed", 0, "Seed for the Cxkk random generator (0 seeds from the clock).")
	script := flag.String("script", "", "Script file to run.")
	debugLog := flag.Bool("debug", false, "Enable debug logging.")
	quiet := flag.Bool("q", false, "Only log errors.")

	flag.Parse()

	logger := createLogger(*debugLog, *quiet)

	if *dumpDevices {
		dumpDeviceList()
		return
	}

	romFile := flag.Arg(0)
	if romFile == "" {
		fmt.Printf("Usage: %s [options] <ROM file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	rom, err := os.ReadFile(romFile)
	if err != nil {
		logger.Fatal("failed to open ROM file", log.Err(err))
	}

	m := chip8.New(logger)
	if err := m.LoadROM(rom); err != nil {
		logger.Fatal("failed to load ROM", log.Err(err))
	}
	if *seed != 0 {
		m.SeedRandom(*seed)
	}

	logger.Info("loaded ROM",
		log.String("file", romFile),
		log.Int("bytes", len(rom)))

	if *disassemble {
		m.Disassemble()
		return
	}

	common.InputReader = bufio.NewReader(os.Stdin)

	for _, d := range strings.Split(*deviceList, ",") {
		if d == "" {
			continue
		}
		if dt, ok := deviceTypes[d]; ok {
			logger.Debug("loading device", log.String("device", d))
			activeDevices = append(activeDevices, dt())
		} else {
			fmt.Printf("Unknown device: %s\n", d)
			dumpDeviceList()
			return
		}
	}

	var input chip8.InputSource
	for _, d := range activeDevices {
		if kb, ok := d.(*Keyboard); ok {
			input = kb
		}
	}
	m.SetInput(input)

	Turbo = *turboFlag

	if *script != "" {
		RunScript(m, *script)
	}

	run(m, input, logger, *cps)
}

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// run drives the machine: one Step per tick, devices and timers serviced in
// between. The interpreter never runs on its own; this loop is the clock.
func run(m *chip8.Chip8, input chip8.InputSource, logger *log.Logger, cps int) {
	if cps <= 0 {
		cps = 500
	}
	ticker := time.Tick(time.Second / time.Duration(cps))
	last := time.Now()

	// Repeatedly try to run the machine, stopping on a debug to show the
	// console.
	for {
		for !*m.Debugging() {
			for _, d := range activeDevices {
				d.Tick(m)
			}

			now := time.Now()
			m.TickTimers(now.Sub(last))
			last = now

			if err := m.Step(input); err != nil {
				logger.Fatal("machine fault", log.Err(err))
			}

			if !Turbo {
				<-ticker
			}
		}

		debugConsole(m)
		last = time.Now()
	}
}
