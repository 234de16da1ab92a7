package main

import "chip8emu/chip8"

// device is a host peripheral serviced once per host loop iteration.
type device interface {
	Tick(m *chip8.Chip8)
	Cleanup()
}

var deviceTypes = map[string]func() device{
	"display":  func() device { return NewDisplay() },
	"keyboard": func() device { return NewKeyboard() },
}

var deviceDescriptions = map[string]string{
	"display":  "SDL window presenting the 64x32 framebuffer",
	"keyboard": "SDL keyboard mapped to the 16-key pad",
}

var activeDevices []device

func cleanupDevices() {
	for _, d := range activeDevices {
		d.Cleanup()
	}
}
