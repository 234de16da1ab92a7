package main

import (
	"os"
	"time"

	"chip8emu/chip8"

	"github.com/veandco/go-sdl2/sdl"
)

const inputInterval time.Duration = time.Millisecond * 20

// Keyboard pumps SDL input events and answers the machine's key queries.
// Keys are tracked by keycap character, which is what the core's pad map
// speaks; press order is kept so FirstDown reports the oldest held key.
type Keyboard struct {
	lastPoll time.Time
	keysDown map[chip8.HostKey]bool
	order    []chip8.HostKey
}

func NewKeyboard() *Keyboard {
	return &Keyboard{keysDown: make(map[chip8.HostKey]bool)}
}

func (k *Keyboard) Tick(m *chip8.Chip8) {
	if time.Since(k.lastPoll) < inputInterval {
		return
	}

	k.lastPoll = time.Now()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			cleanupDevices()
			os.Exit(0)

		case *sdl.KeyboardEvent:
			sym := t.Keysym.Sym
			switch t.Type {
			case sdl.KEYDOWN:
				if sdl.K_F1 <= sym && sym <= sdl.K_F12 {
					fKey(m, int(sym-sdl.K_F1)+1)
					continue
				}
				if 0x20 <= sym && sym < 0x80 { // Printable ASCII keycap.
					k.Press(chip8.HostKey(sym))
				}
			case sdl.KEYUP:
				if 0x20 <= sym && sym < 0x80 {
					k.Release(chip8.HostKey(sym))
				}
			}
		}
	}
}

// Press marks a host key held. Also used by the script runner to inject
// input without a window.
func (k *Keyboard) Press(key chip8.HostKey) {
	if k.keysDown[key] {
		return
	}
	k.keysDown[key] = true
	k.order = append(k.order, key)
}

func (k *Keyboard) Release(key chip8.HostKey) {
	if !k.keysDown[key] {
		return
	}
	delete(k.keysDown, key)
	for i, held := range k.order {
		if held == key {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
}

// IsDown implements chip8.InputSource.
func (k *Keyboard) IsDown(key chip8.HostKey) bool {
	return k.keysDown[key]
}

// FirstDown implements chip8.InputSource, reporting the oldest held key.
func (k *Keyboard) FirstDown() (chip8.HostKey, bool) {
	if len(k.order) == 0 {
		return 0, false
	}
	return k.order[0], true
}

func (k *Keyboard) Cleanup() {}
