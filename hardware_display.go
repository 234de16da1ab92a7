package main

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"time"

	"chip8emu/chip8"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	scaleFactor   = 10
	frameInterval = time.Second / 60
)

const (
	pixelOn  uint32 = 0xffffffff
	pixelOff uint32 = 0xff000000
)

// Display presents the machine's framebuffer in an SDL window through a
// streaming texture, one texture texel per CHIP-8 pixel, scaled up on copy.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	lastFrame time.Time
}

func (disp *Display) Tick(m *chip8.Chip8) {
	if time.Since(disp.lastFrame) < frameInterval {
		return
	}

	pixels, pitch, err := disp.texture.Lock(nil)
	if err != nil {
		panic(fmt.Errorf("error locking texture: %v", err))
	}

	paintFramebuffer(pixels, pitch, m.Framebuffer())

	// Fully painted, now flip the texture onto the display.
	disp.texture.Unlock()
	err = disp.renderer.Clear()
	if err != nil {
		panic(fmt.Errorf("failed to clear renderer: %v", err))
	}
	err = disp.renderer.Copy(disp.texture,
		&sdl.Rect{X: 0, Y: 0, W: chip8.DisplayWidth, H: chip8.DisplayHeight},
		&sdl.Rect{X: 0, Y: 0, W: chip8.DisplayWidth * scaleFactor, H: chip8.DisplayHeight * scaleFactor})
	if err != nil {
		panic(fmt.Errorf("failed to copy texture: %v", err))
	}

	disp.renderer.Present()
	disp.lastFrame = time.Now()
}

// paintFramebuffer renders the pixel grid into a locked ARGB8888 texture
// buffer, one uint32 texel per pixel, rows separated by pitch bytes.
func paintFramebuffer(buf []byte, pitch int, fb [chip8.DisplayHeight][chip8.DisplayWidth]byte) {
	for y := 0; y < chip8.DisplayHeight; y++ {
		row := buf[y*pitch:]
		for x := 0; x < chip8.DisplayWidth; x++ {
			c := pixelOff
			if fb[y][x] != 0 {
				c = pixelOn
			}
			binary.LittleEndian.PutUint32(row[x*4:], c)
		}
	}
}

func (disp *Display) Cleanup() {
	if disp.texture != nil {
		disp.texture.Destroy()
	}
	if disp.renderer != nil {
		disp.renderer.Destroy()
	}
	if disp.window != nil {
		disp.window.Destroy()
	}
}

func NewDisplay() *Display {
	disp := new(Display)

	disp.lastFrame = time.Now()

	runtime.LockOSThread() // Latch this goroutine to the same thread for SDL.
	sdl.Init(sdl.INIT_VIDEO)
	window, err := sdl.CreateWindow("CHIP-8", sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, chip8.DisplayWidth*scaleFactor,
		chip8.DisplayHeight*scaleFactor, sdl.WINDOW_SHOWN)
	if err != nil {
		panic(fmt.Errorf("failed to create window: %v", err))
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		panic(fmt.Errorf("failed to create renderer: %v", err))
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, chip8.DisplayWidth, chip8.DisplayHeight)
	if err != nil {
		panic(fmt.Errorf("failed to create texture: %v", err))
	}

	disp.window = window
	disp.renderer = renderer
	disp.texture = texture
	return disp
}
