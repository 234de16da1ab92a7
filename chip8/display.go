package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer is the 64x32 monochrome pixel grid. Pixels are one byte each
// for convenience but only ever hold 0 or 1. Sprite drawing XORs pixels and
// wraps coordinates; nothing else writes the grid except Clear.
type Framebuffer struct {
	pixels [DisplayHeight][DisplayWidth]byte
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.pixels = [DisplayHeight][DisplayWidth]byte{}
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates wrap.
func (fb *Framebuffer) Pixel(x, y int) bool {
	return fb.pixels[y%DisplayHeight][x%DisplayWidth] != 0
}

// Draw XORs an 8-bit-wide sprite onto the grid at (x, y), one byte per row,
// MSB leftmost, wrapping both coordinates. It returns 1 if any toggle turned
// a lit pixel off during this call, else 0. Collision is checked against the
// post-XOR state of every toggled pixel, not just the last one.
func (fb *Framebuffer) Draw(x, y byte, sprite []byte) byte {
	var collision byte
	for row, bits := range sprite {
		py := (int(y) + row) % DisplayHeight
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % DisplayWidth
			fb.pixels[py][px] ^= 1
			if fb.pixels[py][px] == 0 {
				collision = 1
			}
		}
	}
	return collision
}

// Snapshot returns a copy of the pixel grid for presentation.
func (fb *Framebuffer) Snapshot() [DisplayHeight][DisplayWidth]byte {
	return fb.pixels
}
