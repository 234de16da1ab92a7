package chip8

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFramebufferDraw(t *testing.T) {
	var fb Framebuffer

	collision := fb.Draw(2, 1, []byte{0b10100000, 0b01000000})
	if collision != 0 {
		t.Errorf("collision = %d on an empty grid, want 0", collision)
	}

	var want [DisplayHeight][DisplayWidth]byte
	want[1][2] = 1
	want[1][4] = 1
	want[2][3] = 1
	if diff := cmp.Diff(want, fb.Snapshot()); diff != "" {
		t.Errorf("pixels: (-want, +got)\n%s", diff)
	}
}

// XOR is self-inverse: the second identical draw restores the pre-draw
// state, and every erased pixel counts as a collision.
func TestFramebufferDrawTwice(t *testing.T) {
	var fb Framebuffer

	sprite := []byte{0xF0, 0x90, 0xF0}
	if c := fb.Draw(10, 4, sprite); c != 0 {
		t.Errorf("first draw collision = %d, want 0", c)
	}
	if c := fb.Draw(10, 4, sprite); c != 1 {
		t.Errorf("second draw collision = %d, want 1", c)
	}
	if diff := cmp.Diff([DisplayHeight][DisplayWidth]byte{}, fb.Snapshot()); diff != "" {
		t.Errorf("grid not restored: (-want, +got)\n%s", diff)
	}
}

// A draw that only adds pixels next to an existing sprite reports no
// collision; one that erases any pixel reports it no matter which row.
func TestFramebufferCollision(t *testing.T) {
	var fb Framebuffer

	fb.Draw(0, 0, []byte{0x80}) // single pixel at (0,0)

	if c := fb.Draw(1, 0, []byte{0x80}); c != 0 {
		t.Errorf("adjacent draw collision = %d, want 0", c)
	}
	if c := fb.Draw(0, 0, []byte{0x80, 0x80}); c != 1 {
		t.Errorf("overlapping draw collision = %d, want 1", c)
	}
	// (0,0) toggled off, (0,1) toggled on.
	if fb.Pixel(0, 0) {
		t.Errorf("pixel (0,0) still lit")
	}
	if !fb.Pixel(0, 1) {
		t.Errorf("pixel (0,1) not lit")
	}
}

func TestFramebufferWraparound(t *testing.T) {
	var fb Framebuffer

	fb.Draw(DisplayWidth-2, DisplayHeight-1, []byte{0xF0, 0xF0})

	// Columns 62, 63 wrap to 0, 1; row 31 wraps to 0.
	for _, p := range [][2]int{
		{DisplayWidth - 2, DisplayHeight - 1},
		{DisplayWidth - 1, DisplayHeight - 1},
		{0, DisplayHeight - 1},
		{1, DisplayHeight - 1},
		{DisplayWidth - 2, 0},
		{DisplayWidth - 1, 0},
		{0, 0},
		{1, 0},
	} {
		if !fb.Pixel(p[0], p[1]) {
			t.Errorf("pixel (%d,%d) not lit after wrapping draw", p[0], p[1])
		}
	}
}

func TestFramebufferClear(t *testing.T) {
	var fb Framebuffer
	fb.Draw(5, 5, []byte{0xFF, 0xFF})

	fb.Clear()
	if diff := cmp.Diff([DisplayHeight][DisplayWidth]byte{}, fb.Snapshot()); diff != "" {
		t.Errorf("clear left pixels: (-want, +got)\n%s", diff)
	}
}

// Snapshot returns a copy; mutating it must not affect the framebuffer.
func TestFramebufferSnapshotIsCopy(t *testing.T) {
	var fb Framebuffer
	snap := fb.Snapshot()
	snap[0][0] = 1
	if fb.Pixel(0, 0) {
		t.Errorf("mutating the snapshot changed the framebuffer")
	}
}
