package chip8

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimerTick(t *testing.T) {
	tests := []struct {
		name      string
		delay     byte
		sound     byte
		elapsed   time.Duration
		wantDelay byte
		wantSound byte
	}{
		{name: "one interval", delay: 10, elapsed: timerInterval, wantDelay: 9},
		{name: "n intervals", delay: 10, elapsed: 4 * timerInterval, wantDelay: 6},
		{name: "under one interval", delay: 10, elapsed: timerInterval - time.Millisecond, wantDelay: 10},
		{name: "zero stays zero", delay: 0, elapsed: 10 * timerInterval, wantDelay: 0},
		{name: "clamped at zero", delay: 2, elapsed: 5 * timerInterval, wantDelay: 0},
		{name: "both decrement", delay: 5, sound: 3, elapsed: 2 * timerInterval, wantDelay: 3, wantSound: 1},
		{name: "independent clamp", delay: 5, sound: 1, elapsed: 3 * timerInterval, wantDelay: 2, wantSound: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Timers{Delay: tt.delay, Sound: tt.sound}
			tm.Tick(tt.elapsed)
			assert.Equal(t, tt.wantDelay, tm.Delay)
			assert.Equal(t, tt.wantSound, tm.Sound)
		})
	}
}

// Partial intervals carry over between calls instead of being dropped.
func TestTimerAccumulates(t *testing.T) {
	tm := Timers{Delay: 10}

	tm.Tick(timerInterval / 2)
	assert.Equal(t, byte(10), tm.Delay)

	tm.Tick(timerInterval / 2)
	assert.Equal(t, byte(9), tm.Delay)
}

// Ticking faster than 60Hz decrements no faster than 60Hz.
func TestTimerRateIndependence(t *testing.T) {
	tm := Timers{Delay: 60}
	for i := 0; i < 120; i++ {
		tm.Tick(timerInterval / 2)
	}
	assert.Equal(t, byte(0), tm.Delay)

	tm = Timers{Delay: 60}
	for i := 0; i < 100; i++ {
		tm.Tick(timerInterval / 2)
	}
	assert.Equal(t, byte(10), tm.Delay)
}

func TestTimerReset(t *testing.T) {
	tm := Timers{Delay: 3, Sound: 4}
	tm.Tick(timerInterval / 2)
	tm.Reset()
	assert.Equal(t, byte(0), tm.Delay)
	assert.Equal(t, byte(0), tm.Sound)

	// The interval accumulator is cleared too.
	tm.Delay = 5
	tm.Tick(timerInterval / 2)
	assert.Equal(t, byte(5), tm.Delay)
}
