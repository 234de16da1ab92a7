package chip8

import "time"

// Both timers count down at 60Hz regardless of how fast instructions run.
const timerInterval = time.Second / 60

// Timers holds the delay and sound countdown counters. They are advanced by
// elapsed wall-clock durations handed in by the host loop, never by a clock
// of their own, so the decrement logic is deterministic under test.
type Timers struct {
	Delay byte
	Sound byte

	acc time.Duration
}

// Tick credits elapsed time and decrements each nonzero counter once per
// full 1/60s interval accumulated. Partial intervals carry over to the next
// call, so splitting a duration across calls never changes the result.
func (t *Timers) Tick(elapsed time.Duration) {
	t.acc += elapsed
	for t.acc >= timerInterval {
		t.acc -= timerInterval
		if t.Delay > 0 {
			t.Delay--
		}
		if t.Sound > 0 {
			t.Sound--
		}
	}
}

func (t *Timers) Reset() {
	*t = Timers{}
}
