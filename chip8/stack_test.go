package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStackRoundTrip(t *testing.T) {
	var s Stack

	for i := uint16(0); i < StackDepth; i++ {
		assert.NoError(t, s.Push(0x200+i*2))
	}
	assert.Equal(t, StackDepth, s.Size())

	// LIFO order.
	for i := StackDepth - 1; i >= 0; i-- {
		addr, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, 0x200+uint16(i)*2, addr)
	}
	assert.Equal(t, 0, s.Size())
}

func TestStackOverflow(t *testing.T) {
	var s Stack
	for i := 0; i < StackDepth; i++ {
		assert.NoError(t, s.Push(0x300))
	}

	err := s.Push(0x300)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	// The size counter must not be corrupted by the failed push.
	assert.Equal(t, StackDepth, s.Size())
}

func TestStackUnderflow(t *testing.T) {
	var s Stack
	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, 0, s.Size())
}

func TestStackReset(t *testing.T) {
	var s Stack
	assert.NoError(t, s.Push(0x234))
	s.Reset()
	assert.Equal(t, 0, s.Size())
	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}
