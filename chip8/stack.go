package chip8

import "errors"

// StackDepth is the call stack capacity in return addresses.
const StackDepth = 16

var (
	// ErrStackOverflow is returned when a CALL would push a 17th return address.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when a RET executes with no pending call.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// Stack is the fixed-depth return address stack used by 2nnn/00EE. Both
// failure modes are surfaced as errors rather than corrupting the size
// counter; they are fatal to execution.
type Stack struct {
	addrs [StackDepth]uint16
	size  int
}

func (s *Stack) Push(addr uint16) error {
	if s.size >= StackDepth {
		return ErrStackOverflow
	}
	s.addrs[s.size] = addr
	s.size++
	return nil
}

func (s *Stack) Pop() (uint16, error) {
	if s.size == 0 {
		return 0, ErrStackUnderflow
	}
	s.size--
	return s.addrs[s.size], nil
}

func (s *Stack) Size() int {
	return s.size
}

func (s *Stack) Reset() {
	*s = Stack{}
}
