package machine

// StackDepth is the number of nested subroutine calls.
const StackDepth = 16

// Stack holds the return addresses of active subroutine calls.
type Stack struct {
	entries [StackDepth]uint16
	sp      uint8
}

func (s *Stack) push(addr uint16) error {
	if s.sp == StackDepth {
		return ErrStackOverflow
	}
	s.entries[s.sp] = addr
	s.sp++
	return nil
}

func (s *Stack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.entries[s.sp], nil
}

// Len returns the number of return addresses on the stack.
func (s *Stack) Len() int {
	return int(s.sp)
}
