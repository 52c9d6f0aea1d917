package puzzle

import (
	"errors"
	"fmt"
)

var ErrUnsolvable = errors.New("goal is not reachable from the initial board")

// Number of tile pairs out of order, ignoring the blank
func inversions(s State) int {
	n := 0
	for i := 0; i < s.Size(); i++ {
		a := s.At(i)
		if a == 0 {
			continue
		}
		for j := i + 1; j < s.Size(); j++ {
			if b := s.At(j); b != 0 && a > b {
				n++
			}
		}
	}
	return n
}

// Every slide keeps this parity: for odd widths the inversion count, for even
// widths the inversion count plus the blank's row
func parity(s State) int {
	p := inversions(s)
	if s.width%2 == 0 {
		p += s.blank / s.width
	}
	return p % 2
}

// Whether goal can be reached from initial
func Solvable(initial, goal State) bool {
	if initial.width != goal.width || initial.IsZero() {
		return false
	}
	return parity(initial) == parity(goal)
}

func checkProblem(initial, goal State) error {
	if initial.IsZero() || goal.IsZero() {
		return fmt.Errorf("%w: empty board", ErrInvalidBoard)
	}
	if initial.Size() != goal.Size() {
		return fmt.Errorf("%w: initial has %d tiles, goal %d", ErrInvalidBoard, initial.Size(), goal.Size())
	}
	if !Solvable(initial, goal) {
		return fmt.Errorf("%w: %s -> %s", ErrUnsolvable, initial.Tuple(), goal.Tuple())
	}
	return nil
}
