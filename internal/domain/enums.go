package domain

import "fmt"

// CellState is the feedback for one letter of one guess.
type CellState int

const (
	Absent  CellState = iota // letter not in the word (see exact-count deduction)
	Present                  // in the word, not at this position
	Correct                  // at this exact position
)

// Next cycles Absent -> Present -> Correct -> Absent.
func (s CellState) Next() CellState {
	return (s + 1) % 3
}

// Mask returns the single-character form used on the command line.
func (s CellState) Mask() byte {
	switch s {
	case Present:
		return 'y'
	case Correct:
		return 'g'
	default:
		return 'b'
	}
}

func (s CellState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// ParseState maps a mask character to a state.
func ParseState(c rune) (CellState, bool) {
	switch c {
	case 'b', 'B', '-', '.':
		return Absent, true
	case 'y', 'Y', '?':
		return Present, true
	case 'g', 'G', '+':
		return Correct, true
	default:
		return Absent, false
	}
}
