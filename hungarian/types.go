package hungarian

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/munkres/matrix"
)

// Unassigned marks a row that received no real column (n > m padding).
const Unassigned = -1

// Mode selects the optimization direction.
type Mode int

const (
	// Minimize finds the pairing with the smallest total cost.
	Minimize Mode = iota

	// Maximize finds the pairing with the largest total cost. Costs are
	// negated on the working copy; the caller's matrix is never touched.
	Maximize
)

// String returns the canonical lowercase name of m.
func (m Mode) String() string {
	switch m {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// valid reports whether m is one of the declared modes.
func (m Mode) valid() bool { return m == Minimize || m == Maximize }

// ParseMode maps "min"/"minimize" and "max"/"maximize" (any case) to a Mode.
// Any other input yields ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimize":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Mark is the per-cell state of the covering engine.
type Mark uint8

const (
	// None is an unmarked cell.
	None Mark = iota

	// Confirmed is a starred zero: part of the current partial assignment.
	// At most one per row and per column.
	Confirmed

	// Candidate is a primed zero found while searching for an augmenting path.
	// Candidates never survive an augmentation.
	Candidate
)

// symbol is the one-character rendering of a mark used by render.
func (k Mark) symbol() byte {
	switch k {
	case Confirmed:
		return '*'
	case Candidate:
		return '\''
	default:
		return '.'
	}
}

// Pair is one selected (row, column) cell.
type Pair struct {
	Row, Col int
}

// Stats counts the phase transitions of one solve.
type Stats struct {
	// Dim is the padded square dimension, max(n, m).
	Dim int `json:"dim" cbor:"dim"`

	// Augmentations is the number of augmenting paths flipped.
	Augmentations int `json:"augmentations" cbor:"augmentations"`

	// Adjustments is the number of matrix adjustments performed.
	Adjustments int `json:"adjustments" cbor:"adjustments"`
}

// Result holds the outcome of one solve.
type Result[T matrix.Float] struct {
	// Cost is the sum of the original (unpadded, unsigned) costs of the
	// selected cells.
	Cost T

	// Assignment has one entry per input row: the assigned column, or
	// Unassigned when the row was paired with a padding column.
	Assignment []int

	// Stats describes the work performed; zero for degenerate inputs.
	Stats Stats
}

// Pairs returns the assigned cells in ascending row order, skipping
// Unassigned rows.
//
// Complexity: O(n).
func (r Result[T]) Pairs() []Pair {
	out := make([]Pair, 0, len(r.Assignment))
	for row, col := range r.Assignment {
		if col == Unassigned {
			continue
		}
		out = append(out, Pair{Row: row, Col: col})
	}

	return out
}
