package hungarian

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/munkres/matrix"
)

// phase is the covering engine's state code.
type phase uint8

const (
	phaseInitialMarks phase = iota
	phaseFindZero
	phaseAugment
	phaseAdjust
	phaseDone
)

// String names the phase for logs.
func (p phase) String() string {
	switch p {
	case phaseInitialMarks:
		return "initial_marks"
	case phaseFindZero:
		return "find_zero"
	case phaseAugment:
		return "augment"
	case phaseAdjust:
		return "adjust"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// cell is a (row, col) coordinate in the working matrix.
type cell struct {
	row, col int
}

// state is everything one solve mutates. It is created per call, passed by
// pointer through the phase functions and dropped when the result is built.
type state[T matrix.Float] struct {
	dim      int
	work     *matrix.Dense[T] // dim×dim reduced costs
	rows     [][]T            // no-copy row views into work
	marks    []Mark           // dim×dim, row-major
	rowCover *bitset.BitSet   // len dim
	colCover *bitset.BitSet   // len dim
	tol      T                // |v| ≤ tol ⇒ v is zero
	stats    Stats
	log      zerolog.Logger
}

// newState allocates the working buffers for a dim×dim problem.
// dim must be ≥ 1.
//
// Complexity: O(dim²) time and memory.
func newState[T matrix.Float](dim int, log zerolog.Logger) (*state[T], error) {
	work, err := matrix.NewDense[T](dim, dim)
	if err != nil {
		return nil, err
	}
	st := &state[T]{
		dim:      dim,
		work:     work,
		rows:     make([][]T, dim),
		marks:    make([]Mark, dim*dim),
		rowCover: bitset.New(uint(dim)),
		colCover: bitset.New(uint(dim)),
		stats:    Stats{Dim: dim},
		log:      log,
	}
	for r := 0; r < dim; r++ {
		if st.rows[r], err = work.Row(r); err != nil {
			return nil, err
		}
	}

	return st, nil
}

// isZero applies the single tolerance policy of the engine.
func (st *state[T]) isZero(v T) bool {
	if v < 0 {
		v = -v
	}

	return v <= st.tol
}

func (st *state[T]) mark(r, c int) Mark { return st.marks[r*st.dim+c] }

func (st *state[T]) setMark(r, c int, k Mark) { st.marks[r*st.dim+c] = k }

// findInRow returns the column of the first k mark in row r.
// Complexity: O(dim).
func (st *state[T]) findInRow(r int, k Mark) (int, bool) {
	base := r * st.dim
	for c := 0; c < st.dim; c++ {
		if st.marks[base+c] == k {
			return c, true
		}
	}

	return 0, false
}

// findInCol returns the row of the first k mark in column c.
// Complexity: O(dim).
func (st *state[T]) findInCol(c int, k Mark) (int, bool) {
	for r := 0; r < st.dim; r++ {
		if st.marks[r*st.dim+c] == k {
			return r, true
		}
	}

	return 0, false
}

// rowCovered and colCovered hide the uint conversions of the bit sets.
func (st *state[T]) rowCovered(r int) bool { return st.rowCover.Test(uint(r)) }
func (st *state[T]) colCovered(c int) bool { return st.colCover.Test(uint(c)) }

// coverComplete is the halting test: dim covered columns means dim
// independent Confirmed marks.
func (st *state[T]) coverComplete() bool {
	return st.colCover.Count() == uint(st.dim)
}

// logPhase emits one debug event per transition and, at trace level, the
// rendered state.
func (st *state[T]) logPhase(from, to phase) {
	if e := st.log.Debug(); e.Enabled() {
		e.Stringer("from", from).
			Stringer("to", to).
			Int("dim", st.dim).
			Uint("rows_covered", st.rowCover.Count()).
			Uint("cols_covered", st.colCover.Count()).
			Int("augmentations", st.stats.Augmentations).
			Int("adjustments", st.stats.Adjustments).
			Msg("hungarian: phase")
	}
	if e := st.log.Trace(); e.Enabled() {
		e.Stringer("phase", to).Msg("hungarian: state\n" + render(st))
	}
}
