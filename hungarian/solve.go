// Package hungarian - entry points and the covering loop.
//
// This file provides the canonical entry points:
//
//   - Solve: accept [][]T with declared n, m and a Mode.
//   - SolveMatrix: accept any matrix.Reader[T]; n and m are its shape.
//
// Both validate everything up front, then run the same engine:
// build → reduce → initial marks → (find zero ⇄ augment | adjust)* → extract.
package hungarian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/munkres/matrix"
)

// Solve finds an optimal one-to-one pairing of the n rows of cost with its m
// columns.
//
// Contracts:
//   - mode is Minimize or Maximize (checked first; ErrInvalidMode).
//   - cost has exactly n rows of exactly m finite values (ErrShapeMismatch,
//     ErrNonFinite; both match ErrMalformedInput).
//   - costs leave headroom for the working matrix (|cost| ≤ MaxFloat/4 of
//     T), and the optimal total fits in T; otherwise ErrNonFinite.
//   - n == 0 or m == 0 is not an error: the result has cost 0 and n
//     Unassigned rows.
//
// The caller's matrix is never modified. On error the Result is zero.
//
// Complexity: O(dim³) time, O(dim²) memory, dim = max(n, m).
func Solve[T matrix.Float](cost [][]T, n, m int, mode Mode, opts ...Option) (Result[T], error) {
	if !mode.valid() {
		return Result[T]{}, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	if err := matrix.ValidateRows(cost, n, m); err != nil {
		return Result[T]{}, inputError(err)
	}

	return solve[T](rowsReader[T](cost), n, m, mode, gatherOptions(opts))
}

// SolveMatrix is Solve for a matrix.Reader; n and m are cost.Rows() and
// cost.Cols(). A nil reader is ErrShapeMismatch.
//
// Complexity: as Solve, plus one O(n·m) validation pass through At.
func SolveMatrix[T matrix.Float](cost matrix.Reader[T], mode Mode, opts ...Option) (Result[T], error) {
	if !mode.valid() {
		return Result[T]{}, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	if err := matrix.ValidateFinite(cost); err != nil {
		return Result[T]{}, inputError(err)
	}

	return solve(cost, cost.Rows(), cost.Cols(), mode, gatherOptions(opts))
}

// solve runs the engine on validated input.
func solve[T matrix.Float](cost matrix.Reader[T], n, m int, mode Mode, o Options) (Result[T], error) {
	if n == 0 || m == 0 {
		return degenerate[T](n), nil
	}
	dim := max(n, m)
	if o.maxDim > 0 && dim > o.maxDim {
		return Result[T]{}, fmt.Errorf("%w: dim %d > %d", ErrDimensionLimit, dim, o.maxDim)
	}

	// input is validated; errors below come from the engine or the
	// Reader itself and are returned as they are
	st, err := newState[T](dim, o.log)
	if err != nil {
		return Result[T]{}, err
	}
	if err = buildWorking(st, cost, n, m, mode, o.eps); err != nil {
		return Result[T]{}, err
	}
	reduceRows(st)
	if o.columnReduction {
		reduceColumns(st)
	}

	run(st)

	res, err := extract(st, cost, n, m)
	if err != nil {
		return Result[T]{}, err
	}
	o.log.Debug().
		Stringer("mode", mode).
		Int("n", n).
		Int("m", m).
		Int("augmentations", res.Stats.Augmentations).
		Int("adjustments", res.Stats.Adjustments).
		Msg("hungarian: solved")

	return res, nil
}

// run drives the covering state machine until the cover is complete.
// The path origin travels explicitly from phaseFindZero into phaseAugment.
func run[T matrix.Float](st *state[T]) {
	var (
		cur    = phaseInitialMarks
		next   phase
		origin cell
	)
	for cur != phaseDone {
		switch cur {
		case phaseInitialMarks:
			next = findInitialMarks(st)
		case phaseFindZero:
			next, origin = findUncoveredZero(st)
		case phaseAugment:
			next = augment(st, origin)
		case phaseAdjust:
			next = adjust(st)
		}
		st.logPhase(cur, next)
		cur = next
	}
}

// degenerate is the result for n == 0 or m == 0.
func degenerate[T matrix.Float](n int) Result[T] {
	res := Result[T]{Assignment: make([]int, n)}
	for i := range res.Assignment {
		res.Assignment[i] = Unassigned
	}

	return res
}

// inputError maps validation failures (matrix sentinels) onto this
// package's sentinels, keeping the original in the chain.
func inputError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrNonFinite, err)
	case errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrNilMatrix),
		errors.Is(err, matrix.ErrOutOfRange):
		return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	default:
		return err
	}
}

// rowsReader adapts a validated [][]T to matrix.Reader without copying.
type rowsReader[T matrix.Float] [][]T

func (r rowsReader[T]) Rows() int { return len(r) }

func (r rowsReader[T]) Cols() int {
	if len(r) == 0 {
		return 0
	}

	return len(r[0])
}

func (r rowsReader[T]) At(i, j int) (T, error) {
	if i < 0 || i >= len(r) || j < 0 || j >= len(r[i]) {
		return 0, fmt.Errorf("rowsReader.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}

	return r[i][j], nil
}
