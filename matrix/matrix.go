// Package matrix defines the core Reader interface for dense numeric work.
//
// What & Why:
//
//	Reader is the minimal read-only surface consumed by solvers that only need to
//	inspect a caller-owned matrix. It is generic over the Float constraint so the
//	same kernels serve float32 and float64 inputs without conversion.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() performs bounds checking in O(1) time, returning an error on invalid indices.
package matrix

import "golang.org/x/exp/constraints"

// Float is the element constraint for every matrix in this package.
// Any type whose underlying type is float32 or float64 satisfies it.
type Float interface {
	constraints.Float
}

// Reader is a read-only two-dimensional view of T values.
type Reader[T Float] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)
}

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value. It is 2⁻²³ for float32 and 2⁻⁵² for float64.
//
// The explicit conversions force rounding to T on every step, so the loop
// never observes extended precision.
//
// Complexity: O(mantissa bits).
func Epsilon[T Float]() T {
	var (
		one  = T(1)
		eps  = T(1)
		half T
	)
	for {
		half = T(eps / 2)
		if T(one+half) == one {
			return eps
		}
		eps = half
	}
}

// MaxAbs returns the largest absolute value in rows, or 0 for an empty input.
// Complexity: O(Σ len(rows[i])).
func MaxAbs[T Float](rows [][]T) T {
	var (
		best T
		v    T
		i, j int
	)
	for i = range rows { // fixed row order
		for j = range rows[i] {
			v = rows[i][j]
			if v < 0 {
				v = -v
			}
			if v > best {
				best = v
			}
		}
	}

	return best
}
