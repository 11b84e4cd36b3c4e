// Package hungarian solves the rectangular linear assignment problem with the
// Kuhn–Munkres (Hungarian) algorithm.
//
// Given an n×m cost matrix, Solve pairs rows with columns one-to-one (every
// row with at most one column, every column with at most one row) so that the
// sum of the selected costs is minimal, or maximal under Maximize.
//
//	res, err := hungarian.Solve([][]float64{
//		{3, 7, 5, 11},
//		{5, 4, 6, 3},
//		{6, 10, 1, 1},
//	}, 3, 4, hungarian.Minimize)
//	// res.Cost == 7, res.Assignment == []int{0, 3, 2}
//
// How it works:
//
//   - The input is padded with zeros to a dim×dim square, dim = max(n, m),
//     and negated for Maximize.
//   - Row minima are subtracted (optionally column minima too).
//   - A state machine stars independent zeros, covers their columns, and
//     alternates between priming uncovered zeros, flipping augmenting paths
//     and shifting the matrix by the smallest uncovered value, until dim
//     columns are covered (König's theorem: the stars are then optimal).
//   - The stars of the first n rows are read back; padding columns become
//     Unassigned. Cost is summed from the caller's original matrix.
//
// Complexity: O(dim³) time, O(dim²) memory. WithMaxDim bounds dim, and with
// it the latency of a call.
//
// Numeric policy: every zero test uses one absolute tolerance, by default the
// machine epsilon of the element type scaled by max(1, max|cost|).
// WithEpsilon fixes it explicitly.
//
// Ties: when several optimal pairings exist, the one returned is decided by
// row-major, first-match scanning. It is deterministic for a given input and
// option set, but is not otherwise specified.
//
// Concurrency: every call owns all of its state; Solve and SolveMatrix are
// safe for concurrent use. Calls are synchronous and cannot be interrupted.
//
// Errors: ErrInvalidMode, ErrMalformedInput (ErrShapeMismatch, ErrNonFinite)
// and ErrDimensionLimit, all matched with errors.Is. No partial result is
// ever returned with an error.
package hungarian
