package hungarian

import (
	"fmt"

	"github.com/katalvlaran/munkres/matrix"
)

// headroom bounds the growth of working values relative to max|cost|:
// reduced costs span at most twice the cost magnitude, and adjustments can
// roughly double that again on doubly covered cells.
const headroom = 4

// buildWorking copies cost into st.work, negating for Maximize; padding cells
// stay 0. It also derives the zero tolerance from the cost magnitudes unless
// eps overrides it.
//
// Costs so large that the working values could overflow T are rejected with
// ErrNonFinite.
//
// Contract: cost is n×m, finite, and dim = max(n, m) = st.dim.
//
// Complexity: O(dim²).
func buildWorking[T matrix.Float](st *state[T], cost matrix.Reader[T], n, m int, mode Mode, eps float64) error {
	var (
		sign = T(1)
		v    T
		err  error
	)
	if mode == Maximize {
		sign = -1
	}
	for r := 0; r < n; r++ {
		for c := 0; c < m; c++ {
			if v, err = cost.At(r, c); err != nil {
				return err
			}
			st.rows[r][c] = sign * v
		}
	}

	// negation and zero padding leave the largest magnitude unchanged
	maxAbs := matrix.MaxAbs(st.rows)
	if !matrix.IsFinite(maxAbs * headroom) {
		return fmt.Errorf("%w: max |cost| %v leaves no headroom in the working matrix", ErrNonFinite, maxAbs)
	}
	st.tol = tolerance(maxAbs, eps)

	return nil
}

// tolerance is eps when set, else machine epsilon of T scaled by the cost
// magnitude (at least 1): one unit in the last place of the largest cost.
//
// Reduction and adjustment only ever subtract a value from one at least as
// large, so reduced costs stay ≥ 0 and new zeros come out exact. Costs that
// differ by more than one ulp of the largest cost are never confused.
func tolerance[T matrix.Float](maxAbs T, eps float64) T {
	if eps > 0 {
		return T(eps)
	}
	scale := maxAbs
	if scale < 1 {
		scale = 1
	}

	return matrix.Epsilon[T]() * scale
}
