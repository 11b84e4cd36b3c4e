package hungarian

import (
	"fmt"

	"github.com/katalvlaran/munkres/matrix"
)

// extract reads the Confirmed marks of rows [0, n) into a Result. A star in
// a padding column (c ≥ m) leaves the row Unassigned. The cost is summed from
// the caller's original matrix, so it carries the caller's sign whatever the
// mode.
//
// Finite costs can still sum past the range of T; that total is rejected
// with ErrNonFinite rather than returned.
//
// Complexity: O(n·dim).
func extract[T matrix.Float](st *state[T], cost matrix.Reader[T], n, m int) (Result[T], error) {
	res := Result[T]{
		Assignment: make([]int, n),
		Stats:      st.stats,
	}
	var (
		v   T
		err error
	)
	for r := 0; r < n; r++ {
		res.Assignment[r] = Unassigned
		c, ok := st.findInRow(r, Confirmed)
		if !ok || c >= m {
			continue
		}
		if v, err = cost.At(r, c); err != nil {
			return Result[T]{}, err
		}
		res.Assignment[r] = c
		res.Cost += v
	}
	if !matrix.IsFinite(res.Cost) {
		return Result[T]{}, fmt.Errorf("%w: total cost overflows (%v)", ErrNonFinite, res.Cost)
	}

	return res, nil
}
