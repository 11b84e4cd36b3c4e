package hungarian

import "github.com/katalvlaran/munkres/matrix"

// reduceRows subtracts each row's minimum (over all dim columns) from that
// row, leaving at least one zero per row and every entry ≥ 0. Inputs may be
// negative; only the relative order inside a row matters.
//
// Complexity: O(dim²).
func reduceRows[T matrix.Float](st *state[T]) {
	var (
		lo  T
		row []T
	)
	for r := 0; r < st.dim; r++ {
		row = st.rows[r]
		lo = row[0]
		for _, v := range row[1:] {
			if v < lo {
				lo = v
			}
		}
		if lo == 0 {
			continue
		}
		for c := range row {
			row[c] -= lo
		}
	}
}

// reduceColumns does the same per column. Run after reduceRows it only ever
// subtracts a non-negative amount.
//
// Complexity: O(dim²).
func reduceColumns[T matrix.Float](st *state[T]) {
	var lo T
	for c := 0; c < st.dim; c++ {
		lo = st.rows[0][c]
		for r := 1; r < st.dim; r++ {
			if st.rows[r][c] < lo {
				lo = st.rows[r][c]
			}
		}
		if lo == 0 {
			continue
		}
		for r := 0; r < st.dim; r++ {
			st.rows[r][c] -= lo
		}
	}
}
