package hungarian

import (
	"fmt"

	"github.com/katalvlaran/munkres/matrix"
)

// adjust subtracts the smallest uncovered value h from every uncovered column
// and adds it to every covered row:
//
//	row covered,   col covered   → +h
//	row covered,   col uncovered → +h −h = 0
//	row uncovered, col covered   → 0
//	row uncovered, col uncovered → −h
//
// Starred and primed zeros sit on exactly one covering line, so they stay
// zero; the cell that held h becomes a new uncovered zero. Marks and covers
// are left alone.
//
// Complexity: O(dim²).
func adjust[T matrix.Float](st *state[T]) phase {
	h := minUncovered(st)

	var (
		row        []T
		rowCovered bool
	)
	for r := 0; r < st.dim; r++ {
		row = st.rows[r]
		rowCovered = st.rowCovered(r)
		for c := 0; c < st.dim; c++ {
			colCovered := st.colCovered(c)
			switch {
			case rowCovered && colCovered:
				row[c] += h
			case !rowCovered && !colCovered:
				row[c] -= h
			}
		}
	}
	st.stats.Adjustments++

	return phaseFindZero
}

// minUncovered returns the smallest value whose row and column are both
// uncovered. With fewer than dim covering lines such a cell always exists;
// not finding one is a bug in the engine and panics.
//
// Complexity: O(dim²).
func minUncovered[T matrix.Float](st *state[T]) T {
	var (
		h     T
		found bool
	)
	for r := 0; r < st.dim; r++ {
		if st.rowCovered(r) {
			continue
		}
		for c, v := range st.rows[r] {
			if st.colCovered(c) {
				continue
			}
			if !found || v < h {
				h, found = v, true
			}
		}
	}
	if !found {
		panic(fmt.Sprintf("hungarian: no uncovered cell with %d rows and %d cols covered",
			st.rowCover.Count(), st.colCover.Count()))
	}

	return h
}
