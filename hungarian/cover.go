package hungarian

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/munkres/matrix"
)

// findInitialMarks stars zeros greedily in row-major order, at most one per
// row and per column, and covers every starred column. It runs once.
//
// Row-major, first-match scanning makes the tie-break among equal optima
// deterministic: the same matrix always yields the same assignment.
//
// Complexity: O(dim²).
func findInitialMarks[T matrix.Float](st *state[T]) phase {
	starredRows := bitset.New(uint(st.dim))
	for r := 0; r < st.dim; r++ {
		row := st.rows[r]
		for c := 0; c < st.dim; c++ {
			if !st.isZero(row[c]) || starredRows.Test(uint(r)) || st.colCovered(c) {
				continue
			}
			st.setMark(r, c, Confirmed)
			starredRows.Set(uint(r))
			st.colCover.Set(uint(c)) // covered columns == starred columns here
			break
		}
	}

	if st.coverComplete() {
		return phaseDone
	}

	return phaseFindZero
}

// findUncoveredZero primes uncovered zeros until one lands in a row with no
// star (→ phaseAugment, returning that cell as the path origin) or no
// uncovered zero is left (→ phaseAdjust). A prime in a starred row covers the
// row and uncovers the star's column.
//
// Complexity: O(dim³) worst case: at most dim primes, O(dim²) scan each.
func findUncoveredZero[T matrix.Float](st *state[T]) (phase, cell) {
	for {
		z, ok := uncoveredZero(st)
		if !ok {
			return phaseAdjust, cell{}
		}
		st.setMark(z.row, z.col, Candidate)

		starCol, starred := st.findInRow(z.row, Confirmed)
		if !starred {
			return phaseAugment, z
		}
		st.rowCover.Set(uint(z.row))
		st.colCover.Clear(uint(starCol))
	}
}

// uncoveredZero returns the first zero, row-major, whose row and column are
// both uncovered.
//
// Complexity: O(dim²).
func uncoveredZero[T matrix.Float](st *state[T]) (cell, bool) {
	for r := 0; r < st.dim; r++ {
		if st.rowCovered(r) {
			continue
		}
		row := st.rows[r]
		for c := 0; c < st.dim; c++ {
			if !st.colCovered(c) && st.isZero(row[c]) {
				return cell{row: r, col: c}, true
			}
		}
	}

	return cell{}, false
}
