package hungarian

import (
	"fmt"

	"github.com/katalvlaran/munkres/matrix"
)

// augment grows the assignment by one along the alternating path that starts
// at origin, an uncovered Candidate in a row with no Confirmed mark.
//
// Implementation:
//   - Stage 1: walk Candidate → Confirmed in its column → Candidate in that
//     row → … until a column holds no Confirmed mark.
//   - Stage 2: flip the path: Confirmed → None, Candidate → Confirmed.
//   - Stage 3: erase all Candidates and covers, then cover every starred column.
//
// Returns phaseDone when all dim columns are covered, phaseFindZero otherwise.
//
// Complexity: O(dim²) (path walk is O(dim) steps of O(dim) lookups; the
// rebuild is O(dim²)).
func augment[T matrix.Float](st *state[T], origin cell) phase {
	path := buildPath(st, origin)

	for _, z := range path {
		if st.mark(z.row, z.col) == Confirmed {
			st.setMark(z.row, z.col, None)
		} else {
			st.setMark(z.row, z.col, Confirmed)
		}
	}

	st.rowCover.ClearAll()
	st.colCover.ClearAll()
	for i, k := range st.marks {
		switch k {
		case Candidate:
			st.marks[i] = None
		case Confirmed:
			st.colCover.Set(uint(i % st.dim))
		}
	}
	st.stats.Augmentations++

	if st.coverComplete() {
		return phaseDone
	}

	return phaseFindZero
}

// buildPath returns the alternating sequence origin, star, prime, star, …
// ending on a Candidate whose column has no Confirmed mark. Its length is odd
// and at most 2·dim−1.
//
// Every star reached this way sits in a covered row, and a row is only
// covered after receiving a prime, so the prime lookup cannot fail on a
// consistent state; a failure is a bug in the engine and panics.
func buildPath[T matrix.Float](st *state[T], origin cell) []cell {
	path := make([]cell, 1, 2*st.dim-1)
	path[0] = origin
	col := origin.col
	for {
		starRow, ok := st.findInCol(col, Confirmed)
		if !ok {
			return path
		}
		path = append(path, cell{row: starRow, col: col})

		primeCol, ok := st.findInRow(starRow, Candidate)
		if !ok {
			panic(fmt.Sprintf("hungarian: augmenting path broken: no candidate in row %d", starRow))
		}
		path = append(path, cell{row: starRow, col: primeCol})
		col = primeCol
	}
}
