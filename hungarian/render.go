package hungarian

import (
	"strings"

	"github.com/katalvlaran/munkres/matrix"
)

// render draws the working matrix, the mark grid and the cover grid of st,
// one block after another. '*' is a Confirmed mark, '\'' a Candidate and
// '.' an unmarked cell; in the cover grid '#' is a cell on a covered line.
//
// Complexity: O(dim²).
func render[T matrix.Float](st *state[T]) string {
	var b strings.Builder
	r, c := 0, 0

	b.WriteString("working:\n")
	b.WriteString(st.work.String())

	b.WriteString("marks:\n")
	for r = 0; r < st.dim; r++ {
		for c = 0; c < st.dim; c++ {
			b.WriteByte(st.mark(r, c).symbol())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	b.WriteString("cover:\n")
	for r = 0; r < st.dim; r++ {
		for c = 0; c < st.dim; c++ {
			if st.rowCovered(r) || st.colCovered(c) {
				b.WriteString("# ")
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
