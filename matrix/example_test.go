package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/munkres/matrix"
)

// ExampleFromRows builds a Dense from nested slices and edits one row in place.
func ExampleFromRows() {
	d, err := matrix.FromRows([][]float64{
		{3, 7, 5},
		{5, 4, 6},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	row, _ := d.Row(1)
	row[2] = 0
	fmt.Print(d)
	// Output:
	// [3, 7, 5]
	// [5, 4, 0]
}
