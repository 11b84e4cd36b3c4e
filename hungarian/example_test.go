package hungarian_test

import (
	"fmt"

	"github.com/katalvlaran/munkres/hungarian"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three workers, four jobs. Each worker takes at most one job and each job
//	goes to at most one worker; one job stays open.
//
// Complexity: O(dim³), dim = max(3, 4).
func ExampleSolve() {
	cost := [][]float64{
		{3, 7, 5, 11},
		{5, 4, 6, 3},
		{6, 10, 1, 1},
	}

	res, err := hungarian.Solve(cost, 3, 4, hungarian.Minimize)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%g assignment=%v\n", res.Cost, res.Assignment)
	// Output:
	// cost=7 assignment=[0 3 2]
}

// ExampleSolve_maximize flips the objective on the same matrix.
func ExampleSolve_maximize() {
	cost := [][]float64{
		{3, 7, 5, 11},
		{5, 4, 6, 3},
		{6, 10, 1, 1},
	}

	res, _ := hungarian.Solve(cost, 3, 4, hungarian.Maximize)
	for _, p := range res.Pairs() {
		fmt.Printf("row %d -> col %d (%g)\n", p.Row, p.Col, cost[p.Row][p.Col])
	}
	fmt.Println("total:", res.Cost)
	// Output:
	// row 0 -> col 3 (11)
	// row 1 -> col 2 (6)
	// row 2 -> col 1 (10)
	// total: 27
}

// ExampleSolve_tall shows Unassigned rows when there are more rows than columns.
func ExampleSolve_tall() {
	cost := [][]float64{
		{3, 5, 6},
		{7, 4, 10},
		{5, 6, 1},
		{11, 3, 1},
	}

	res, _ := hungarian.Solve(cost, 4, 3, hungarian.Minimize)
	fmt.Println(res.Cost, res.Assignment)
	// Output:
	// 7 [0 -1 2 1]
}
