// Package munkres is the root of a small toolkit for the rectangular linear
// assignment problem: pair the rows of an n×m cost matrix with its columns,
// one to one, so that the total cost is minimal (or maximal).
//
// What is inside?
//
//	matrix/             - generic dense matrix, sentinel errors, validators
//	hungarian/          - Kuhn–Munkres solver: Solve, SolveMatrix, options
//	internal/problemio/ - JSON/CBOR problem and solution documents
//	cmd/munkres/        - command-line demo and file solver
//	cmd/munkres-lambda/ - AWS Lambda Function URL host (build tag "lambda")
//
// Quick start:
//
//	res, err := hungarian.Solve(cost, len(cost), len(cost[0]), hungarian.Minimize)
//	if err != nil {
//		// errors.Is(err, hungarian.ErrMalformedInput) etc.
//	}
//	fmt.Println(res.Cost, res.Assignment) // Assignment[i] == -1: row i unassigned
//
// Rectangular inputs are padded to a square with zero cost; rows (or columns)
// that land on padding stay unassigned. Every call is independent, so Solve
// is safe for concurrent use.
package munkres
