// Package matrix offers the dense numeric storage used by the assignment solvers.
//
// The matrix package provides:
//
//   - Reader - a generic read-only interface over float32 and float64 grids.
//   - Dense - a row-major, bounds-checked implementation with a no-copy Row
//     view for hot loops.
//   - Validators (ValidateNotNil, ValidateFinite, ValidateRows) and the
//     FromRows constructor from [][]T.
//   - Epsilon and MaxAbs, the numeric helpers behind tolerance policies.
//
// All failures are reported through the sentinels in errors.go and can be
// matched with errors.Is.
//
// See the examples in this package and hungarian for usage patterns.
package matrix
