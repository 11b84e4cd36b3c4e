// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating shape/nil/finiteness checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    still match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (FromRows aside).
//  - Scans run in row-major order and stop at the first violation, so the
//    reported coordinates are the smallest (row, col) in that order.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
// Complexity: O(1).
func IsFinite[T Float](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Float](m Reader[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateFinite – Ensures every element of m is finite.
//
// Errors: ErrNilMatrix if nil, ErrNaNInf (with coordinates) on the first
// non-finite element in row-major order.
// Complexity: O(r*c).
func ValidateFinite[T Float](m Reader[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var (
		rows, cols = m.Rows(), m.Cols()
		i, j       int
		v          T
		err        error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if !IsFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateRows – Ensures rows is exactly n rows of exactly m finite values.
//
// Inputs: rows (caller-owned, read only), declared n and m (≥ 0).
// Errors:
//   - ErrBadShape when n or m is negative.
//   - ErrDimensionMismatch when len(rows) != n or some len(rows[i]) != m.
//   - ErrNaNInf on the first non-finite value.
//
// Shape is checked for every row before any value is inspected, so a ragged
// matrix always reports ErrDimensionMismatch even when it also holds NaN.
// Complexity: O(n*m).
func ValidateRows[T Float](rows [][]T, n, m int) error {
	if n < 0 || m < 0 {
		return validatorErrorf("ValidateRows", ErrBadShape)
	}
	if len(rows) != n {
		return validatorErrorf(fmt.Sprintf("ValidateRows: %d rows, want %d", len(rows), n), ErrDimensionMismatch)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != m {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d values, want %d", i, len(rows[i]), m), ErrDimensionMismatch)
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if !IsFinite(rows[i][j]) {
				return validatorErrorf(fmt.Sprintf("ValidateRows(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// FromRows copies a rectangular, finite [][]T into a new Dense.
//
// Errors: ErrBadShape for an empty input, otherwise those of ValidateRows.
// Complexity: O(r*c).
func FromRows[T Float](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, validatorErrorf("FromRows", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	if err := ValidateRows(rows, r, c); err != nil {
		return nil, validatorErrorf("FromRows", err)
	}
	d, err := NewDense[T](r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}
