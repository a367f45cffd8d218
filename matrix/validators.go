// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// AI-Hints:
//  - Use ValidateIndex before reading a pivot cell so the kernel never panics.
//  - Use ValidateRectangular on any [][]float64 coming from callers (JSON, forms).
//  - Use IsUnitColumn to assert the postcondition of JordanExchange in tests and callers.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil or m is a typed nil *Dense.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures a and b are non-nil and a.Cols() == b.Rows().
//
// Return: nil, wrapped ErrNilMatrix, or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateIndex – Ensures (row, col) addresses a cell of m.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Return: nil or wrapped ErrOutOfRange naming the offending coordinates.
// Complexity: O(1).
func ValidateIndex(m Matrix, row, col int) error {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateIndex(%d,%d) in %dx%d", row, col, m.Rows(), m.Cols()),
			ErrOutOfRange,
		)
	}

	return nil
}

// ValidateRectangular – Ensures rows is non-empty and every row has the same
// non-zero length.
//
// Return: nil or wrapped ErrBadShape naming the first ragged row.
// Complexity: O(r).
// AI-Hints: Run before FromRows on any externally supplied literal.
func ValidateRectangular(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRectangular: empty", ErrBadShape)
	}
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrBadShape)
		}
	}

	return nil
}

// ValidateFinite – Ensures every entry of m is finite.
//
// Return: nil or wrapped ErrNaNInf naming the first offending cell.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// IsUnitColumn reports whether column col of m equals the standard basis
// vector e_row within tol: |m[row,col]-1| ≤ tol and |m[i,col]| ≤ tol for i≠row.
// This is the postcondition of JordanExchange(m0, row, col).
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r).
func IsUnitColumn(m Matrix, row, col int, tol float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, validatorErrorf("IsUnitColumn", err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return false, validatorErrorf("IsUnitColumn", err)
	}
	tol = math.Abs(tol)

	var want float64
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, col)
		if err != nil {
			return false, validatorErrorf("IsUnitColumn", err)
		}
		want = 0
		if i == row {
			want = 1
		}
		if math.Abs(v-want) > tol {
			return false, nil
		}
	}

	return true, nil
}
