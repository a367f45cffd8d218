// SPDX-License-Identifier: MIT
// Package matrix: Jordan exchange kernel (one row-normalisation and one
// elimination sweep around a pivot cell).
//
// Purpose:
//   - Divide the pivot row by the pivot and subtract a multiple of it from
//     every other row, returning a fresh matrix.
//
// Notes:
//   - The input is read-only. Factors are taken from the input, so no row is
//     eliminated against a partially updated copy.
//   - ExchangeElimination (default) subtracts (m[i][pc]/pivot)·out[pr][j]. The
//     pivot column becomes e_pr only when pivot == 1; otherwise its off-pivot
//     entries are m[i][pc]·(1 − 1/pivot).
//   - GaussJordanElimination subtracts m[i][pc]·out[pr][j] and always leaves
//     e_pr in the pivot column.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opJordanExchange = "JordanExchange"
	opAllClose       = "AllClose"
	opFromRows       = "FromRows"
	opFromGonum      = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// JordanExchange performs a Jordan exchange on m centred at (pivotRow, pivotCol).
// Implementation:
//   - Stage 1: Validate m non-nil and the pivot index in range; read pivot.
//   - Stage 2: Reject |pivot| < tolerance with ErrDegeneratePivot.
//   - Stage 3: Normalise the pivot row: out[pr][j] = m[pr][j] / pivot.
//   - Stage 4: For every other row i with factor = m[i][pc]/pivot
//     (ExchangeElimination) or factor = m[i][pc] (GaussJordanElimination):
//     out[i][j] = m[i][j] − factor·out[pr][j]. Under GaussJordanElimination
//     out[i][pc] is then set to exactly 0.
//   - Stage 5: Optionally validate every produced value is finite.
//
// Behavior highlights:
//   - out[pr][pc] is exactly 1 in both modes.
//   - Column pc of the result is e_pr under GaussJordanElimination, and under
//     ExchangeElimination only when pivot == 1.
//   - Under GaussJordanElimination re-pivoting the result at the same cell
//     returns an identical matrix.
//   - Input is never mutated; on error no matrix is returned.
//
// Inputs:
//   - m: rectangular matrix (any Matrix; *Dense hits the flat fast path).
//   - pivotRow, pivotCol: zero-based pivot coordinates.
//   - opts: WithPivotTolerance, WithElimination, WithNoValidateNaNInf.
//
// Returns:
//   - *Dense: freshly allocated result with the resolved numeric policy.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (non-finite pivot or result),
//     ErrDegeneratePivot; all wrapped with "JordanExchange".
//
// Determinism:
//   - Fixed i→j loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func JordanExchange(m Matrix, pivotRow, pivotCol int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	// Stage 1: guards.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opJordanExchange, err)
	}
	if err := ValidateIndex(m, pivotRow, pivotCol); err != nil {
		return nil, matrixErrorf(opJordanExchange, err)
	}

	// Copy input into a flat row-major buffer once; fast path for *Dense.
	r, c := m.Rows(), m.Cols()
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opJordanExchange, err)
	}

	// Stage 2: pivot checks.
	pivot := src[pivotRow*c+pivotCol]
	if isNonFinite(pivot) {
		return nil, matrixErrorf(opJordanExchange, ErrNaNInf)
	}
	if math.Abs(pivot) < o.pivotTol {
		return nil, matrixErrorf(opJordanExchange, fmt.Errorf("|%g| < %g: %w", pivot, o.pivotTol, ErrDegeneratePivot))
	}

	out, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opJordanExchange, err)
	}
	dst := out.data

	// Stage 3: normalise the pivot row.
	pBase := pivotRow * c
	var j int
	for j = 0; j < c; j++ {
		dst[pBase+j] = src[pBase+j] / pivot
	}
	dst[pBase+pivotCol] = 1 // exact, independent of rounding in src/pivot

	// Stage 4: subtract the scaled pivot row from every other row.
	gaussJordan := o.elimination == GaussJordanElimination
	var i, base int
	var factor float64
	for i = 0; i < r; i++ {
		if i == pivotRow {
			continue
		}
		base = i * c
		factor = src[base+pivotCol] // captured from the untouched input
		if !gaussJordan {
			factor /= pivot
		}
		for j = 0; j < c; j++ {
			dst[base+j] = src[base+j] - factor*dst[pBase+j]
		}
		if gaussJordan {
			dst[base+pivotCol] = 0
		}
	}

	// Stage 5: numeric policy on results.
	if o.validateNaNInf {
		for idx, v := range dst {
			if isNonFinite(v) {
				return nil, denseErrorf(opJordanExchange, idx/c, idx%c, ErrNaNInf)
			}
		}
	}

	return out, nil
}

// flatten returns a row-major copy of m's values.
// *Dense copies its buffer directly; other implementations go through At.
// Complexity: O(r*c).
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)

		return buf, nil
	}

	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf[i*c+j] = v
		}
	}

	return buf, nil
}
