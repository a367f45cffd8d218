// SPDX-License-Identifier: MIT
// Package matrix: matrix product and the elementary matrix of a pivot.
//
// Purpose:
//   - Mul gives callers the plain product C = A·B.
//   - ExchangeMatrix returns the elementary ("eta") matrix E of a Jordan
//     exchange, so that E·M == JordanExchange(M, r, c). Revised Simplex
//     keeps a product of such matrices instead of the full tableau.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMul            = "Mul"
	opExchangeMatrix = "ExchangeMatrix"
)

// Mul returns C = A·B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil, inner dimension).
//   - Stage 2: *Dense fast path in i→k→j order over the flat buffers,
//     skipping zero A[i,k]; generic At fallback in i→j→k order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; wrapped with "Mul".
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		sum     float64
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var offA, offB, offR int
			for i = 0; i < aRows; i++ {
				offA = i * aCols
				offR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[offA+k]
					if av == 0 {
						continue
					}
					offB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[offR+j] += av * db.data[offB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// ExchangeMatrix returns the rows×rows elementary matrix E of the Jordan
// exchange at (pivotRow, pivotCol): the identity except column pivotRow,
// where E[pivotRow][pivotRow] = 1/p and E[i][pivotRow] = -m[i][pivotCol]/p²
// (ExchangeElimination) or -m[i][pivotCol]/p (GaussJordanElimination).
// E·m equals JordanExchange(m, pivotRow, pivotCol) under the same options, up
// to rounding.
//
// Errors mirror JordanExchange: ErrNilMatrix, ErrOutOfRange, ErrNaNInf,
// ErrDegeneratePivot; wrapped with "ExchangeMatrix".
//
// Complexity: Time O(r^2) for the identity fill, Space O(r^2).
func ExchangeMatrix(m Matrix, pivotRow, pivotCol int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExchangeMatrix, err)
	}
	if err := ValidateIndex(m, pivotRow, pivotCol); err != nil {
		return nil, matrixErrorf(opExchangeMatrix, err)
	}
	p, err := m.At(pivotRow, pivotCol)
	if err != nil {
		return nil, matrixErrorf(opExchangeMatrix, err)
	}
	if isNonFinite(p) {
		return nil, matrixErrorf(opExchangeMatrix, ErrNaNInf)
	}
	if math.Abs(p) < o.pivotTol {
		return nil, matrixErrorf(opExchangeMatrix, fmt.Errorf("|%g| < %g: %w", p, o.pivotTol, ErrDegeneratePivot))
	}

	r := m.Rows()
	e, err := NewIdentity(r)
	if err != nil {
		return nil, matrixErrorf(opExchangeMatrix, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		if i == pivotRow {
			e.data[i*r+pivotRow] = 1 / p
			continue
		}
		if v, err = m.At(i, pivotCol); err != nil {
			return nil, matrixErrorf(opExchangeMatrix, err)
		}
		v = -v / p
		if o.elimination != GaussJordanElimination {
			v /= p
		}
		e.data[i*r+pivotRow] = v
	}

	return e, nil
}
