// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in validators.go; facades only compose or forward.
//
// AI-Hints:
//   - Use FromRows to lift [][]float64 literals (JSON, forms, tests) into *Dense.
//   - Use Pivot as a discoverability alias for JordanExchange.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// FromRows copies a rectangular [][]float64 into a new *Dense.
// Implementation:
//   - Stage 1: ValidateRectangular(rows).
//   - Stage 2: allocate with the resolved numeric policy and copy row by row,
//     rejecting NaN/Inf when the policy is on.
//
// Errors:
//   - ErrBadShape (empty or ragged), ErrNaNInf; wrapped with "FromRows".
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	o := gatherOptions(opts...)
	r, c := len(rows), len(rows[0])
	out, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return out, nil
}

// Pivot is an alias for JordanExchange.
// Complexity: O(r*c).
func Pivot(m Matrix, pivotRow, pivotCol int, opts ...Option) (*Dense, error) {
	return JordanExchange(m, pivotRow, pivotCol, opts...)
}

// IsBasisColumn reports whether column col of m is the unit vector e_row
// within the resolved epsilon (DefaultEpsilon unless WithEpsilon is given).
// Thin wrapper over IsUnitColumn.
func IsBasisColumn(m Matrix, row, col int, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return IsUnitColumn(m, row, col, o.eps)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
