// SPDX-License-Identifier: MIT
// Package matrix: bridges to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Let callers that already hold gonum matrices pivot them with JordanExchange
//     and hand results back to gonum for further linear algebra.
//
// Notes:
//   - Both directions copy; no storage is shared across the boundary.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new *mat.Dense.
// Returns nil for a nil or zero-area input (gonum forbids 0×0 dense matrices).
// Complexity: O(r*c).
func ToGonum(m Matrix) *mat.Dense {
	if ValidateNotNil(m) != nil || m.Rows() == 0 || m.Cols() == 0 {
		return nil
	}
	buf, err := flatten(m)
	if err != nil {
		return nil
	}

	return mat.NewDense(m.Rows(), m.Cols(), buf) // buf is already a private copy
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// Errors:
//   - ErrNilMatrix for a nil input; ErrInvalidDimensions for zero area;
//     ErrNaNInf for non-finite entries under the default policy.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	o := gatherOptions(opts...)
	out, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}
