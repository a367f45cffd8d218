// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Row is one user constraint: Coefficients · x  Operator  RHS.
type Row struct {
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Operator     Operator  `json:"operator" yaml:"operator"`
	RHS          float64   `json:"rhs" yaml:"rhs"`
}

// Canonicalize builds a LinearProgram in ">=" form from user rows.
//
//   - "<=" rows are negated (A, b → -A, -b);
//   - "=" rows emit the row as given followed by its negation, both tagged "=";
//   - ">=" rows pass through.
//
// Rows shorter than p are padded with zeros and longer rows are truncated, as
// the input form keeps every constraint in sync with the objective width.
// Errors wrap ErrMalformedInput (sense, operator) or ErrEmpty.
func Canonicalize(sense Sense, p []float64, rows []Row) (LinearProgram, error) {
	if !sense.Valid() {
		return LinearProgram{}, fmt.Errorf("sense %q: %w", sense, ErrMalformedInput)
	}
	n := len(p)
	if n == 0 {
		return LinearProgram{}, ErrEmpty
	}

	out := LinearProgram{
		Sense:             sense,
		P:                 cloneVec(p),
		A:                 make([][]float64, 0, len(rows)),
		B:                 make([]float64, 0, len(rows)),
		OriginalOperators: make([]Operator, 0, len(rows)),
	}
	for i, r := range rows {
		coeffs := fitWidth(r.Coefficients, n)
		switch r.Operator {
		case LessEqual:
			out.push(negated(coeffs), -r.RHS, LessEqual)
		case Equal:
			out.push(coeffs, r.RHS, Equal)
			out.push(negated(coeffs), -r.RHS, Equal)
		case GreaterEqual:
			out.push(coeffs, r.RHS, GreaterEqual)
		default:
			return LinearProgram{}, fmt.Errorf("constraint %d operator %q: %w", i+1, r.Operator, ErrMalformedInput)
		}
	}
	if err := out.Validate(); err != nil {
		return LinearProgram{}, err
	}

	return out, nil
}

func (p *LinearProgram) push(row []float64, rhs float64, op Operator) {
	p.A = append(p.A, row)
	p.B = append(p.B, rhs)
	p.OriginalOperators = append(p.OriginalOperators, op)
}

// fitWidth returns a fresh copy of row padded with zeros or truncated to n.
func fitWidth(row []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, row)

	return out
}

// negated returns -row as a new slice.
func negated(row []float64) []float64 {
	out := cloneVec(row)
	floats.Scale(-1, out)

	return out
}
