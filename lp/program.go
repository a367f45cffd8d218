// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sense is the optimisation direction.
type Sense string

const (
	Maximize Sense = "max"
	Minimize Sense = "min"
)

// Valid reports whether s is one of Maximize, Minimize.
func (s Sense) Valid() bool { return s == Maximize || s == Minimize }

// Operator is the relation a user typed for one constraint.
type Operator string

const (
	LessEqual    Operator = "<="
	GreaterEqual Operator = ">="
	Equal        Operator = "="
)

// Valid reports whether o is one of LessEqual, GreaterEqual, Equal.
func (o Operator) Valid() bool {
	return o == LessEqual || o == GreaterEqual || o == Equal
}

// LinearProgram is an m×n program in canonical ">=" form.
//
// Invariant: len(A) == len(B) == len(OriginalOperators) and every row of A
// has len(P) entries. JSON field names follow the persisted state layout.
type LinearProgram struct {
	Sense             Sense       `json:"sense" yaml:"sense"`
	P                 []float64   `json:"p" yaml:"p"`
	A                 [][]float64 `json:"A" yaml:"A"`
	B                 []float64   `json:"b" yaml:"b"`
	OriginalOperators []Operator  `json:"originalOperators" yaml:"originalOperators"`
}

// NumVars returns n, the number of decision variables.
func (p LinearProgram) NumVars() int { return len(p.P) }

// NumConstraints returns m, the number of canonical constraint rows.
func (p LinearProgram) NumConstraints() int { return len(p.A) }

// Validate checks the shape invariant, the sense, every operator and that all
// coefficients are finite. Errors wrap ErrEmpty, ErrDimensionMismatch,
// ErrMalformedInput or ErrNonFinite.
func (p LinearProgram) Validate() error {
	if !p.Sense.Valid() {
		return fmt.Errorf("sense %q: %w", p.Sense, ErrMalformedInput)
	}
	n, m := len(p.P), len(p.A)
	if n == 0 {
		return ErrEmpty
	}
	if len(p.B) != m {
		return fmt.Errorf("len(b)=%d, len(A)=%d: %w", len(p.B), m, ErrDimensionMismatch)
	}
	if len(p.OriginalOperators) != m {
		return fmt.Errorf("len(originalOperators)=%d, len(A)=%d: %w", len(p.OriginalOperators), m, ErrDimensionMismatch)
	}
	if !finite(p.P) || !finite(p.B) {
		return ErrNonFinite
	}
	for i, row := range p.A {
		if len(row) != n {
			return fmt.Errorf("row %d has %d coefficients, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
		if !finite(row) {
			return fmt.Errorf("row %d: %w", i, ErrNonFinite)
		}
		if !p.OriginalOperators[i].Valid() {
			return fmt.Errorf("row %d operator %q: %w", i, p.OriginalOperators[i], ErrMalformedInput)
		}
	}

	return nil
}

// Clone returns a deep copy; no slice is shared with p.
func (p LinearProgram) Clone() LinearProgram {
	out := LinearProgram{
		Sense:             p.Sense,
		P:                 cloneVec(p.P),
		B:                 cloneVec(p.B),
		OriginalOperators: append([]Operator(nil), p.OriginalOperators...),
	}
	if p.A != nil {
		out.A = make([][]float64, len(p.A))
		for i, row := range p.A {
			out.A[i] = cloneVec(row)
		}
	}

	return out
}

// EqualWithin reports whether p and q have the same sense, operators and
// shape, and all coefficients agree within tol (absolute or relative).
func (p LinearProgram) EqualWithin(q LinearProgram, tol float64) bool {
	if p.Sense != q.Sense || len(p.A) != len(q.A) || len(p.OriginalOperators) != len(q.OriginalOperators) {
		return false
	}
	if !sameVec(p.P, q.P, tol) || !sameVec(p.B, q.B, tol) {
		return false
	}
	for i := range p.A {
		if !sameVec(p.A[i], q.A[i], tol) {
			return false
		}
	}
	for i := range p.OriginalOperators {
		if p.OriginalOperators[i] != q.OriginalOperators[i] {
			return false
		}
	}

	return true
}

func sameVec(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}

	return floats.EqualApprox(a, b, tol)
}

func finite(v []float64) bool {
	if floats.HasNaN(v) {
		return false
	}
	for _, x := range v {
		if math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
