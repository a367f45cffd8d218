// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"

	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"github.com/arijitchakma79/SimplexMethodVisualizer/matrix"
)

// Build lays prog out as the (m+1)×(n+1) combined tableau: row i is
// [A_i | -b_i] and the last row is [p | 0].
//
// prog is validated first; an invalid program yields an error wrapping the
// lp sentinel. opts are forwarded to matrix.FromRows.
func Build(prog lp.LinearProgram, opts ...matrix.Option) (*matrix.Dense, error) {
	if err := prog.Validate(); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	m, n := prog.NumConstraints(), prog.NumVars()

	rows := make([][]float64, 0, m+1)
	for i := 0; i < m; i++ {
		row := make([]float64, n+1)
		copy(row, prog.A[i])
		row[n] = -prog.B[i]
		rows = append(rows, row)
	}
	obj := make([]float64, n+1)
	copy(obj, prog.P)
	rows = append(rows, obj)

	return matrix.FromRows(rows, opts...)
}

// Decompose reads a combined tableau back into program form. prev supplies
// the dimensions, Sense and OriginalOperators, which are carried over
// unchanged. The objective constant t[m][n] is discarded.
func Decompose(t *matrix.Dense, prev lp.LinearProgram) (lp.LinearProgram, error) {
	if err := matrix.ValidateNotNil(t); err != nil {
		return lp.LinearProgram{}, fmt.Errorf("decompose: %w", err)
	}
	m, n := prev.NumConstraints(), prev.NumVars()
	if t.Rows() != m+1 || t.Cols() != n+1 {
		return lp.LinearProgram{}, fmt.Errorf("decompose: got %dx%d, want %dx%d: %w",
			t.Rows(), t.Cols(), m+1, n+1, ErrShape)
	}

	out := lp.LinearProgram{
		Sense:             prev.Sense,
		A:                 make([][]float64, m),
		B:                 make([]float64, m),
		OriginalOperators: append([]lp.Operator(nil), prev.OriginalOperators...),
	}
	if m > 0 {
		rowIdx, colIdx := seq(m), seq(n)
		body, err := t.Induced(rowIdx, colIdx)
		if err != nil {
			return lp.LinearProgram{}, fmt.Errorf("decompose: %w", err)
		}
		out.A = body.ToRows()
	}
	rhs, err := t.Col(n)
	if err != nil {
		return lp.LinearProgram{}, fmt.Errorf("decompose: %w", err)
	}
	for i := 0; i < m; i++ {
		out.B[i] = -rhs[i]
	}
	obj, err := t.Row(m)
	if err != nil {
		return lp.LinearProgram{}, fmt.Errorf("decompose: %w", err)
	}
	out.P = obj[:n:n]

	return out, nil
}

func seq(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
