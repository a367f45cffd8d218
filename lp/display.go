// SPDX-License-Identifier: MIT

package lp

// DisplayConstraint is one canonical row turned back into the form the user
// typed it in.
type DisplayConstraint struct {
	Coefficients []float64
	Operator     Operator
	RHS          float64
	// NonNegative is the zero-based index k when the row reads x_k >= 0,
	// -1 otherwise.
	NonNegative int
}

// DisplayConstraints reconstructs the original form of every canonical row
// using OriginalOperators:
//
//   - a row with rhs 0 and a single non-zero coefficient equal to 1 reads
//     x_k >= 0 regardless of its operator;
//   - "<=" rows are negated back;
//   - "=" and ">=" rows are shown as stored.
//
// After pivoting the operators are carried over unchanged and may no longer
// describe the transformed rows.
func (p LinearProgram) DisplayConstraints() []DisplayConstraint {
	out := make([]DisplayConstraint, len(p.A))
	for i, row := range p.A {
		rhs := 0.0
		if i < len(p.B) {
			rhs = p.B[i]
		}
		if k := nonNegativityIndex(row, rhs); k >= 0 {
			out[i] = DisplayConstraint{
				Coefficients: cloneVec(row),
				Operator:     GreaterEqual,
				NonNegative:  k,
			}
			continue
		}

		op := GreaterEqual
		if i < len(p.OriginalOperators) {
			op = p.OriginalOperators[i]
		}
		dc := DisplayConstraint{Coefficients: cloneVec(row), Operator: op, RHS: rhs, NonNegative: -1}
		switch op {
		case LessEqual:
			dc.Coefficients = negated(row)
			dc.RHS = -rhs
		case Equal:
		default:
			dc.Operator = GreaterEqual
		}
		out[i] = dc
	}

	return out
}

// nonNegativityIndex returns k when row is e_k and rhs is 0, else -1.
func nonNegativityIndex(row []float64, rhs float64) int {
	if rhs != 0 {
		return -1
	}
	k := -1
	for i, v := range row {
		if v == 0 {
			continue
		}
		if v != 1 || k != -1 {
			return -1
		}
		k = i
	}

	return k
}
