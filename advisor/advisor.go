// SPDX-License-Identifier: MIT

// Package advisor proposes a pivot for the next Simplex step.
//
// Suggestions are hints only: the tableau package never consults them and
// executes whatever pivot the caller submits.
package advisor

import (
	"errors"
	"fmt"
	"math"

	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrOptimal is returned when no objective coefficient can improve the
	// objective: no entering column exists.
	ErrOptimal = errors.New("advisor: no improving column")

	// ErrNoRatio is returned when the entering column has no positive entry
	// with a non-negative ratio.
	ErrNoRatio = errors.New("advisor: no row passes the ratio test")
)

// Suggestion is a 1-based pivot in the combined tableau, ready to submit to
// tableau.ApplyJordanExchange.
type Suggestion struct {
	Row, Col int
	// Ratio is -b_i / A[i][Col-1] for the chosen row.
	Ratio float64
}

// Suggest picks the entering column by Dantzig's rule (most negative p_j for
// Maximize, most positive for Minimize) and the leaving row by the minimum
// non-negative ratio -b_i / A[i][col] over rows with A[i][col] > 0. Ties
// keep the first index.
//
// Errors: ErrOptimal, ErrNoRatio, or the program's validation error.
func Suggest(prog lp.LinearProgram) (Suggestion, error) {
	if err := prog.Validate(); err != nil {
		return Suggestion{}, fmt.Errorf("advisor: %w", err)
	}

	col, err := enteringColumn(prog.Sense, prog.P)
	if err != nil {
		return Suggestion{}, err
	}

	ratios := make([]float64, prog.NumConstraints())
	for i := range ratios {
		ratios[i] = math.Inf(1)
		if a := prog.A[i][col]; a > 0 {
			if r := -prog.B[i] / a; r >= 0 {
				ratios[i] = r
			}
		}
	}
	if len(ratios) == 0 {
		return Suggestion{}, fmt.Errorf("column %d: %w", col+1, ErrNoRatio)
	}
	row := floats.MinIdx(ratios)
	if math.IsInf(ratios[row], 1) {
		return Suggestion{}, fmt.Errorf("column %d: %w", col+1, ErrNoRatio)
	}

	return Suggestion{Row: row + 1, Col: col + 1, Ratio: ratios[row]}, nil
}

// enteringColumn returns the 0-based Dantzig column.
func enteringColumn(sense lp.Sense, p []float64) (int, error) {
	cand := make([]float64, len(p))
	if sense == lp.Maximize {
		for j, v := range p {
			cand[j] = math.Inf(1)
			if v < 0 {
				cand[j] = v
			}
		}
		j := floats.MinIdx(cand)
		if math.IsInf(cand[j], 1) {
			return 0, ErrOptimal
		}

		return j, nil
	}

	for j, v := range p {
		cand[j] = math.Inf(-1)
		if v > 0 {
			cand[j] = v
		}
	}
	j := floats.MaxIdx(cand)
	if math.IsInf(cand[j], -1) {
		return 0, ErrOptimal
	}

	return j, nil
}
