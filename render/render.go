// SPDX-License-Identifier: MIT

// Package render prints tableaux, programs and session history as plain
// text for terminals and logs.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"github.com/arijitchakma79/SimplexMethodVisualizer/tableau"
)

// Number formats v the way the tableau is shown to users: integers as is,
// anything else rounded to two decimals with trailing zeros trimmed.
//
//	Number(3) == "3", Number(0.5) == "0.5", Number(1/3.0) == "0.33"
func Number(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}

	return s
}

// Tableau writes the combined tableau of prog. Rows are labelled with the
// basic variables x_{n+1}..x_{n+m} and z, columns with x1..xn and the
// constant column "1", which shows -b_i.
func Tableau(w io.Writer, prog lp.LinearProgram) error {
	n := prog.NumVars()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := make([]string, 0, n+2)
	header = append(header, "")
	for j := 0; j < n; j++ {
		header = append(header, fmt.Sprintf("x%d", j+1))
	}
	header = append(header, "1")
	writeRow(tw, header)

	for i, row := range prog.A {
		cells := make([]string, 0, n+2)
		cells = append(cells, fmt.Sprintf("x%d =", n+i+1))
		for _, v := range row {
			cells = append(cells, Number(v))
		}
		cells = append(cells, Number(-prog.B[i]))
		writeRow(tw, cells)
	}

	cells := make([]string, 0, n+2)
	cells = append(cells, "z =")
	for _, v := range prog.P {
		cells = append(cells, Number(v))
	}
	cells = append(cells, "0")
	writeRow(tw, cells)

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
}

// Program writes prog in the form the user entered it, reconstructed with
// lp.DisplayConstraints.
func Program(w io.Writer, prog lp.LinearProgram) error {
	verb := "maximize"
	if prog.Sense == lp.Minimize {
		verb = "minimize"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", verb, Expression(prog.P))
	dcs := prog.DisplayConstraints()
	if len(dcs) > 0 {
		b.WriteString("subject to\n")
	}
	for _, dc := range dcs {
		if dc.NonNegative >= 0 {
			fmt.Fprintf(&b, "  x%d >= 0\n", dc.NonNegative+1)
			continue
		}
		fmt.Fprintf(&b, "  %s %s %s\n", Expression(dc.Coefficients), dc.Operator, Number(dc.RHS))
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// Expression renders sum c_j x_j, skipping zero terms: [3 -1 0 2] reads
// "3x1 - x2 + 2x4". An all-zero vector reads "0".
func Expression(coeffs []float64) string {
	terms := make([]string, 0, len(coeffs))
	for j, c := range coeffs {
		switch c {
		case 0:
			continue
		case 1:
			terms = append(terms, fmt.Sprintf("x%d", j+1))
		case -1:
			terms = append(terms, fmt.Sprintf("-x%d", j+1))
		default:
			terms = append(terms, fmt.Sprintf("%sx%d", Number(c), j+1))
		}
	}
	if len(terms) == 0 {
		return "0"
	}

	return strings.ReplaceAll(strings.Join(terms, " + "), "+ -", "- ")
}

// History lists the session steps; the entry under the cursor is marked
// with '*'.
func History(w io.Writer, s tableau.State) error {
	var b strings.Builder
	plural := "s"
	if len(s.History) == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, "%d step%s\n", len(s.History), plural)
	for i, e := range s.History {
		mark := ' '
		if i == s.CurrentStep {
			mark = '*'
		}
		fmt.Fprintf(&b, "%c Step %d", mark, e.StepNumber)
		if e.PivotRow != nil && e.PivotCol != nil {
			fmt.Fprintf(&b, "  pivot (%d, %d)", *e.PivotRow, *e.PivotCol)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}
