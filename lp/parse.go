// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the longest leading decimal literal:
// "3x" → 3, "-.5e2abc" → -50, "abc" → no match.
var numberPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseCoefficient reads a free-text numeric field.
// Empty, "-" and unparsable text read as 0, as do values that overflow to ±Inf.
func ParseCoefficient(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	lit := numberPrefix.FindString(s)
	if lit == "" {
		return 0
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}

	return v
}

// ParseCoefficients applies ParseCoefficient to every field.
func ParseCoefficients(fields []string) []float64 {
	out := make([]float64, len(fields))
	for i, f := range fields {
		out[i] = ParseCoefficient(f)
	}

	return out
}

// FormConstraint is one constraint as typed into the input form.
type FormConstraint struct {
	Coefficients []string
	Operator     Operator
	Value        string
}

// Form is the raw content of the input form before parsing.
type Form struct {
	Sense       Sense
	Objective   []string
	Constraints []FormConstraint
}

// LinearProgram parses every field and canonicalises the result.
// A failure wraps ErrMalformedInput so the caller can surface it as a generic
// input error.
func (f Form) LinearProgram() (LinearProgram, error) {
	rows := make([]Row, len(f.Constraints))
	for i, c := range f.Constraints {
		rows[i] = Row{
			Coefficients: ParseCoefficients(c.Coefficients),
			Operator:     c.Operator,
			RHS:          ParseCoefficient(c.Value),
		}
	}
	prog, err := Canonicalize(f.Sense, ParseCoefficients(f.Objective), rows)
	if err != nil {
		return LinearProgram{}, fmt.Errorf("form: %w", wrapMalformed(err))
	}

	return prog, nil
}

// wrapMalformed makes err match ErrMalformedInput while keeping the
// original cause matchable too.
func wrapMalformed(err error) error {
	if errors.Is(err, ErrMalformedInput) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrMalformedInput, err)
}
