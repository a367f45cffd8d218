// SPDX-License-Identifier: MIT

package tableau

import (
	"errors"

	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"github.com/arijitchakma79/SimplexMethodVisualizer/matrix"
)

var (
	// ErrNoProgram is returned when a pivot is requested before any program
	// was set up.
	ErrNoProgram = errors.New("tableau: no linear program set up")

	// ErrPivotOutOfBounds is returned when the 1-based pivot lies outside the
	// (m+1)×(n+1) combined tableau.
	ErrPivotOutOfBounds = errors.New("tableau: invalid pivot row or column")

	// ErrShape is returned by Decompose when the tableau does not match the
	// dimensions of the program it came from.
	ErrShape = errors.New("tableau: tableau shape does not match program")
)

// User-facing messages stored in State.Error.
const (
	MsgNoProgram       = "No linear program set up"
	MsgOutOfBounds     = "Invalid pivot row or column"
	MsgDegeneratePivot = "Pivot element is too close to zero"
	MsgInvalidInput    = "Invalid input"
)

// Message maps err to the human-readable text a State carries.
// Unknown errors fall back to err.Error().
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoProgram):
		return MsgNoProgram
	case errors.Is(err, ErrPivotOutOfBounds):
		return MsgOutOfBounds
	case errors.Is(err, matrix.ErrDegeneratePivot):
		return MsgDegeneratePivot
	case errors.Is(err, lp.ErrMalformedInput):
		return MsgInvalidInput
	default:
		return err.Error()
	}
}
