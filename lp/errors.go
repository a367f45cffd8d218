// SPDX-License-Identifier: MIT

package lp

import "errors"

// Every message is prefixed with "lp: ..." for consistency with the matrix
// package. Callers match with errors.Is.
var (
	// ErrMalformedInput is returned when user input cannot be turned into a
	// LinearProgram (unknown operator or sense, undecodable problem file).
	ErrMalformedInput = errors.New("lp: malformed input")

	// ErrDimensionMismatch signals that A, b, p and OriginalOperators do not
	// describe the same m×n program.
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrNonFinite signals a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("lp: NaN or Inf coefficient")

	// ErrEmpty signals a program without variables.
	ErrEmpty = errors.New("lp: program has no variables")
)
