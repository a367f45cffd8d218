// SPDX-License-Identifier: MIT

// Package tableau manages the state of a manual Simplex session.
//
// A LinearProgram in canonical ">=" form is laid out as the combined tableau
//
//	[ A_0 | -b_0 ]
//	[ ... |  ... ]
//	[ A_m-1 | -b_m-1 ]
//	[  p  |   0  ]
//
// and every caller-chosen pivot is executed by matrix.JordanExchange. The
// result is decomposed back into (A, b, p) and appended to an append-only
// history. Selecting a past entry moves a cursor without truncating later
// entries, so the session can be browsed back and forth.
//
// The elimination (matrix.ExchangeElimination unless WithPivotOptions passes
// matrix.WithElimination) is fixed when a program is set and stored in
// State.Elimination, so every entry of one history uses the same row update.
//
// Transitions are pure: SetLinearProgram, ApplyJordanExchange, LoadHistory,
// StepForward, StepBack, Reset and Fail each take a State and return a new
// one, never mutating their input. Failures are recovered into the returned
// State (Status = StatusError, Error = human-readable message) and also
// returned as a typed error for errors.Is matching.
//
// Machine wraps the transitions behind a closed event set (Handle) and adds
// a clock, a structured logger and an optional Observer used for best-effort
// persistence. A Machine is not safe for concurrent use.
//
// The package never decides optimality: StatusOptimal, StatusUnbounded,
// StatusInfeasible and StatusRunning exist in the vocabulary for callers but
// are never produced here.
package tableau
