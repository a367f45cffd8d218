// SPDX-License-Identifier: MIT

package tableau

import (
	"errors"
	"fmt"

	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"github.com/arijitchakma79/SimplexMethodVisualizer/matrix"
)

// SetLinearProgram makes prog the current program and restarts the history
// with a single entry {prog, StepNumber: 0}. The result is StatusReady with
// the error cleared, and Elimination is the one resolved from
// WithPivotOptions.
//
// An invalid prog leaves program and history untouched and returns a
// StatusError state; the error wraps lp.ErrMalformedInput.
func SetLinearProgram(s State, prog lp.LinearProgram, opts ...Option) (State, error) {
	o := gatherOptions(opts...)
	if err := prog.Validate(); err != nil {
		if !errors.Is(err, lp.ErrMalformedInput) {
			err = fmt.Errorf("%w: %w", lp.ErrMalformedInput, err)
		}

		return fail(s, fmt.Errorf("set program: %w", err))
	}

	cur := prog.Clone()
	out := State{
		LP: &cur,
		History: []HistoryEntry{{
			LP:         prog.Clone(),
			StepNumber: 0,
			Timestamp:  o.clock().UnixMilli(),
		}},
		CurrentStep: 0,
		Status:      StatusReady,
		Elimination: matrix.NewMatrixOptions(o.pivotOpts...).Elimination(),
	}

	return out, nil
}

// ApplyJordanExchange pivots the current program at the 1-based (row, col)
// of its combined tableau and appends the result to the history.
//
// Implementation:
//   - Stage 1: require a current program (ErrNoProgram).
//   - Stage 2: build the (m+1)×(n+1) tableau and bounds-check the pivot
//     (ErrPivotOutOfBounds).
//   - Stage 3: matrix.JordanExchange with s.Elimination; a degenerate pivot
//     surfaces as matrix.ErrDegeneratePivot.
//   - Stage 4: Decompose, append {lp', len(history), row, col, now}, move the
//     cursor to the new entry and set StatusReady. An empty history is first
//     seeded with the current program as entry 0.
//
// On failure the returned State keeps program and history and carries
// StatusError plus Message(err).
//
// The pivot applies to the program under the cursor. When the cursor is on
// an older entry the new entry is still appended at the end.
func ApplyJordanExchange(s State, row, col int, opts ...Option) (State, error) {
	o := gatherOptions(opts...)
	if s.LP == nil {
		return fail(s, ErrNoProgram)
	}

	t, err := Build(*s.LP, o.pivotOpts...)
	if err != nil {
		return fail(s, fmt.Errorf("pivot: %w", err))
	}
	pr, pc := row-1, col-1
	if pr < 0 || pr >= t.Rows() || pc < 0 || pc >= t.Cols() {
		return fail(s, fmt.Errorf("pivot (%d, %d) on %dx%d tableau: %w",
			row, col, t.Rows(), t.Cols(), ErrPivotOutOfBounds))
	}

	pivotOpts := append([]matrix.Option(nil), o.pivotOpts...)
	if s.Elimination.Valid() {
		pivotOpts = append(pivotOpts, matrix.WithElimination(s.Elimination))
	}
	next, err := matrix.JordanExchange(t, pr, pc, pivotOpts...)
	if err != nil {
		return fail(s, fmt.Errorf("pivot (%d, %d): %w", row, col, err))
	}
	prog, err := Decompose(next, *s.LP)
	if err != nil {
		return fail(s, fmt.Errorf("pivot (%d, %d): %w", row, col, err))
	}

	out := s.Clone()
	if len(out.History) == 0 {
		out.History = []HistoryEntry{{LP: s.LP.Clone(), StepNumber: 0, Timestamp: o.clock().UnixMilli()}}
	}
	out.LP = &prog
	out.History = append(out.History, HistoryEntry{
		LP:         prog.Clone(),
		StepNumber: len(out.History),
		PivotRow:   intPtr(row),
		PivotCol:   intPtr(col),
		Timestamp:  o.clock().UnixMilli(),
	})
	out.CurrentStep = len(out.History) - 1
	out.Status = StatusReady
	out.Error = ""

	return out, nil
}

// LoadHistory moves the cursor to history[index] and makes its program
// current (StatusReady). An out-of-range index returns s unchanged.
func LoadHistory(s State, index int) State {
	if index < 0 || index >= len(s.History) {
		return s
	}
	out := s.Clone()
	prog := out.History[index].LP.Clone()
	out.LP = &prog
	out.CurrentStep = index
	out.Status = StatusReady
	out.Error = ""

	return out
}

// StepForward loads the entry after the cursor, clamped to the last entry.
func StepForward(s State) State {
	if len(s.History) == 0 {
		return s
	}

	return LoadHistory(s, min(s.CurrentStep+1, len(s.History)-1))
}

// StepBack loads the entry before the cursor, clamped to entry 0.
func StepBack(s State) State {
	if len(s.History) == 0 {
		return s
	}

	return LoadHistory(s, max(min(s.CurrentStep-1, len(s.History)-1), 0))
}

// Reset returns InitialState regardless of s.
func Reset(State) State { return InitialState() }

// Fail records msg as the current error; everything else is kept. Input
// collaborators use it to surface parse failures.
func Fail(s State, msg string) State {
	out := s.Clone()
	out.Status = StatusError
	out.Error = msg

	return out
}

func fail(s State, err error) (State, error) {
	return Fail(s, Message(err)), err
}
