// SPDX-License-Identifier: MIT

package tableau

import (
	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"github.com/arijitchakma79/SimplexMethodVisualizer/matrix"
)

// Status is the session status vocabulary.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusReady      Status = "ready"
	StatusRunning    Status = "running"
	StatusOptimal    Status = "optimal"
	StatusUnbounded  Status = "unbounded"
	StatusInfeasible Status = "infeasible"
	StatusError      Status = "error"
)

// Valid reports whether s belongs to the vocabulary.
func (s Status) Valid() bool {
	switch s {
	case StatusIdle, StatusReady, StatusRunning, StatusOptimal,
		StatusUnbounded, StatusInfeasible, StatusError:
		return true
	}

	return false
}

// HistoryEntry is one snapshot of the program. Entry 0 is the initial setup
// and has nil pivot fields; every later entry records the 1-based pivot that
// produced it from its predecessor. Timestamp is Unix milliseconds.
type HistoryEntry struct {
	LP         lp.LinearProgram `json:"lp"`
	StepNumber int              `json:"stepNumber"`
	PivotRow   *int             `json:"pivotRow,omitempty"`
	PivotCol   *int             `json:"pivotCol,omitempty"`
	Timestamp  int64            `json:"timestamp"`
}

// Clone deep-copies the entry.
func (e HistoryEntry) Clone() HistoryEntry {
	out := e
	out.LP = e.LP.Clone()
	if e.PivotRow != nil {
		out.PivotRow = intPtr(*e.PivotRow)
	}
	if e.PivotCol != nil {
		out.PivotCol = intPtr(*e.PivotCol)
	}

	return out
}

// State is an immutable snapshot of a session. LP is the program selected by
// CurrentStep (nil before setup). Error is empty unless Status is
// StatusError. Elimination is the row update every pivot of the session
// uses; when empty, pivots follow WithPivotOptions.
type State struct {
	LP          *lp.LinearProgram
	History     []HistoryEntry
	CurrentStep int
	Status      Status
	Error       string
	Elimination matrix.Elimination
}

// InitialState returns the canonical empty state: no program, empty history,
// StatusIdle.
func InitialState() State {
	return State{Status: StatusIdle, History: []HistoryEntry{}}
}

// Clone returns a deep copy sharing no storage with s.
func (s State) Clone() State {
	out := s
	if s.LP != nil {
		c := s.LP.Clone()
		out.LP = &c
	}
	out.History = make([]HistoryEntry, len(s.History))
	for i, e := range s.History {
		out.History[i] = e.Clone()
	}

	return out
}

// Tableau builds the combined tableau of the current program.
// Errors: ErrNoProgram when no program is set.
func (s State) Tableau(opts ...matrix.Option) (*matrix.Dense, error) {
	if s.LP == nil {
		return nil, ErrNoProgram
	}

	return Build(*s.LP, opts...)
}

// LastPivot returns the 1-based pivot that produced the entry under the
// cursor. ok is false for the initial entry or when there is no history.
func (s State) LastPivot() (row, col int, ok bool) {
	if s.CurrentStep < 0 || s.CurrentStep >= len(s.History) {
		return 0, 0, false
	}
	e := s.History[s.CurrentStep]
	if e.PivotRow == nil || e.PivotCol == nil {
		return 0, 0, false
	}

	return *e.PivotRow, *e.PivotCol, true
}

func intPtr(v int) *int { return &v }
