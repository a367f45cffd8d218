// SPDX-License-Identifier: MIT

// Package store persists tableau sessions as a JSON document:
//
//	{"lp": {...}, "history": [...], "currentStep": 0, "status": "ready", "error": null,
//	 "elimination": "exchange"}
//
// Persistence is best-effort. Load never fails: every missing or malformed
// field falls back to its value in tableau.InitialState, and an unreadable
// file yields the initial state as a whole. A program restored without a
// usable history gets a fresh entry 0 so later pivots never land in slot 0. Save failures are returned to
// the caller; Saver logs and drops them.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
	"github.com/arijitchakma79/SimplexMethodVisualizer/matrix"
	"github.com/arijitchakma79/SimplexMethodVisualizer/tableau"
)

// ErrNoPath is returned by Save when the store has no file path.
var ErrNoPath = errors.New("store: empty path")

// Store saves and restores sessions.
type Store interface {
	Save(tableau.State) error
	Load() tableau.State
}

// document is the persisted layout. Error is null when empty; Elimination
// is omitted when the session never recorded one.
type document struct {
	LP          *lp.LinearProgram      `json:"lp"`
	History     []tableau.HistoryEntry `json:"history"`
	CurrentStep int                    `json:"currentStep"`
	Status      tableau.Status         `json:"status"`
	Error       *string                `json:"error"`
	Elimination matrix.Elimination     `json:"elimination,omitempty"`
}

// FileStore keeps one session in a JSON file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore returns a store backed by path. A nil logger discards.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file.
func (f *FileStore) Path() string { return f.path }

// Save writes s to a temporary file next to the target and renames it into
// place, so readers never observe a partial document.
func (f *FileStore) Save(s tableau.State) error {
	if f.path == "" {
		return ErrNoPath
	}
	doc := document{
		LP:          s.LP,
		History:     s.History,
		CurrentStep: s.CurrentStep,
		Status:      s.Status,
		Elimination: s.Elimination,
	}
	if doc.History == nil {
		doc.History = []tableau.HistoryEntry{}
	}
	if s.Error != "" {
		doc.Error = &s.Error
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	return nil
}

// Load reads the session back. It never fails; see the package doc for the
// per-field fallback rules.
func (f *FileStore) Load() tableau.State {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.logger.Error("failed to load state", slog.String("path", f.path), slog.String("error", err.Error()))
		}
		return tableau.InitialState()
	}

	return Decode(data, f.logger)
}

// Decode rebuilds a State from a persisted document, falling back field by
// field. Fallbacks are logged at Warn on logger (which may be nil).
func Decode(data []byte, logger *slog.Logger) tableau.State {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	out := tableau.InitialState()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		logger.Error("failed to load state", slog.String("error", err.Error()))
		return out
	}
	fallback := func(field string, err error) {
		logger.Warn("state field reset to default", slog.String("field", field), slog.String("error", err.Error()))
	}

	if raw, ok := present(fields, "lp"); ok {
		var prog lp.LinearProgram
		if err := decodeValid(raw, &prog); err != nil {
			fallback("lp", err)
		} else {
			out.LP = &prog
		}
	}

	if raw, ok := present(fields, "history"); ok {
		var hist []tableau.HistoryEntry
		if err := json.Unmarshal(raw, &hist); err != nil {
			fallback("history", err)
		} else if err = validHistory(hist); err != nil {
			fallback("history", err)
		} else {
			out.History = hist
		}
	}
	if out.LP != nil && len(out.History) == 0 {
		logger.Warn("history seeded from lp")
		out.History = []tableau.HistoryEntry{{LP: out.LP.Clone(), StepNumber: 0}}
	}

	if raw, ok := present(fields, "currentStep"); ok {
		var step int
		switch err := json.Unmarshal(raw, &step); {
		case err != nil:
			fallback("currentStep", err)
		case step < 0 || (step > 0 && step >= len(out.History)):
			fallback("currentStep", fmt.Errorf("step %d outside history of %d", step, len(out.History)))
		default:
			out.CurrentStep = step
		}
	}

	if raw, ok := present(fields, "status"); ok {
		var st tableau.Status
		switch err := json.Unmarshal(raw, &st); {
		case err != nil:
			fallback("status", err)
		case !st.Valid():
			fallback("status", fmt.Errorf("unknown status %q", st))
		default:
			out.Status = st
		}
	}

	if raw, ok := present(fields, "error"); ok {
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil {
			fallback("error", err)
		} else {
			out.Error = msg
		}
	}

	if raw, ok := present(fields, "elimination"); ok {
		var e matrix.Elimination
		switch err := json.Unmarshal(raw, &e); {
		case err != nil:
			fallback("elimination", err)
		case !e.Valid():
			fallback("elimination", fmt.Errorf("unknown elimination %q", e))
		default:
			out.Elimination = e
		}
	}

	return out
}

// present returns the raw field unless it is missing or null.
func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil, false
	}

	return raw, true
}

func decodeValid(raw json.RawMessage, prog *lp.LinearProgram) error {
	if err := json.Unmarshal(raw, prog); err != nil {
		return err
	}

	return prog.Validate()
}

func validHistory(hist []tableau.HistoryEntry) error {
	for i, e := range hist {
		if err := e.LP.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return nil
}

// Saver adapts a Store to tableau.Observer. Save failures are logged at
// Error and never returned, so a broken disk cannot disturb a session.
type Saver struct {
	Store  Store
	Logger *slog.Logger
}

// Observe saves s.
func (sv Saver) Observe(s tableau.State) error {
	if sv.Store == nil {
		return nil
	}
	if err := sv.Store.Save(s); err != nil && sv.Logger != nil {
		sv.Logger.Error("failed to save state", slog.String("error", err.Error()))
	}

	return nil
}
