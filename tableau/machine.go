// SPDX-License-Identifier: MIT

package tableau

import (
	"log/slog"

	"github.com/arijitchakma79/SimplexMethodVisualizer/lp"
)

// Event is a command accepted by Machine.Handle. The set is closed.
type Event interface {
	eventName() string
}

// SetProgramEvent replaces the program and restarts the history.
type SetProgramEvent struct{ Program lp.LinearProgram }

// PivotEvent applies a Jordan exchange at the 1-based (Row, Col).
type PivotEvent struct{ Row, Col int }

// SelectEvent moves the cursor to the 0-based history Index.
type SelectEvent struct{ Index int }

// ForwardEvent moves the cursor one entry forward.
type ForwardEvent struct{}

// BackEvent moves the cursor one entry back.
type BackEvent struct{}

// ResetEvent returns to the initial state.
type ResetEvent struct{}

// FailEvent records an error raised outside the core (e.g. form parsing).
type FailEvent struct{ Message string }

func (SetProgramEvent) eventName() string { return "set_program" }
func (PivotEvent) eventName() string      { return "pivot" }
func (SelectEvent) eventName() string     { return "select_history" }
func (ForwardEvent) eventName() string    { return "step_forward" }
func (BackEvent) eventName() string       { return "step_back" }
func (ResetEvent) eventName() string      { return "reset" }
func (FailEvent) eventName() string       { return "fail" }

// Machine owns the current State and applies events to it.
// Not safe for concurrent use.
type Machine struct {
	state State
	opts  []Option
	cfg   Options
}

// NewMachine starts a Machine at initial. opts configure the clock, the
// logger, observers and pivot options.
func NewMachine(initial State, opts ...Option) *Machine {
	return &Machine{
		state: initial.Clone(),
		opts:  opts,
		cfg:   gatherOptions(opts...),
	}
}

// State returns a copy of the current state.
func (m *Machine) State() State { return m.state.Clone() }

// Handle applies ev and returns the new state. The returned error mirrors a
// failure recorded in the state (matchable with errors.Is); the state is
// always valid and becomes the Machine's current state either way. FailEvent
// records its message and returns a nil error.
//
// Observers run after the transition; their errors are logged and dropped.
func (m *Machine) Handle(ev Event) (State, error) {
	var (
		next State
		err  error
	)
	switch e := ev.(type) {
	case SetProgramEvent:
		next, err = SetLinearProgram(m.state, e.Program, m.opts...)
	case PivotEvent:
		next, err = ApplyJordanExchange(m.state, e.Row, e.Col, m.opts...)
	case SelectEvent:
		next = LoadHistory(m.state, e.Index)
	case ForwardEvent:
		next = StepForward(m.state)
	case BackEvent:
		next = StepBack(m.state)
	case ResetEvent:
		next = Reset(m.state)
	case FailEvent:
		next = Fail(m.state, e.Message)
	default:
		m.cfg.logger.Warn("unknown event ignored", slog.Any("event", ev))
		return m.State(), nil
	}
	m.state = next

	log := m.cfg.logger.With(
		slog.String("event", ev.eventName()),
		slog.String("status", string(next.Status)),
		slog.Int("step", next.CurrentStep),
		slog.Int("history", len(next.History)),
	)
	if err != nil {
		log.Warn("transition failed", slog.String("error", err.Error()))
	} else {
		log.Debug("transition")
	}

	for _, obs := range m.cfg.observers {
		if oerr := obs.Observe(next.Clone()); oerr != nil {
			m.cfg.logger.Error("observer failed", slog.String("error", oerr.Error()))
		}
	}

	return next.Clone(), err
}
