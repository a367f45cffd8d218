// SPDX-License-Identifier: MIT

package tableau

import (
	"io"
	"log/slog"
	"time"

	"github.com/arijitchakma79/SimplexMethodVisualizer/matrix"
)

// Observer is notified after every Machine transition, typically to persist
// the new State. Errors are logged by the Machine and never propagated.
type Observer interface {
	Observe(State) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(State) error

// Observe calls f(s).
func (f ObserverFunc) Observe(s State) error { return f(s) }

// Option configures transitions and Machine. Options are applied in order;
// nil options are ignored.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	clock     func() time.Time
	logger    *slog.Logger
	observers []Observer
	pivotOpts []matrix.Option
}

// WithClock sets the time source for history timestamps.
// Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("tableau: WithClock(nil)")
	}

	return func(o *Options) { o.clock = now }
}

// WithLogger sets the structured logger. A nil logger restores the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// WithObserver appends obs to the observers notified after each transition.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithPivotOptions forwards options to matrix.JordanExchange and
// matrix.FromRows (e.g. matrix.WithPivotTolerance, matrix.WithElimination).
// The elimination only takes effect in SetLinearProgram; pivots use the one
// recorded in the State.
func WithPivotOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.pivotOpts = append(o.pivotOpts, opts...) }
}

func defaultOptions() Options {
	return Options{
		clock:  time.Now,
		logger: discardLogger(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
