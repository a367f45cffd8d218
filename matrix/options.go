// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for kernels and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultPivotTolerance is the magnitude below which a pivot is treated as
	// zero by JordanExchange. Matches the classic 1e-10 guard for doubles.
	DefaultPivotTolerance = 1e-10

	// DefaultEpsilon defines the non-negative tolerance used by structural
	// checks such as IsUnitColumn.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultElimination is the row update JordanExchange applies by default.
	DefaultElimination = ExchangeElimination
)

// Elimination selects how JordanExchange updates the rows off the pivot row.
// The pivot row is always divided by the pivot.
type Elimination string

const (
	// ExchangeElimination scales the captured factor by the pivot before
	// subtracting: out[i][j] = m[i][j] − (m[i][pc]/pivot)·out[pr][j].
	// Column pc becomes e_pr only when pivot == 1.
	ExchangeElimination Elimination = "exchange"

	// GaussJordanElimination subtracts the unscaled factor:
	// out[i][j] = m[i][j] − m[i][pc]·out[pr][j]. Column pc always becomes e_pr.
	GaussJordanElimination Elimination = "gauss-jordan"
)

// Valid reports whether e names a known elimination.
func (e Elimination) Valid() bool {
	return e == ExchangeElimination || e == GaussJordanElimination
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid        = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicEliminationInvalid    = "matrix: WithElimination: unknown elimination"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	pivotTol       float64     // >= 0; DefaultPivotTolerance
	eps            float64     // >= 0; DefaultEpsilon
	validateNaNInf bool        // DefaultValidateNaNInf
	elimination    Elimination // DefaultElimination
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the magnitude below which JordanExchange rejects a
// pivot with ErrDegeneratePivot.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - tol == 0 rejects only exact zeros.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics with a stable message when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on results.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on results (use with care).
// Kernels then propagate ±Inf/NaN produced by extreme inputs instead of
// failing with ErrNaNInf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithElimination selects the row update used by JordanExchange and
// ExchangeMatrix. Panics when e is not a known Elimination.
func WithElimination(e Elimination) Option {
	if !e.Valid() {
		panic(panicEliminationInvalid)
	}

	return func(o *Options) { o.elimination = e }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance reports the effective pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// Epsilon reports the effective structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-only validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Elimination reports the effective row update.
func (o Options) Elimination() Elimination { return o.elimination }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		elimination:    DefaultElimination,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped so callers can pass optional values through.
// Complexity: Time O(k), Space O(1) for k=len(opts).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
