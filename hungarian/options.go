// Package hungarian: functional configuration for the solver.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes observable behavior and is tested.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
package hungarian

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the zero-test tolerance override. 0 means "derive it":
	// machine epsilon of the cost type scaled by max(1, max|cost|).
	DefaultEpsilon = 0.0

	// DefaultColumnReduction leaves column minima in place; the covering
	// loop finds the missing zeros on its own.
	DefaultColumnReduction = false

	// DefaultMaxDim disables the dimension bound.
	DefaultMaxDim = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "hungarian: WithEpsilon: eps must be finite, non-negative"
	panicMaxDimInvalid  = "hungarian: WithMaxDim: limit must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps             float64        // ≥ 0; 0 ⇒ derived tolerance
	columnReduction bool           // subtract column minima after row minima
	maxDim          int            // ≥ 0; 0 ⇒ unbounded
	log             zerolog.Logger // phase tracing; Nop by default
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		eps:             DefaultEpsilon,
		columnReduction: DefaultColumnReduction,
		maxDim:          DefaultMaxDim,
		log:             zerolog.Nop(),
	}
}

// gatherOptions applies opts over the defaults, in order; nil options are skipped.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon fixes the absolute tolerance used by every zero test.
// eps == 0 restores the derived tolerance.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithColumnReduction enables (or disables) the column-minima pass that
// follows row reduction. Both starting points reach the same optimum; column
// reduction usually saves a few adjustments.
func WithColumnReduction(on bool) Option {
	return func(o *Options) { o.columnReduction = on }
}

// WithMaxDim bounds max(n, m). Worst-case work is O(dim³), so a bound on dim
// is a deterministic bound on latency. Inputs over the limit fail with
// ErrDimensionLimit before any allocation. 0 disables the bound.
// Panics if limit is negative.
func WithMaxDim(limit int) Option {
	if limit < 0 {
		panic(panicMaxDimInvalid)
	}

	return func(o *Options) { o.maxDim = limit }
}

// WithLogger routes phase tracing to l. Debug level logs one event per phase
// transition; Trace level adds a rendered dump of the working state.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.log = l }
}
