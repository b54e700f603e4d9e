// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Where options apply:
//   - eps: pivot search in Rank and the singularity threshold in Inverse.
//   - validateNaNInf: ingestion in NewFromSlice/NewFromRows and Set on the result.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// MachineEpsilon is the float64 machine epsilon (2^-52 ≈ 2.22e-16), the gap
// between 1.0 and the next representable float64.
const MachineEpsilon = 0x1p-52

const (
	// DefaultEpsilon is the threshold used by Rank (pivot magnitude) and
	// Inverse (|det| below it means singular).
	DefaultEpsilon = MachineEpsilon

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Off by default: scalar and Hadamard division are allowed to produce ±Inf.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance used by Rank and Inverse.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps = 0 makes Inverse reject only an exact zero determinant and
//     Rank treat any nonzero entry as a pivot.
//
// AI-Hints:
//   - Matrices built from measured data usually want 1e-9..1e-12 rather than
//     machine epsilon; accumulated rounding easily exceeds 2.2e-16.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation: NaN and ±Inf
// are rejected with ErrNaNInf at ingestion and on later Set, Fill and in-place
// Apply calls. Kernel outputs are not checked: results inherit the flag, so
// HadamardDiv by a zero element still returns ±Inf, and only later writes
// into that result are rejected.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables strict finite-value validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts into an Options value (defaults first,
// then opts in order, last writer wins).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether strict finite-value validation is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user setters over the documented defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
