// SPDX-License-Identifier: MIT
// Package geom: functional configuration of the numeric policy shared by all
// checkers. This file defines:
//   - Option / Options (functional options with deferred validation),
//   - documented defaults (constants),
//   - NewOptions helper that resolves and validates a full policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: invalid parameters surface as ErrBadEpsilon at
//     call time; nothing is clamped or corrected behind the caller's back.
//   - Reusability: both checkers consume ...Option and share one policy.

package geom

// Numeric policy defaults.
const (
	// DefaultEpsilon is the tolerance used when the caller supplies none.
	// It is applied as a mixed absolute/relative margin (see NearlyEqual).
	DefaultEpsilon = 1e-9

	// MaxEpsilon bounds the tolerance from above. An epsilon of 1 or more
	// would treat values differing by their own magnitude as equal, which
	// can no longer distinguish any geometric configuration.
	MaxEpsilon = 1.0
)

// Option configures the numeric policy via functional arguments.
// An invalid value is recorded and surfaced as ErrBadEpsilon when the
// consuming checker resolves its options.
type Option func(*Options)

// Options holds the resolved numeric policy.
type Options struct {
	// Epsilon is the comparison tolerance; must satisfy 0 < Epsilon < MaxEpsilon.
	Epsilon float64

	// err records the first invalid option, reported by NewOptions.
	err error
}

// DefaultOptions returns the policy used when no Option is supplied:
// Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon overrides the comparison tolerance.
//
//	0 < eps < MaxEpsilon: accepted verbatim
//	anything else:        ErrBadEpsilon when the checker runs
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if err := ValidateEpsilon(eps); err != nil {
			o.err = err
			return
		}
		o.Epsilon = eps
	}
}

// NewOptions resolves opts over DefaultOptions and validates the result.
// Checkers call this first and propagate its error before touching points.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
