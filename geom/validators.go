// SPDX-License-Identifier: MIT
// Package geom: canonical input guards shared by both checkers.
// Validators are pure, deterministic and allocate nothing; they return the
// plain sentinels from errors.go so call sites can match with errors.Is.

package geom

import "math"

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidatePoints ensures every coordinate in pts is finite.
// Returns ErrNonFinite on the first offending point; nil input and the empty
// set are valid.
//
// Complexity: O(n).
func ValidatePoints(pts []Point) error {
	for _, p := range pts {
		if !IsFinite(p.X) || !IsFinite(p.Y) {
			return ErrNonFinite
		}
	}
	return nil
}

// ValidateEpsilon ensures eps is a usable tolerance: finite and strictly
// inside (0, MaxEpsilon). Returns ErrBadEpsilon otherwise.
//
// Complexity: O(1).
func ValidateEpsilon(eps float64) error {
	if !IsFinite(eps) || eps <= 0 || eps >= MaxEpsilon {
		return ErrBadEpsilon
	}
	return nil
}
