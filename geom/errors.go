// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
// This file defines ONLY package-level sentinel errors used across genpos.
// Checkers MUST return these sentinels and tests MUST match them via
// errors.Is. No function panics on user-supplied input; degenerate geometry
// (duplicate points, vertical lines) is a defined boolean outcome, never an
// error.

package geom

import "errors"

var (
	// ErrNonFinite signals a NaN or ±Inf coordinate in the input point set.
	// Downstream arithmetic cannot give a meaningful general-position answer,
	// so validation fails fast instead of propagating non-finite values.
	ErrNonFinite = errors.New("geom: non-finite coordinate (NaN or Inf)")

	// ErrBadEpsilon signals a misconfigured tolerance: eps must satisfy
	// 0 < eps < MaxEpsilon. The policy is rejected, never silently clamped.
	ErrBadEpsilon = errors.New("geom: epsilon out of range")
)
