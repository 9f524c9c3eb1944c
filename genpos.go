package genpos

import (
	"github.com/katalvlaran/genpos/bruteforce"
	"github.com/katalvlaran/genpos/duality"
	"github.com/katalvlaran/genpos/geom"
)

// Checker is the strategy interface over the two general-position
// algorithms. Implementations are stateless; a Checker value may be reused
// and called concurrently on independent inputs.
type Checker interface {
	// IsGeneralPosition reports whether no three points of pts are collinear
	// under the resolved numeric policy. Errors are geom.ErrNonFinite for
	// NaN/±Inf coordinates and geom.ErrBadEpsilon for a misconfigured
	// tolerance; degenerate geometry is a boolean outcome, never an error.
	IsGeneralPosition(pts []geom.Point, opts ...geom.Option) (bool, error)

	// Name identifies the algorithm in comparison output.
	Name() string
}

type bruteForceChecker struct{}

func (bruteForceChecker) IsGeneralPosition(pts []geom.Point, opts ...geom.Option) (bool, error) {
	return bruteforce.IsGeneralPosition(pts, opts...)
}

func (bruteForceChecker) Name() string { return "brute-force" }

type dualityChecker struct{}

func (dualityChecker) IsGeneralPosition(pts []geom.Point, opts ...geom.Option) (bool, error) {
	return duality.IsGeneralPosition(pts, opts...)
}

func (dualityChecker) Name() string { return "duality" }

// BruteForce returns the O(n³) triple-scan checker.
func BruteForce() Checker { return bruteForceChecker{} }

// Duality returns the O(n²) dual-line concurrency checker.
func Duality() Checker { return dualityChecker{} }

// Checkers returns both algorithms, brute force first, for harnesses that
// run them side by side.
func Checkers() []Checker {
	return []Checker{BruteForce(), Duality()}
}

// BruteForceGeneralPosition is the package-level convenience form of
// BruteForce().IsGeneralPosition.
func BruteForceGeneralPosition(pts []geom.Point, opts ...geom.Option) (bool, error) {
	return bruteforce.IsGeneralPosition(pts, opts...)
}

// DualityGeneralPosition is the package-level convenience form of
// Duality().IsGeneralPosition.
func DualityGeneralPosition(pts []geom.Point, opts ...geom.Option) (bool, error) {
	return duality.IsGeneralPosition(pts, opts...)
}
