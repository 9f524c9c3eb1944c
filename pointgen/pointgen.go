package pointgen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/genpos/geom"
)

// Planted-triple parameter offsets along the carrier line. The two outer
// points sit in disjoint ranges so the triple never degenerates into a
// duplicate pair.
const (
	tripleSpanLow  = 0.2
	tripleSpanHigh = 0.6
)

// Uniform returns n points drawn uniformly from [0,1)².
// Returns ErrNegativeCount for n < 0.
//
// Complexity: O(n).
func Uniform(n int, seed int64) ([]geom.Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	rng := rngFromSeed(seed)
	return uniform(n, rng), nil
}

// WithCollinearTriple returns n points uniform in [0,1)² with one planted
// collinear triple: an anchor plus two points along a random direction at
// non-integer offsets. Coordinates are generic floats, so detecting the
// triple requires the tolerance policy rather than exact comparison.
// Returns ErrTooFewPoints for n < 3 and ErrNegativeCount for n < 0.
//
// Complexity: O(n).
func WithCollinearTriple(n int, seed int64) ([]geom.Point, error) {
	return NearCollinear(n, seed, 0)
}

// NearCollinear is WithCollinearTriple with one outer point of the triple
// displaced perpendicular to the carrier line by jitter. A jitter far below
// the checker's epsilon still classifies as collinear; a jitter far above it
// does not. jitter = 0 plants an exactly constructed triple.
// Returns ErrBadJitter for negative or non-finite jitter.
//
// Complexity: O(n).
func NearCollinear(n int, seed int64, jitter float64) ([]geom.Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n < 3 {
		return nil, ErrTooFewPoints
	}
	if !geom.IsFinite(jitter) || jitter < 0 {
		return nil, ErrBadJitter
	}

	rng := rngFromSeed(seed)
	pts := uniform(n-3, rng)

	anchor := geom.Point{X: rng.Float64(), Y: rng.Float64()}
	theta := rng.Float64() * 2 * math.Pi
	dx, dy := math.Cos(theta), math.Sin(theta)

	// Outer point forward along the line, middle point backward, displaced
	// off-line by jitter along the perpendicular (-dy, dx).
	tFwd := tripleSpanLow + rng.Float64()*(tripleSpanHigh-tripleSpanLow)
	tBack := tripleSpanLow + rng.Float64()*(tripleSpanHigh-tripleSpanLow)

	pts = append(pts,
		anchor,
		geom.Point{X: anchor.X + tFwd*dx, Y: anchor.Y + tFwd*dy},
		geom.Point{X: anchor.X - tBack*dx - jitter*dy, Y: anchor.Y - tBack*dy + jitter*dx},
	)
	shufflePoints(pts, rng)
	return pts, nil
}

// WithDuplicate returns n points uniform in [0,1)² with one point repeated
// exactly (bit-for-bit), exercising the explicit duplicate-point policy.
// Returns ErrTooFewPoints for n < 2 and ErrNegativeCount for n < 0.
//
// Complexity: O(n).
func WithDuplicate(n int, seed int64) ([]geom.Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	rng := rngFromSeed(seed)
	pts := uniform(n, rng)
	src := rng.Intn(n)
	dst := rng.Intn(n - 1)
	if dst >= src {
		dst++
	}
	pts[dst] = pts[src]
	return pts, nil
}

// uniform fills a fresh slice with n points from rng.
func uniform(n int, rng *rand.Rand) []geom.Point {
	pts := make([]geom.Point, 0, n+3)
	for i := 0; i < n; i++ {
		pts = append(pts, geom.Point{X: rng.Float64(), Y: rng.Float64()})
	}
	return pts
}
