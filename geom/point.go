// SPDX-License-Identifier: MIT

package geom

import "math"

// Point is an immutable planar point with finite float64 coordinates.
// Two Points may coincide; duplicate handling is a defined policy of the
// checkers, not an error of the model.
type Point struct {
	X float64
	Y float64
}

// NearlyEqual reports whether a and b are equal within eps.
//
// The margin is mixed absolute/relative: |a-b| ≤ eps·max(1, |a|, |b|).
// Near zero it behaves as an absolute tolerance of eps; for large magnitudes
// it scales with the operands, so round-off accumulated in products and
// quotients of large coordinates is still absorbed.
//
// Complexity: O(1).
func NearlyEqual(a, b, eps float64) bool {
	scale := 1.0
	if aa := math.Abs(a); aa > scale {
		scale = aa
	}
	if ab := math.Abs(b); ab > scale {
		scale = ab
	}
	return math.Abs(a-b) <= eps*scale
}

// NearlyEqual reports componentwise tolerance equality of two points.
func (p Point) NearlyEqual(q Point, eps float64) bool {
	return NearlyEqual(p.X, q.X, eps) && NearlyEqual(p.Y, q.Y, eps)
}

// Cross returns the z-component of (q-p) × (r-p):
//
//	(q.X-p.X)·(r.Y-p.Y) − (q.Y-p.Y)·(r.X-p.X)
//
// Its sign gives the orientation of the triple (counter-clockwise positive,
// clockwise negative); a value near zero means p, q, r are collinear. The
// kernel involves no division, so vertical configurations and duplicate
// points need no special casing and never produce Inf or NaN from finite
// input.
//
// Complexity: O(1).
func Cross(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// Collinear reports whether p, q, r lie on one straight line within eps.
//
// The cross product is compared against eps scaled to the magnitude of its
// own terms, not against bare eps: the products (q.X-p.X)·(r.Y-p.Y) and
// (q.Y-p.Y)·(r.X-p.X) can be large even when their difference is pure
// round-off, and an unscaled comparison would misclassify such triples.
// Duplicate points make the cross product exactly zero and are therefore
// collinear by definition.
//
// Complexity: O(1).
func Collinear(p, q, r Point, eps float64) bool {
	lhs := (q.X - p.X) * (r.Y - p.Y)
	rhs := (q.Y - p.Y) * (r.X - p.X)
	return NearlyEqual(lhs, rhs, eps)
}
