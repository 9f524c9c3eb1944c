// Package geom holds the shared coordinate model and numeric policy for
// general-position checking: the planar Point value type, the tolerance-based
// float comparators, the cross-product orientation kernel, and input
// validation.
//
// 🚀 Why a numeric policy?
//
//	Both general-position checkers are built entirely on float64 arithmetic.
//	Slopes and intersection coordinates of mathematically collinear /
//	concurrent configurations virtually never compare bit-equal once the
//	inputs leave small integers, so exact `==` silently under-detects
//	collinearity. Every comparison in this module therefore goes through
//	NearlyEqual with a configurable epsilon.
//
// ✨ Key pieces:
//   - Point        — immutable (X, Y) pair
//   - NearlyEqual  — mixed absolute/relative tolerance comparison
//   - Cross        — orientation / collinearity kernel (no division)
//   - Option       — functional configuration of Epsilon with validation
//   - ValidatePoints / ValidateEpsilon — fail-fast input guards
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/genpos/geom"
//
//	pts := []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}
//	if err := geom.ValidatePoints(pts); err != nil {
//	  // geom.ErrNonFinite: a coordinate was NaN or ±Inf
//	}
//	if geom.Collinear(pts[0], pts[1], pts[2], geom.DefaultEpsilon) {
//	  // the triple lies on one line (within tolerance)
//	}
//
// All functions are pure and deterministic; the package holds no state and
// is safe for concurrent use.
package geom
