// Package bruteforce decides general position of a planar point set by
// exhaustive triple enumeration.
//
// 🚀 What is general position?
//
//	A point set is in general position when no three of its members lie on
//	one straight line. The brute-force checker tests every unordered triple
//	(i < j < k) with the division-free cross-product predicate from
//	package geom and answers false as soon as one collinear triple appears.
//
// ✨ Key properties:
//   - no division: vertical segments and duplicate points need no special
//     casing and can never raise Inf/NaN from finite input
//   - duplicate points zero the cross product and therefore yield false
//   - tolerance-based comparison via the shared geom numeric policy
//   - short-circuit on the first collinear triple
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/genpos/bruteforce"
//
//	ok, err := bruteforce.IsGeneralPosition(pts)
//	if err != nil {
//	  // geom.ErrNonFinite or geom.ErrBadEpsilon
//	}
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(1) beyond loop state
//
// The function is pure and deterministic; input order influences only how
// early the short-circuit fires, never the boolean result.
package bruteforce
