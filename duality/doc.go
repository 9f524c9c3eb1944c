// Package duality decides general position of a planar point set through
// projective duality.
//
// 🚀 How does it work?
//
//	Each point (a, b) maps to the dual line y = a·x − b. Three points are
//	collinear exactly when their three dual lines are concurrent (meet in
//	one common point). A collinear triple contributes three pairs of dual
//	lines whose pairwise intersections all coincide, so "some intersection
//	value occurs for more than one pair" is equivalent to "some triple is
//	collinear". The checker therefore intersects all C(n,2) dual pairs and
//	looks for duplicate intersection values under the shared tolerance.
//
// ✨ Degenerate cases, handled explicitly:
//   - exact duplicate points   → false immediately (defined policy)
//   - points sharing an x     → their duals are parallel and produce no
//     finite intersection; three or more on one vertical line are caught by
//     a dedicated same-x pass, so no Inf/NaN coordinate is ever fabricated
//   - near-equal values        → duplicate detection compares sorted
//     neighbours with geom.NearlyEqual, never exact float hashing
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/genpos/duality"
//
//	ok, err := duality.IsGeneralPosition(pts)
//	if err != nil {
//	  // geom.ErrNonFinite or geom.ErrBadEpsilon
//	}
//
// Performance:
//
//   - Time:   O(n²) pair construction + O(n² log n) duplicate detection
//   - Memory: O(n²) transient intersections, released on return
//
// The function is pure and deterministic; all derived lines and
// intersections live only inside a single call.
package duality
