package duality

import (
	"sort"

	"github.com/katalvlaran/genpos/geom"
)

// dualLine is the dual of the point (a, b): the line y = m·x + c with
// slope m = a and intercept c = −b. Transient; never escapes a call.
type dualLine struct {
	m, c float64
}

// intersection is the meeting point of two dual lines, kept only for
// duplicate detection within one evaluation.
type intersection struct {
	x, y float64
}

// IsGeneralPosition reports whether no three points of pts are collinear,
// using the dual-line concurrency criterion.
//
// Algorithm outline:
//  1. Resolve the numeric policy (geom.ErrBadEpsilon on misconfiguration)
//     and validate coordinates (geom.ErrNonFinite on NaN/±Inf).
//  2. Fewer than three points are vacuously in general position; fewer than
//     two would not even yield a pair to intersect.
//  3. Exact duplicate points decide false immediately.
//  4. Collinear triples among points sharing one x-coordinate (within
//     tolerance) decide false. Their duals are parallel, so this
//     configuration can never surface as a finite intersection duplicate and
//     must be resolved before the intersection stage; a same-x run whose
//     y-values form a genuine triangle falls through.
//  5. Intersect the duals of every remaining pair. Pairs with near-equal
//     slopes have no finite intersection and are excluded from the multiset;
//     a triple hiding behind one such excluded pair is still witnessed by
//     its other two pairs, whose intersections coincide.
//  6. Sort intersections lexicographically and compare neighbours within the
//     x tolerance window via geom.NearlyEqual; any match between distinct
//     pairs means a concurrent dual triple, hence a collinear point triple.
//
// Complexity: O(n²) pairs + O(n² log n) sorting; O(n²) transient memory.
func IsGeneralPosition(pts []geom.Point, opts ...geom.Option) (bool, error) {
	o, err := geom.NewOptions(opts...)
	if err != nil {
		return false, err
	}
	if err = geom.ValidatePoints(pts); err != nil {
		return false, err
	}

	n := len(pts)
	if n < 3 {
		return true, nil
	}
	if hasExactDuplicate(pts) {
		return false, nil
	}
	if hasCollinearVerticalRun(pts, o.Epsilon) {
		return false, nil
	}

	lines := make([]dualLine, n)
	for i, p := range pts {
		lines[i] = dualLine{m: p.X, c: -p.Y}
	}

	meets := make([]intersection, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			// Near-equal slopes: parallel duals, no finite intersection.
			if geom.NearlyEqual(lines[i].m, lines[j].m, o.Epsilon) {
				continue
			}
			x := (lines[j].c - lines[i].c) / (lines[i].m - lines[j].m)
			meets = append(meets, intersection{x: x, y: lines[i].m*x + lines[i].c})
		}
	}

	return !hasDuplicateIntersection(meets, o.Epsilon), nil
}

// hasExactDuplicate reports whether two points coincide bit-for-bit.
// Tolerance plays no role here: the duplicate-point policy is about
// repeated input values, not about numeric round-off.
func hasExactDuplicate(pts []geom.Point) bool {
	for i := 0; i < len(pts)-1; i++ {
		for j := i + 1; j < len(pts); j++ {
			if pts[i].X == pts[j].X && pts[i].Y == pts[j].Y {
				return true
			}
		}
	}
	return false
}

// hasCollinearVerticalRun reports whether a collinear triple hides among
// points whose x-coordinates chain within eps. Such triples have two or
// three of their dual pairs excluded as parallel, leaving at most one finite
// intersection — too few for the duplicate scan to witness — so they must be
// resolved here. Runs chain on consecutive sorted gaps, then every triple
// inside a run is confirmed with the cross product: a shared x alone does
// not certify collinearity (the y-values may spread into a genuine
// triangle).
func hasCollinearVerticalRun(pts []geom.Point, eps float64) bool {
	sorted := make([]geom.Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].X < sorted[b].X })

	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && geom.NearlyEqual(sorted[i].X, sorted[i-1].X, eps) {
			continue
		}
		if i-start >= 3 && runHasCollinearTriple(sorted[start:i], eps) {
			return true
		}
		start = i
	}
	return false
}

// runHasCollinearTriple scans all triples of one same-x run with the
// cross-product predicate. Runs are short in non-degenerate input, so the
// cubic scan stays negligible next to the O(n²) intersection stage.
func runHasCollinearTriple(run []geom.Point, eps float64) bool {
	for i := 0; i < len(run)-2; i++ {
		for j := i + 1; j < len(run)-1; j++ {
			for k := j + 1; k < len(run); k++ {
				if geom.Collinear(run[i], run[j], run[k], eps) {
					return true
				}
			}
		}
	}
	return false
}

// hasDuplicateIntersection reports whether any two entries of meets coincide
// within eps. Entries are sorted lexicographically by (x, y); each entry is
// then compared against every earlier neighbour whose x is still within
// tolerance. The backward window is required because entries with distinct
// but tolerance-equal x values are not ordered by y relative to each other.
func hasDuplicateIntersection(meets []intersection, eps float64) bool {
	sort.Slice(meets, func(a, b int) bool {
		if meets[a].x != meets[b].x {
			return meets[a].x < meets[b].x
		}
		return meets[a].y < meets[b].y
	})

	for i := 1; i < len(meets); i++ {
		for j := i - 1; j >= 0 && geom.NearlyEqual(meets[i].x, meets[j].x, eps); j-- {
			if geom.NearlyEqual(meets[i].y, meets[j].y, eps) {
				return true
			}
		}
	}
	return false
}
