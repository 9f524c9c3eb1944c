package bruteforce

import "github.com/katalvlaran/genpos/geom"

// IsGeneralPosition reports whether no three points of pts are collinear.
//
// Algorithm outline:
//  1. Resolve the numeric policy (geom.ErrBadEpsilon on misconfiguration).
//  2. Validate coordinates (geom.ErrNonFinite on NaN/±Inf).
//  3. Sets with fewer than three points are vacuously in general position.
//  4. Enumerate all triples i < j < k and test geom.Collinear; a single hit
//     decides the answer.
//
// Degenerate inputs are defined outcomes, not errors: a duplicate point
// makes its triples collinear (cross product exactly zero), a vertical
// triple is caught by the cross product without any slope division.
//
// Complexity: O(n³) time, O(1) extra space.
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

	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				if geom.Collinear(pts[i], pts[j], pts[k], o.Epsilon) {
					return false, nil
				}
			}
		}
	}

	return true, nil
}
