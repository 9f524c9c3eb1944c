package genpos_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/genpos"
	"github.com/katalvlaran/genpos/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckers_Surface verifies the strategy surface: both algorithms are
// exposed, named, and answer through the interface exactly as the
// package-level convenience functions do.
func TestCheckers_Surface(t *testing.T) {
	cs := genpos.Checkers()
	require.Len(t, cs, 2)
	assert.Equal(t, "brute-force", cs[0].Name())
	assert.Equal(t, "duality", cs[1].Name())

	pts := []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}

	viaIface, err := cs[0].IsGeneralPosition(pts)
	require.NoError(t, err)
	viaFunc, err := genpos.BruteForceGeneralPosition(pts)
	require.NoError(t, err)
	assert.Equal(t, viaFunc, viaIface)

	viaIface, err = cs[1].IsGeneralPosition(pts)
	require.NoError(t, err)
	viaFunc, err = genpos.DualityGeneralPosition(pts)
	require.NoError(t, err)
	assert.Equal(t, viaFunc, viaIface)
}

// TestCheckers_SharedVectors runs the canonical fixed vectors through both
// algorithms via the strategy interface.
func TestCheckers_SharedVectors(t *testing.T) {
	cases := []struct {
		name string
		pts  []geom.Point
		want bool
	}{
		{name: "empty", pts: nil, want: true},
		{name: "pair", pts: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, want: true},
		{name: "collinear on y=2x", pts: []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}, want: false},
		{name: "triangle", pts: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, want: true},
		{name: "duplicate", pts: []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}}, want: false},
		{name: "vertical line", pts: []geom.Point{{X: 5, Y: 1}, {X: 5, Y: 9}, {X: 5, Y: -3}}, want: false},
		{name: "tight-x wide-y triangle", pts: []geom.Point{{X: 0, Y: 0}, {X: 5e-10, Y: 100}, {X: 1e-9, Y: 0}}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, c := range genpos.Checkers() {
				got, err := c.IsGeneralPosition(tc.pts)
				require.NoError(t, err, c.Name())
				assert.Equal(t, tc.want, got, c.Name())
			}
		})
	}
}

// TestCheckers_ErrorTaxonomy confirms both algorithms surface the shared
// sentinels for invalid input and misconfigured tolerance.
func TestCheckers_ErrorTaxonomy(t *testing.T) {
	for _, c := range genpos.Checkers() {
		_, err := c.IsGeneralPosition([]geom.Point{{X: math.NaN(), Y: 0}})
		assert.ErrorIs(t, err, geom.ErrNonFinite, c.Name())

		_, err = c.IsGeneralPosition([]geom.Point{{X: 0, Y: 0}}, geom.WithEpsilon(0))
		assert.ErrorIs(t, err, geom.ErrBadEpsilon, c.Name())
	}
}

// TestCheckers_Idempotent repeats the call on one immutable input and
// expects the identical verdict every time.
func TestCheckers_Idempotent(t *testing.T) {
	pts := []geom.Point{{X: 0.1, Y: 0.9}, {X: 0.4, Y: 0.2}, {X: 0.8, Y: 0.7}, {X: 0.3, Y: 0.5}}

	for _, c := range genpos.Checkers() {
		first, err := c.IsGeneralPosition(pts)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := c.IsGeneralPosition(pts)
			require.NoError(t, err)
			assert.Equal(t, first, again, c.Name())
		}
	}
}
