// Package pointgen - RNG policy shared by all generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical point sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Safety: no panics; only sentinel errors from errors.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each generator call builds its
//     own *rand.Rand, so concurrent calls never share state.
package pointgen

import (
	"math/rand"

	"github.com/katalvlaran/genpos/geom"
)

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// shufflePoints performs an in-place Fisher–Yates shuffle, hiding planted
// structure at rng-chosen slice positions.
//
// Complexity: O(n) time, O(1) extra space.
func shufflePoints(pts []geom.Point, rng *rand.Rand) {
	for i := len(pts) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}
