// Package pointgen produces deterministic random point sets for exercising
// and benchmarking the general-position checkers.
//
// It is caller-side tooling: the checkers themselves never generate input.
//
// ✨ Generators:
//   - Uniform             — n points uniform in [0,1)²
//   - WithCollinearTriple — uniform set with one planted collinear triple at
//     non-integer positions (exercises the tolerance policy, not exact
//     integer arithmetic)
//   - NearCollinear       — planted triple bent off its line by a caller
//     chosen jitter, for probing either side of the epsilon margin
//   - WithDuplicate       — uniform set with one exact duplicate injected
//
// Determinism: every generator takes an explicit seed; seed 0 maps to a
// fixed default, never to wall-clock time. The same seed yields the same
// point set on every platform and run.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/genpos/pointgen"
//
//	pts, err := pointgen.WithCollinearTriple(64, 42)
//	// pts is a 64-point set containing exactly one planted collinear triple
//	// at a rng-chosen position in the slice.
package pointgen
