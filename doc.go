// Package genpos decides whether a finite planar point set is in general
// position — no three points collinear — and exists to compare two
// algorithms for that question against each other, in correctness and in
// cost.
//
// 🚀 What is genpos?
//
//	A small, pure-Go geometry library built around one boolean question and
//	two independent answers:
//	  • Brute force: test every unordered triple with a division-free
//	    cross-product predicate — O(n³), no extra memory.
//	  • Projective duality: map each point (a, b) to the line y = a·x − b,
//	    intersect all pairs of duals, and look for an intersection value
//	    produced by more than one pair — O(n²) pairs plus a sort.
//
// ✨ Why choose genpos?
//
//   - Tolerance done properly – every float comparison goes through a
//     configurable mixed absolute/relative epsilon; no exact `==` on
//     computed slopes or intersections anywhere
//   - Degenerate cases are defined outcomes – duplicates and vertical
//     lines return a boolean, they never panic and never divide by zero
//   - Pure functions – no shared state; safe to call concurrently on
//     independent inputs
//
// Under the hood, everything is organized under five packages:
//
//	geom/       — Point model, epsilon policy, validation, predicates
//	bruteforce/ — O(n³) triple-scan checker
//	duality/    — O(n²) dual-line concurrency checker
//	pointgen/   — deterministic random point-set generators (caller-side)
//	cmd/genpos  — CLI: generate or read points, time both checkers, render
//
// This root package carries the Checker strategy interface plus convenience
// functions mirroring the two algorithms, so comparison harnesses can treat
// them uniformly.
//
//	go get github.com/katalvlaran/genpos
package genpos
