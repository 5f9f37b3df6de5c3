// Package aco - RNG utilities shared by the colony and its ants.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: every ant in every iteration owns its own generator,
//     derived from (seed, iteration, ant index), so concurrent ants never
//     share a stateful generator and the Workers knob cannot change results.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Use antRNG to create the per-ant stream instead.
package aco

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - We want independent substreams derived from one base seed (one per
//     ant per iteration) without any shared generator state.
//   - We apply a SplitMix64-style avalanche mix to eliminate correlations.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small changes in inputs produce large, well-distributed
//     output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// antStream packs (iteration, ant) into a single stream identifier.
// Iterations occupy the high 32 bits, ant indices the low 32, so no two
// (iteration, ant) pairs within any practical run ever collide.
//
// Complexity: O(1).
func antStream(iteration, ant int) uint64 {
	return uint64(uint32(iteration))<<32 | uint64(uint32(ant))
}

// antRNG returns the independent deterministic generator owned by one
// ant for one construction episode.
//
// Usage:
//   - Called once per (iteration, ant); cheap enough for the hot loop
//     (one SplitMix64 mix + one source allocation per tour).
//
// Complexity: O(1).
func antRNG(seed int64, iteration, ant int) *rand.Rand {
	parent := seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, antStream(iteration, ant))))
}
