// Package aco — tour utilities shared by the colony, its tests, and
// result consumers.
//
// This file contains compact, allocation-conscious helpers that operate
// on tours (waypoint index sequences). A tour is a permutation of
// [0, N), implicitly closed: the last waypoint connects back to the
// first. Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - TourLength: recompute the closed-cycle cost independently.
//   - CloseTour: produce the explicit n+1 closed form rotated to a start.
//   - CopyTour: independent shallow copy of a tour slice.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from errors.go.
//   - O(n) time for every helper; in-place work where the contract allows.
package aco

import "math"

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting
// which tour wins.
const roundScale = 1e9

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n. It does not allocate besides a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the index contract.
		if v < 0 || v >= n {
			return ErrIndexOutOfRange
		}
		// Duplicate violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourLength recomputes the total cost of the closed cycle described by
// tour: the sum of cost(tour[k], tour[k+1]) over consecutive pairs plus
// the closing edge back to tour[0]. The input may be either a bare
// permutation (len == N) or the explicit closed form (len == N+1 with
// tour[0] == tour[N]); both describe the same cycle.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrIndexOutOfRange.
//
// Complexity: O(n) time, O(n) space (permutation re-validation).
func TourLength(dist *DistanceMatrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	n := dist.Len()

	// Accept the closed form by trimming the explicit closing waypoint.
	perm := tour
	if len(tour) == n+1 && tour[0] == tour[n] {
		perm = tour[:n]
	}
	if err := ValidatePermutation(perm, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		k   int
	)
	for k = 0; k < n; k++ {
		sum += dist.at(perm[k], perm[(k+1)%n])
	}

	return round1e9(sum), nil
}

// CloseTour returns the explicit closed form of perm rotated to begin
// at start: a fresh slice of length n+1 with out[0] == out[n] == start.
//
// Errors: ErrDimensionMismatch (not a permutation, or start missing),
// ErrIndexOutOfRange, ErrStartOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func CloseTour(perm []int, start int) ([]int, error) {
	n := len(perm)
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	rotated := rotateToStart(perm, start)
	out := make([]int, n+1)
	copy(out, rotated)
	out[n] = start

	return out, nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// rotateToStart returns a fresh permutation cyclically shifted so the
// first element equals start. Callers guarantee perm is a valid
// permutation containing start.
//
// Complexity: O(n) time, O(n) space.
func rotateToStart(perm []int, start int) []int {
	n := len(perm)

	var pivot int
	for pivot = 0; pivot < n; pivot++ {
		if perm[pivot] == start {
			break
		}
	}

	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = perm[(pivot+i)%n]
	}

	return out
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps reported lengths stable across platforms without affecting
// algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
