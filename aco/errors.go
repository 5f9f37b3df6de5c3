// Package aco: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the aco
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package aco

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "aco: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// TAXONOMY:
// matrix-shape sentinels cover everything wrong with a distance table;
// parameter sentinels cover Config range violations. A degenerate selection
// (zero-mass probability distribution) is NOT an error: construction falls
// back to a uniform choice among unvisited waypoints.

var (
	// ErrNilMatrix indicates that a nil matrix (or nil row set) was supplied.
	ErrNilMatrix = errors.New("aco: matrix is nil")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("aco: matrix is not square")

	// ErrDimensionMismatch indicates ragged rows or an index set that does not
	// match the matrix order (e.g., a tour over the wrong waypoint count).
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrTooFewWaypoints signals an instance below the minimum order (N ≥ 3).
	// A ring route over fewer than three waypoints is degenerate.
	ErrTooFewWaypoints = errors.New("aco: fewer than three waypoints")

	// ErrNegativeWeight signals a negative travel cost; costs must be ≥ 0.
	ErrNegativeWeight = errors.New("aco: negative distance entry")

	// ErrNonZeroDiagonal signals that distance[i][i] != 0 for some i.
	ErrNonZeroDiagonal = errors.New("aco: diagonal entry not zero")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (distance ingestion).
	ErrNaNInf = errors.New("aco: NaN or Inf encountered")

	// ErrIndexOutOfRange indicates that a waypoint index is outside [0, N).
	ErrIndexOutOfRange = errors.New("aco: waypoint index out of range")

	// ErrStartOutOfRange indicates that the configured start waypoint does not
	// exist in the instance being optimized.
	ErrStartOutOfRange = errors.New("aco: start waypoint out of range")

	// ErrBadAntCount indicates Ants ≤ 0.
	ErrBadAntCount = errors.New("aco: ant count must be positive")

	// ErrBadIterationCount indicates Iterations ≤ 0.
	ErrBadIterationCount = errors.New("aco: iteration count must be positive")

	// ErrBadAlpha indicates a negative pheromone-influence exponent.
	ErrBadAlpha = errors.New("aco: alpha must be non-negative")

	// ErrBadBeta indicates a negative heuristic-influence exponent.
	ErrBadBeta = errors.New("aco: beta must be non-negative")

	// ErrBadEvaporation indicates an evaporation rate outside (0, 1).
	ErrBadEvaporation = errors.New("aco: evaporation rate must lie in (0,1)")

	// ErrBadDeposit indicates a non-positive deposit constant Q.
	ErrBadDeposit = errors.New("aco: deposit constant must be positive")

	// ErrBadPheromoneInit indicates a non-positive initial pheromone τ₀.
	// Zero initial pheromone would make undiscovered edges unselectable.
	ErrBadPheromoneInit = errors.New("aco: initial pheromone must be positive")

	// ErrBadWorkerCount indicates a negative Workers value (0 means NumCPU).
	ErrBadWorkerCount = errors.New("aco: worker count must be non-negative")
)
