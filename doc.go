// Package ringroute computes near-optimal closed tours ("ring routes")
// over a fixed set of waypoints using Ant Colony Optimization driven
// by a precomputed pairwise distance matrix.
//
// 🚀 What is ringroute?
//
//	A small, deterministic-by-seed library that brings together:
//		• DistanceMatrix: validated, immutable N×N cost tables
//		• PheromoneMatrix: evaporate/reinforce desirability dynamics
//		• Colony: ant-per-ant probabilistic tour construction with a
//		  full per-iteration convergence trace
//		• Geometric distances: haversine great-circle matrix building
//		• Distance sources: Google Maps Distance Matrix API with a
//		  geometric fallback chain
//
// ✨ Why choose ringroute?
//
//   - Reproducible – every run is a pure function of (matrix, config, seed)
//   - Parallel-safe – ants fan out across workers without changing results
//   - Strict contracts – sentinel errors, no panics on user input
//   - Heuristic, honestly – ACO trades optimality proofs for speed
//
// Under the hood, everything is organized under three subpackages:
//
//	aco/        — the optimizer core: matrices, ants, colony, trace
//	geo/        — haversine distances and coordinate-based matrices
//	distsource/ — ordered distance-source chain (API → geometric)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │        a unit square: the perimeter (length 4) beats
//	    3───2        any crossing tour (length 2+2√2)
//
// Dive into examples/ for a runnable campus shuttle scenario and
// README-style walkthroughs of every knob.
//
//	go get github.com/katalvlaran/ringroute
package ringroute
