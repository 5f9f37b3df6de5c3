// Package aco provides an Ant Colony Optimization solver for closed
// ring routes over a fixed set of waypoints.
//
// It operates on two N×N tables indexed by waypoint:
//
//   - DistanceMatrix — immutable, validated pairwise travel costs.
//
//   - PheromoneMatrix — mutable desirability, evolved once per iteration
//     via evaporation followed by reinforcement.
//
// The Colony orchestrates M ants per iteration: each ant independently
// builds one closed tour by weighted random selection over unvisited
// waypoints, scored by pheromone^α · (1/distance)^β. After all ants of
// an iteration finish (a hard barrier), the colony evaporates the
// pheromone table and deposits Q/length along every ant's tour, tracks
// the best tour seen so far, and appends one IterationRecord to the
// convergence trace.
//
// Guarantees:
//   - Determinism: results are a pure function of (matrix, Config, Seed);
//     the Workers knob changes scheduling, never results.
//   - Strict positivity: pheromone entries never reach zero, so every
//     edge stays selectable for the lifetime of a run.
//   - No partial results: construction-time validation fails fast with
//     sentinel errors; a cancelled run returns only ctx.Err().
//
// ACO is a heuristic: it converges to near-optimal ring routes with no
// bound on solution quality. Use it for small-to-medium waypoint sets
// (the reference scenario is N=10) where exact solvers are overkill.
package aco
