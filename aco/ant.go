// Package aco - ant tour construction.
//
// One ant builds exactly one closed tour per construction episode:
// probabilistic nearest-neighbor-style growth guided by pheromone and
// inverse distance. Ants only READ the two matrices; all scratch state
// (partial tour, unvisited set, selection weights) is private to the
// episode. Reinforcement is applied by the Colony after all ants of the
// iteration finish.
package aco

import (
	"math"
	"math/rand"
)

// zeroCostEta substitutes 1/cost for a zero-cost non-self edge. The
// heuristic must stay finite; 1e9 makes such edges overwhelmingly
// attractive without poisoning the weight sum with +Inf.
const zeroCostEta = 1e9

// antScratch is the per-construction-episode state owned by one ant:
// the partial tour and the unvisited set (swap-remove list) plus the
// selection weight buffer. Reused across episodes to avoid per-tour
// allocations.
type antScratch struct {
	tour    []int     // construction output, length n
	avail   []int     // unvisited waypoints, first `rem` entries live
	weights []float64 // roulette weights aligned with avail
}

func newAntScratch(n int) *antScratch {
	return &antScratch{
		tour:    make([]int, n),
		avail:   make([]int, n),
		weights: make([]float64, n),
	}
}

// buildTour constructs one closed tour starting at start and returns
// its total length (closing edge included, unrounded).
//
// Selection rule per step, from current waypoint i over unvisited j:
//
//	score(j) = level(i,j)^α · eta(i,j)^β,  eta = 1/cost (zeroCostEta if cost==0)
//
// Scores are sampled by roulette wheel. A zero-mass (or non-finite)
// distribution falls back to a uniform choice among unvisited — the
// degenerate case is absorbed, never surfaced as an error.
//
// Complexity: O(n²) time per tour, O(1) allocations (scratch reuse).
func buildTour(dist *DistanceMatrix, ph *PheromoneMatrix, cfg Config, rng *rand.Rand, start int, s *antScratch) float64 {
	n := dist.Len()

	// Reset the unvisited set and place the start waypoint.
	var i int
	for i = 0; i < n; i++ {
		s.avail[i] = i
	}
	s.tour[0] = start
	// Swap-remove start from the unvisited list.
	s.avail[start], s.avail[n-1] = s.avail[n-1], s.avail[start]
	rem := n - 1

	var (
		cur    = start  // current waypoint
		length float64  // running tour cost
		pos    int      // next tour position to fill
		j      int      // candidate scan index
		cand   int      // candidate waypoint
		d      float64  // direct cost cur→cand
		eta    float64  // heuristic desirability
		w      float64  // roulette weight
		sumW   float64  // total roulette mass
		chosen int      // index into avail of the selected waypoint
		next   int      // selected waypoint
	)

	for pos = 1; pos < n; pos++ {
		// Score every unvisited candidate.
		sumW = 0
		for j = 0; j < rem; j++ {
			cand = s.avail[j]
			d = dist.at(cur, cand)
			if d == 0 {
				eta = zeroCostEta
			} else {
				eta = 1.0 / d
			}
			w = fastPow(ph.level(cur, cand), cfg.Alpha) * fastPow(eta, cfg.Beta)
			s.weights[j] = w
			sumW += w
		}

		// Roulette selection; uniform fallback on a degenerate mass.
		if sumW <= 0 || math.IsNaN(sumW) || math.IsInf(sumW, 0) {
			chosen = rng.Intn(rem)
		} else {
			r := rng.Float64() * sumW
			acc := 0.0
			chosen = rem - 1
			for j = 0; j < rem; j++ {
				acc += s.weights[j]
				if r <= acc {
					chosen = j
					break
				}
			}
		}

		next = s.avail[chosen]
		s.tour[pos] = next
		length += dist.at(cur, next)
		cur = next

		// Swap-remove the selected waypoint from the unvisited set.
		s.avail[chosen], s.avail[rem-1] = s.avail[rem-1], s.avail[chosen]
		rem--
	}

	// Close the cycle back to the start.
	length += dist.at(cur, start)

	return length
}

// fastPow avoids math.Pow for the exponents that dominate in practice.
//
// Complexity: O(1).
func fastPow(x, p float64) float64 {
	if p == 0 {
		return 1.0
	}
	if p == 1 {
		return x
	}
	if p == 2 {
		return x * x
	}

	return math.Pow(x, p)
}
