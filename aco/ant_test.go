// White-box tests for ant tour construction: permutation validity of the
// scratch output, the zero-cost heuristic substitute, and the uniform
// fallback on a degenerate (zero-mass) selection distribution.
package aco

import (
	"math"
	"testing"
)

func mustDistance(t *testing.T, rows [][]float64) *DistanceMatrix {
	t.Helper()
	m, err := NewDistanceMatrix(rows)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}

	return m
}

func TestBuildTour_ProducesPermutationFromEveryStart(t *testing.T) {
	dist := mustDistance(t, [][]float64{
		{0, 2, 9, 4},
		{2, 0, 6, 3},
		{9, 6, 0, 1},
		{4, 3, 1, 0},
	})
	ph, err := NewPheromoneMatrix(4, 1.0)
	if err != nil {
		t.Fatalf("NewPheromoneMatrix: %v", err)
	}

	cfg := DefaultConfig()
	s := newAntScratch(4)

	for start := 0; start < 4; start++ {
		length := buildTour(dist, ph, cfg, rngFromSeed(7), start, s)

		if s.tour[0] != start {
			t.Fatalf("tour must begin at %d, got %v", start, s.tour)
		}
		if err = ValidatePermutation(s.tour, 4); err != nil {
			t.Fatalf("start %d: not a permutation: %v (%v)", start, err, s.tour)
		}

		want, err := TourLength(dist, s.tour)
		if err != nil {
			t.Fatalf("TourLength: %v", err)
		}
		if math.Abs(round1e9(length)-want) > 1e-9 {
			t.Fatalf("start %d: buildTour length %.12f != recomputed %.12f", start, length, want)
		}
	}
}

func TestBuildTour_ZeroCostEdgeStaysFinite(t *testing.T) {
	// Waypoints 0 and 1 are co-located: cost 0 both ways. The heuristic
	// substitutes zeroCostEta, so selection weights stay finite and the
	// zero-cost edge is overwhelmingly preferred.
	dist := mustDistance(t, [][]float64{
		{0, 0, 5, 5},
		{0, 0, 5, 5},
		{5, 5, 0, 5},
		{5, 5, 5, 0},
	})
	ph, err := NewPheromoneMatrix(4, 1.0)
	if err != nil {
		t.Fatalf("NewPheromoneMatrix: %v", err)
	}

	cfg := DefaultConfig()
	s := newAntScratch(4)

	length := buildTour(dist, ph, cfg, rngFromSeed(3), 0, s)

	if math.IsNaN(length) || math.IsInf(length, 0) {
		t.Fatalf("length must be finite, got %v", length)
	}
	if err = ValidatePermutation(s.tour, 4); err != nil {
		t.Fatalf("not a permutation: %v", err)
	}
	// With β=5, the co-located waypoint wins the first step.
	if s.tour[1] != 1 {
		t.Fatalf("expected zero-cost neighbor first, got tour %v", s.tour)
	}
}

func TestBuildTour_UniformFallbackOnZeroMass(t *testing.T) {
	dist := mustDistance(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	ph, err := NewPheromoneMatrix(3, 1.0)
	if err != nil {
		t.Fatalf("NewPheromoneMatrix: %v", err)
	}
	// Force the unreachable-by-contract state: zero out every level so
	// tau^α · eta^β sums to zero mass with α=1, β=0.
	for i := range ph.data {
		ph.data[i] = 0
	}

	cfg := DefaultConfig()
	cfg.Alpha = 1
	cfg.Beta = 0
	s := newAntScratch(3)

	// The degenerate distribution must fall back to a uniform choice,
	// not error or bias; the tour stays a valid permutation.
	for seed := int64(1); seed <= 20; seed++ {
		_ = buildTour(dist, ph, cfg, rngFromSeed(seed), 0, s)
		if err = ValidatePermutation(s.tour, 3); err != nil {
			t.Fatalf("seed %d: degenerate fallback broke the tour: %v", seed, err)
		}
	}
}

func TestFastPow(t *testing.T) {
	cases := []struct{ x, p, want float64 }{
		{3, 0, 1},
		{3, 1, 3},
		{3, 2, 9},
		{2, 5, 32},
	}
	for _, c := range cases {
		if got := fastPow(c.x, c.p); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("fastPow(%v,%v) = %v, want %v", c.x, c.p, got, c.want)
		}
	}
}

func TestAntStream_UniquePairs(t *testing.T) {
	seen := make(map[uint64]struct{})
	for iter := 0; iter < 50; iter++ {
		for ant := 0; ant < 50; ant++ {
			id := antStream(iter, ant)
			if _, dup := seen[id]; dup {
				t.Fatalf("stream collision at iteration %d ant %d", iter, ant)
			}
			seen[id] = struct{}{}
		}
	}
}
