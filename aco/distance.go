// Package aco - DistanceMatrix: the immutable cost table every other
// component reads.
//
// This file provides construction-time validation (the only place a
// distance value is ever judged), O(1) cost lookup, and small analysis
// helpers (off-diagonal statistics, k-nearest neighbors).
//
// Design principles:
//   - Validate once, trust forever: after NewDistanceMatrix succeeds the
//     table is structurally sound and never mutated again.
//   - Flat row-major float64 storage for cache-friendly hot loops.
//   - Only sentinel errors from errors.go; no panics on user input.
//   - The matrix is agnostic to how its numbers were obtained (API call,
//     geometric formula, synthetic test data) - this is the seam that
//     decouples the optimizer from any distance acquisition layer.
package aco

import (
	"math"
	"sort"
)

// symTol is the structural tolerance used to classify a matrix as
// symmetric. It mirrors the diagonal tolerance: entries are compared
// exactly as stored, so only representational noise is forgiven.
const symTol = 1e-12

// minWaypoints is the smallest instance a ring route is defined over.
const minWaypoints = 3

// DistanceMatrix is an immutable N×N table of non-negative travel costs.
// distance[i][j] is the cost of travelling directly from waypoint i to
// waypoint j. Symmetry is detected but never assumed: asymmetric road
// networks (one-way streets) are first-class citizens.
type DistanceMatrix struct {
	n         int       // matrix order (number of waypoints)
	data      []float64 // flat row-major backing storage, length n*n
	symmetric bool      // true iff |a_ij − a_ji| ≤ symTol for all i,j
}

// MatrixStats summarizes the off-diagonal cost distribution.
type MatrixStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Neighbor pairs a waypoint index with its direct cost from a query
// waypoint, as returned by NearestNeighbors.
type Neighbor struct {
	Index int
	Cost  float64
}

// NewDistanceMatrix validates rows and copies them into immutable flat
// storage.
//
// Validation stages:
//  1. Shape: non-nil, square, N ≥ 3, no ragged rows.
//  2. Values: every entry finite (no NaN/±Inf), non-negative.
//  3. Diagonal: distance[i][i] == 0 exactly.
//  4. Symmetry probe (informational only; never rejects).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch,
// ErrTooFewWaypoints, ErrNaNInf, ErrNegativeWeight, ErrNonZeroDiagonal.
//
// Complexity: O(n²) time, O(n²) space for the defensive copy.
func NewDistanceMatrix(rows [][]float64) (*DistanceMatrix, error) {
	// Stage 1: shape.
	if rows == nil {
		return nil, ErrNilMatrix
	}
	n := len(rows)
	if n < minWaypoints {
		return nil, ErrTooFewWaypoints
	}

	var (
		i, j int     // loop indices
		v    float64 // entry under inspection
	)
	for i = 0; i < n; i++ {
		if rows[i] == nil {
			return nil, ErrNilMatrix
		}
		if len(rows[i]) != n {
			// A single mismatched row makes the table non-square.
			return nil, ErrNonSquare
		}
	}

	// Stage 2+3: values and diagonal, copying as we go.
	data := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if v < 0 {
				return nil, ErrNegativeWeight
			}
			if i == j && v != 0 {
				return nil, ErrNonZeroDiagonal
			}
			data[i*n+j] = v
		}
	}

	// Stage 4: symmetry probe over the upper triangle.
	sym := true
	var diff float64
probe:
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = data[i*n+j] - data[j*n+i]
			if diff < 0 {
				diff = -diff // |a_ij − a_ji|
			}
			if diff > symTol {
				sym = false
				break probe
			}
		}
	}

	return &DistanceMatrix{n: n, data: data, symmetric: sym}, nil
}

// Len returns the matrix order N (the number of waypoints).
//
// Complexity: O(1).
func (m *DistanceMatrix) Len() int { return m.n }

// Symmetric reports whether the matrix was detected symmetric at
// construction (|a_ij − a_ji| ≤ 1e-12 everywhere). Informational: no
// solver behavior depends on it unless the caller opts in.
//
// Complexity: O(1).
func (m *DistanceMatrix) Symmetric() bool { return m.symmetric }

// Cost returns the travel cost from waypoint i to waypoint j.
// Returns ErrIndexOutOfRange if either index is outside [0, N).
//
// Complexity: O(1).
func (m *DistanceMatrix) Cost(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}

	return m.data[i*m.n+j], nil
}

// at is the unchecked hot-path accessor. Callers guarantee indices are
// in range (construction already guaranteed the storage shape).
func (m *DistanceMatrix) at(i, j int) float64 { return m.data[i*m.n+j] }

// Stats computes min/max/mean/median/population-stddev over all
// off-diagonal entries.
//
// Complexity: O(n²) time for the scan plus O(n² log n) for the median sort.
func (m *DistanceMatrix) Stats() MatrixStats {
	total := m.n * (m.n - 1) // off-diagonal entry count
	vals := make([]float64, 0, total)

	var (
		i, j int
		v    float64
		sum  float64
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if i == j {
				continue
			}
			v = m.data[i*m.n+j]
			vals = append(vals, v)
			sum += v
		}
	}
	sort.Float64s(vals)

	mean := sum / float64(total)

	// Population standard deviation (matches the descriptive intent:
	// the matrix IS the whole population of edges).
	var sq float64
	for i = 0; i < total; i++ {
		sq += (vals[i] - mean) * (vals[i] - mean)
	}
	std := math.Sqrt(sq / float64(total))

	// Median over the sorted off-diagonal values.
	var median float64
	if total%2 == 1 {
		median = vals[total/2]
	} else {
		median = (vals[total/2-1] + vals[total/2]) / 2
	}

	return MatrixStats{
		Min:    vals[0],
		Max:    vals[total-1],
		Mean:   mean,
		Median: median,
		StdDev: std,
	}
}

// NearestNeighbors returns up to k waypoints closest to waypoint i by
// direct cost, ascending, ties broken by smaller index. Waypoint i
// itself is excluded.
//
// Errors: ErrIndexOutOfRange if i ∉ [0, N); k ≤ 0 yields an empty slice.
//
// Complexity: O(n log n) time, O(n) space.
func (m *DistanceMatrix) NearestNeighbors(i, k int) ([]Neighbor, error) {
	if i < 0 || i >= m.n {
		return nil, ErrIndexOutOfRange
	}
	if k <= 0 {
		return []Neighbor{}, nil
	}
	if k > m.n-1 {
		k = m.n - 1
	}

	all := make([]Neighbor, 0, m.n-1)

	var j int
	for j = 0; j < m.n; j++ {
		if j == i {
			continue
		}
		all = append(all, Neighbor{Index: j, Cost: m.data[i*m.n+j]})
	}
	sort.Slice(all, func(a, b int) bool {
		if all[a].Cost != all[b].Cost {
			return all[a].Cost < all[b].Cost
		}

		return all[a].Index < all[b].Index
	})

	return all[:k], nil
}
