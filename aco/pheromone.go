// Package aco - PheromoneMatrix: the shared desirability table that the
// colony evolves once per iteration.
//
// Update cycle contract (enforced by Colony, documented here):
//   - Order is always evaporate-then-reinforce within an iteration.
//   - Both steps are applied once per iteration across ALL ants'
//     contributions, not per ant.
//   - No ant writes to this table during tour construction; the colony
//     is the single writer, inside the iteration barrier.
//
// Strict positivity: evaporation floors every entry at pheromoneFloor,
// so no edge ever becomes unselectable regardless of ρ or run length.
package aco

// pheromoneFloor is the smallest value any pheromone entry may decay to.
// Keeping entries strictly positive keeps every edge selectable.
const pheromoneFloor = 1e-12

// PheromoneMatrix is a mutable N×N table of strictly positive
// desirability values, indexed like the DistanceMatrix it accompanies.
type PheromoneMatrix struct {
	n    int       // matrix order
	data []float64 // flat row-major storage, length n*n, all entries > 0
}

// NewPheromoneMatrix builds an N×N table with every entry set to tau0.
//
// Errors: ErrTooFewWaypoints if n < 3, ErrBadPheromoneInit if tau0 ≤ 0
// (a zero τ₀ would give undiscovered edges zero attraction forever).
//
// Complexity: O(n²) time and space.
func NewPheromoneMatrix(n int, tau0 float64) (*PheromoneMatrix, error) {
	if n < minWaypoints {
		return nil, ErrTooFewWaypoints
	}
	if tau0 <= 0 {
		return nil, ErrBadPheromoneInit
	}
	data := make([]float64, n*n)

	var i int
	for i = range data {
		data[i] = tau0
	}

	return &PheromoneMatrix{n: n, data: data}, nil
}

// Len returns the matrix order N.
//
// Complexity: O(1).
func (p *PheromoneMatrix) Len() int { return p.n }

// Level returns the pheromone level on the directed edge i→j.
// Returns ErrIndexOutOfRange if either index is outside [0, N).
//
// Complexity: O(1).
func (p *PheromoneMatrix) Level(i, j int) (float64, error) {
	if i < 0 || i >= p.n || j < 0 || j >= p.n {
		return 0, ErrIndexOutOfRange
	}

	return p.data[i*p.n+j], nil
}

// level is the unchecked hot-path accessor for construction loops.
func (p *PheromoneMatrix) level(i, j int) float64 { return p.data[i*p.n+j] }

// Evaporate multiplies every entry by (1 − rho) and floors the result
// at pheromoneFloor, preserving strict positivity.
//
// Errors: ErrBadEvaporation if rho ∉ (0, 1).
//
// Complexity: O(n²).
func (p *PheromoneMatrix) Evaporate(rho float64) error {
	if rho <= 0 || rho >= 1 {
		return ErrBadEvaporation
	}
	keep := 1.0 - rho

	var i int
	for i = range p.data {
		p.data[i] *= keep
		if p.data[i] < pheromoneFloor {
			p.data[i] = pheromoneFloor
		}
	}

	return nil
}

// Deposit adds amount to the directed edge i→j. Negative or zero
// amounts are ignored (a deposit never removes pheromone; decay is
// Evaporate's job).
//
// Errors: ErrIndexOutOfRange if either index is outside [0, N).
//
// Complexity: O(1).
func (p *PheromoneMatrix) Deposit(i, j int, amount float64) error {
	if i < 0 || i >= p.n || j < 0 || j >= p.n {
		return ErrIndexOutOfRange
	}
	if amount > 0 {
		p.data[i*p.n+j] += amount
	}

	return nil
}

// ReinforceTour deposits amount on every edge the tour traversed,
// including the closing edge back to the first waypoint. When directed
// is false the deposit is applied symmetrically: both (i,j) and (j,i)
// receive it, modelling an undirected road network.
//
// Contract:
//   - tour is a permutation of [0, N) (the caller validates; this
//     method only bounds-checks indices).
//
// Errors: ErrDimensionMismatch if len(tour) != N,
// ErrIndexOutOfRange on any out-of-range waypoint.
//
// Complexity: O(n).
func (p *PheromoneMatrix) ReinforceTour(tour []int, amount float64, directed bool) error {
	if len(tour) != p.n {
		return ErrDimensionMismatch
	}

	var (
		k    int // edge index along the tour
		u, v int // edge endpoints
	)
	for k = 0; k < p.n; k++ {
		u = tour[k]
		v = tour[(k+1)%p.n] // wraps to the closing edge at k == n-1
		if u < 0 || u >= p.n || v < 0 || v >= p.n {
			return ErrIndexOutOfRange
		}
		if amount <= 0 {
			continue
		}
		p.data[u*p.n+v] += amount
		if !directed {
			p.data[v*p.n+u] += amount
		}
	}

	return nil
}
