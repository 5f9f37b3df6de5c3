package aco

// Config holds all Colony parameters. It is supplied once at
// construction and immutable thereafter: every component that needs a
// parameter receives it explicitly, never through ambient state.
type Config struct {
	// Ants is the number of tours constructed per iteration.
	Ants int

	// Iterations is the fixed iteration budget. Termination is purely
	// iteration-count-bounded; there is no early stopping.
	Iterations int

	// Alpha is the pheromone influence exponent (α ≥ 0).
	Alpha float64

	// Beta is the heuristic (inverse-distance) influence exponent (β ≥ 0).
	Beta float64

	// Evaporation is the per-iteration pheromone decay rate ρ ∈ (0, 1).
	Evaporation float64

	// Q scales reinforcement: each ant deposits Q / tourLength on every
	// edge of its tour.
	Q float64

	// PheromoneInit is τ₀, the strictly positive initial level of every
	// pheromone entry.
	PheromoneInit float64

	// Seed drives all randomness. Zero selects a fixed default seed, so
	// the zero value is still fully deterministic.
	Seed int64

	// StartVertex is the waypoint every tour starts from (and is rotated
	// to in the result). Must lie in [0, N) for the instance optimized.
	StartVertex int

	// RandomStarts lets each ant start from its own random waypoint
	// instead of StartVertex. Tour lengths stay comparable because every
	// tour is a closed cycle; the result is still rotated to StartVertex.
	RandomStarts bool

	// DirectedDeposit reinforces only the exact arcs an ant traversed.
	// The default (false) deposits symmetrically on (i,j) and (j,i),
	// matching undirected road distances.
	DirectedDeposit bool

	// Workers bounds the goroutines constructing tours within one
	// iteration. 0 means runtime.NumCPU(); 1 means serial. The value
	// never affects results, only wall-clock time.
	Workers int
}

// DefaultConfig returns the reference parameterization: 20 ants,
// 100 iterations, α=1, β=5, ρ=0.5, Q=100, τ₀=1, fixed start at
// waypoint 0, symmetric deposits, serial construction.
func DefaultConfig() Config {
	return Config{
		Ants:          20,
		Iterations:    100,
		Alpha:         1.0,
		Beta:          5.0,
		Evaporation:   0.5,
		Q:             100.0,
		PheromoneInit: 1.0,
		StartVertex:   0,
		Workers:       1,
	}
}

// Validate checks every parameter range and returns the matching
// sentinel for the first violation. The StartVertex upper bound is
// instance-dependent and therefore checked in Colony.Optimize, once N
// is known.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.Ants <= 0 {
		return ErrBadAntCount
	}
	if c.Iterations <= 0 {
		return ErrBadIterationCount
	}
	if c.Alpha < 0 {
		return ErrBadAlpha
	}
	if c.Beta < 0 {
		return ErrBadBeta
	}
	if c.Evaporation <= 0 || c.Evaporation >= 1 {
		return ErrBadEvaporation
	}
	if c.Q <= 0 {
		return ErrBadDeposit
	}
	if c.PheromoneInit <= 0 {
		return ErrBadPheromoneInit
	}
	if c.StartVertex < 0 {
		return ErrStartOutOfRange
	}
	if c.Workers < 0 {
		return ErrBadWorkerCount
	}

	return nil
}
