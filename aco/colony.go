// Package aco - Colony: the orchestrator that runs the optimization.
//
// Lifecycle per run (Optimize):
//
//	Initializing — fresh PheromoneMatrix at τ₀, best-so-far reset.
//	Iterating    — the main loop, exactly Config.Iterations times:
//	                 1) all ants construct tours (the only parallel phase),
//	                 2) barrier,
//	                 3) evaporate, then reinforce with ALL ants' deposits,
//	                 4) global-best update + one IterationRecord.
//	Done         — iteration budget exhausted; Result assembled.
//
// Reinforcement variant: all-ant deposits, amount Q/length per ant,
// summed per edge (not elitist/iteration-best). Deposits are symmetric
// unless Config.DirectedDeposit is set.
//
// Concurrency model: ant constructions within one iteration read only
// immutable state (the DistanceMatrix and the current pheromone
// snapshot) and own private scratch, so they fan out across Workers
// goroutines with no locking. The evaporate/reinforce step is a
// single-writer phase behind a hard barrier: it completes fully before
// the next iteration's constructions begin.
package aco

import (
	"context"
	"math"
	"runtime"
	"sync"
)

// Colony runs Ant Colony Optimization over a DistanceMatrix with an
// immutable Config. A Colony is stateless between runs: Optimize may be
// called repeatedly (even concurrently) with independent results.
type Colony struct {
	cfg Config
}

// NewColony validates cfg and returns a ready Colony. Construction-time
// validation failures surface the specific sentinel immediately; no
// partially-configured Colony is ever returned.
//
// Errors: see Config.Validate.
//
// Complexity: O(1).
func NewColony(cfg Config) (*Colony, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Colony{cfg: cfg}, nil
}

// Config returns the immutable parameters this Colony was built with.
func (c *Colony) Config() Config { return c.cfg }

// Optimize computes a near-optimal ring route over dist and the full
// convergence trace. The run is a bounded synchronous computation:
// ctx is consulted between iterations only, and cancellation aborts
// the whole run with ctx.Err() — there is no partial-iteration result.
//
// Errors: ErrNilMatrix, ErrStartOutOfRange, or ctx.Err().
//
// Complexity: O(Iterations · Ants · n²) time, O(Ants · n) space.
func (c *Colony) Optimize(ctx context.Context, dist *DistanceMatrix) (Result, error) {
	// Stage 1: instance validation (Config was validated at construction).
	if dist == nil {
		return Result{}, ErrNilMatrix
	}
	n := dist.Len()
	if c.cfg.StartVertex >= n {
		return Result{}, ErrStartOutOfRange
	}

	workers := c.cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > c.cfg.Ants {
		workers = c.cfg.Ants
	}

	// Stage 2: Initializing — pheromone table at τ₀, best reset to "none".
	ph, err := NewPheromoneMatrix(n, c.cfg.PheromoneInit)
	if err != nil {
		return Result{}, err
	}

	var (
		ants       = c.cfg.Ants
		tours      = make([][]int, ants)   // per-ant tour of this iteration
		lengths    = make([]float64, ants) // per-ant tour length
		scratches  = make([]*antScratch, workers)
		bestTour   []int // global best permutation
		bestLength = math.Inf(1)
		history    = make([]IterationRecord, 0, c.cfg.Iterations)
	)

	var a int
	for a = 0; a < ants; a++ {
		tours[a] = make([]int, n)
	}
	var w int
	for w = 0; w < workers; w++ {
		scratches[w] = newAntScratch(n)
	}

	// Stage 3: Iterating.
	var iter int
	for iter = 0; iter < c.cfg.Iterations; iter++ {
		// Cancellation is honored wholesale between iterations.
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		// 3.1: construct all tours. Each ant owns an independent RNG
		// stream derived from (Seed, iteration, ant index), so serial
		// and parallel schedules produce byte-identical results.
		if workers == 1 {
			c.constructRange(dist, ph, iter, 0, 1, tours, lengths, scratches[0])
		} else {
			var wg sync.WaitGroup
			wg.Add(workers)
			for w = 0; w < workers; w++ {
				go func(slot int) {
					defer wg.Done()
					c.constructRange(dist, ph, iter, slot, workers, tours, lengths, scratches[slot])
				}(w)
			}
			wg.Wait() // hard barrier: no pheromone write until every ant is done
		}

		// 3.2: iteration statistics + global-best update (index order
		// keeps tie-breaking deterministic).
		var (
			iterBest = math.Inf(1)
			sum      float64
		)
		for a = 0; a < ants; a++ {
			sum += lengths[a]
			if lengths[a] < iterBest {
				iterBest = lengths[a]
			}
			if lengths[a] < bestLength {
				bestLength = lengths[a]
				bestTour = CopyTour(tours[a])
			}
		}

		// 3.3: evaporate, then reinforce with every ant's contribution.
		if err = ph.Evaporate(c.cfg.Evaporation); err != nil {
			return Result{}, err
		}
		for a = 0; a < ants; a++ {
			if lengths[a] <= 0 {
				// A zero-length tour cannot scale Q meaningfully; skip.
				continue
			}
			if err = ph.ReinforceTour(tours[a], c.cfg.Q/lengths[a], c.cfg.DirectedDeposit); err != nil {
				return Result{}, err
			}
		}

		// 3.4: convergence bookkeeping.
		history = append(history, IterationRecord{
			Iteration:        iter,
			BestLength:       round1e9(iterBest),
			MeanLength:       round1e9(sum / float64(ants)),
			GlobalBestLength: round1e9(bestLength),
		})
	}

	// Stage 4: Done — rotate the winner to the configured start.
	return Result{
		Tour:    rotateToStart(bestTour, c.cfg.StartVertex),
		Length:  round1e9(bestLength),
		History: history,
	}, nil
}

// constructRange builds the tours of ants {first, first+stride, …}
// within one iteration using one scratch buffer. Used both serially
// (stride 1) and as a worker body (stride == workers).
func (c *Colony) constructRange(dist *DistanceMatrix, ph *PheromoneMatrix, iter, first, stride int, tours [][]int, lengths []float64, s *antScratch) {
	n := dist.Len()

	var a int
	for a = first; a < c.cfg.Ants; a += stride {
		rng := antRNG(c.cfg.Seed, iter, a)
		start := c.cfg.StartVertex
		if c.cfg.RandomStarts {
			start = rng.Intn(n)
		}
		lengths[a] = buildTour(dist, ph, c.cfg, rng, start, s)
		copy(tours[a], s.tour)
	}
}
