package aco

// IterationRecord is one row of the convergence trace. Records are
// appended once per iteration and never mutated afterwards.
type IterationRecord struct {
	// Iteration is the zero-based iteration index.
	Iteration int

	// BestLength is the shortest tour length produced by any ant in
	// this iteration.
	BestLength float64

	// MeanLength is the arithmetic mean of all ant tour lengths in
	// this iteration.
	MeanLength float64

	// GlobalBestLength is the shortest tour length seen so far across
	// all iterations, including this one. It is non-increasing over
	// the trace.
	GlobalBestLength float64
}

// Result holds the outcome of a completed Colony run.
type Result struct {
	// Tour is the best closed tour found, as a permutation of [0, N)
	// rotated so Tour[0] == Config.StartVertex. The cycle is implicit:
	// the last waypoint connects back to the first.
	Tour []int

	// Length is the total cost of Tour including the closing edge,
	// stabilized to 1e-9 precision.
	Length float64

	// History is the full ordered convergence trace, one record per
	// iteration.
	History []IterationRecord
}
