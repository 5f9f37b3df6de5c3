package distsource

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ringroute/aco"
	"github.com/katalvlaran/ringroute/geo"
)

// UnreachableKm is the finite cost assigned to a stop pair a source
// reports as unreachable. Large enough that no sane tour crosses such
// an edge, small enough to keep the matrix finite and valid.
const UnreachableKm = 1e9

var (
	// ErrNoSources indicates a Chain built with no sources.
	ErrNoSources = errors.New("distsource: no sources configured")

	// ErrAllSourcesFailed indicates every source in the chain failed;
	// the individual failures are joined into the returned error.
	ErrAllSourcesFailed = errors.New("distsource: all sources failed")

	// ErrMissingAPIKey indicates that no mapping API key was found in
	// the environment.
	ErrMissingAPIKey = errors.New("distsource: mapping API key not found")
)

// Stop is a named waypoint with geographic coordinates. The optimizer
// itself only ever sees matrix indices; names exist for reporting.
type Stop struct {
	Name  string
	Point geo.Point
}

// Source produces a validated distance matrix over the given stops.
// Implementations must guarantee the aco.DistanceMatrix invariants
// before returning (NewDistanceMatrix enforces them).
type Source interface {
	// Name identifies the source in chain reports and errors.
	Name() string

	// Matrix computes pairwise travel costs for stops, in kilometres.
	Matrix(ctx context.Context, stops []Stop) (*aco.DistanceMatrix, error)
}

// Chain tries its sources in order and returns the first matrix
// obtained, together with the name of the source that produced it.
type Chain struct {
	sources []Source
}

// NewChain builds a chain that consults sources in the given order.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Matrix walks the chain. On success it reports which source served the
// matrix; on total failure it returns ErrAllSourcesFailed joined with
// every per-source error, so the caller can inspect each cause via
// errors.Is/errors.As.
func (c *Chain) Matrix(ctx context.Context, stops []Stop) (*aco.DistanceMatrix, string, error) {
	if len(c.sources) == 0 {
		return nil, "", ErrNoSources
	}

	var failures []error
	for _, src := range c.sources {
		m, err := src.Matrix(ctx, stops)
		if err == nil {
			return m, src.Name(), nil
		}
		failures = append(failures, fmt.Errorf("%s: %w", src.Name(), err))

		// A cancelled context dooms every remaining source too.
		if ctx.Err() != nil {
			break
		}
	}

	return nil, "", errors.Join(append([]error{ErrAllSourcesFailed}, failures...)...)
}

// Haversine is the geometric fallback source: great-circle distances
// computed locally from stop coordinates. It performs no I/O and fails
// only on degenerate input (fewer than three stops).
type Haversine struct{}

// Name implements Source.
func (Haversine) Name() string { return "haversine" }

// Matrix implements Source via geo.BuildDistanceMatrix.
func (Haversine) Matrix(_ context.Context, stops []Stop) (*aco.DistanceMatrix, error) {
	points := make([]geo.Point, len(stops))
	for i, s := range stops {
		points[i] = s.Point
	}

	return geo.BuildDistanceMatrix(points)
}
