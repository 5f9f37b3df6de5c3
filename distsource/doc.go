// Package distsource acquires validated distance matrices for a set of
// named stops, hiding how the numbers were obtained from the optimizer.
//
// Sources are tried in a caller-defined order by Chain - typically a
// road-network API first (GoogleMaps, real driving distances) and the
// geometric haversine fallback last, which never fails for valid
// coordinates. Whatever source wins, the returned matrix already
// satisfies every aco.DistanceMatrix invariant: square, finite,
// non-negative, zero diagonal.
//
// Unreachable stop pairs reported by an API source are encoded as
// UnreachableKm (a very large finite cost) rather than +Inf, so the
// matrix stays valid and the optimizer simply never favors those edges.
package distsource
