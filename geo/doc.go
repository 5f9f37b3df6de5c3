// Package geo provides great-circle distance computation and builds
// aco.DistanceMatrix tables directly from waypoint coordinates.
//
// It is the geometric fallback of the distance-source chain: when no
// road-network source is available, haversine distances give a
// symmetric, zero-diagonal matrix that always satisfies the optimizer's
// invariants. Great-circle distances underestimate real driving
// distances but preserve their relative ordering well enough for ring
// routing over a compact area (a campus, a district).
package geo
