package geo

import (
	"math"

	"github.com/katalvlaran/ringroute/aco"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64 // latitude, [-90, 90]
	Lng float64 // longitude, [-180, 180]
}

// HaversineKm returns the great-circle distance in kilometres between
// (lat1, lon1) and (lat2, lon2), both in decimal degrees.
//
// The haversine formula computes the shortest distance over the
// sphere's surface; it is exact on the sphere and within ~0.5% of
// geodesic distance on the real Earth.
//
// Complexity: O(1).
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	var (
		phi1 = lat1 * math.Pi / 180
		phi2 = lat2 * math.Pi / 180
		dPhi = (lat2 - lat1) * math.Pi / 180
		dLam = (lon2 - lon1) * math.Pi / 180
	)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLam/2)*math.Sin(dLam/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Distance returns the great-circle distance in kilometres between two
// points.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return HaversineKm(p.Lat, p.Lng, q.Lat, q.Lng)
}

// BuildDistanceMatrix computes the full pairwise haversine matrix over
// points and returns it as a validated aco.DistanceMatrix. The result
// is symmetric with a zero diagonal by construction.
//
// Errors: those of aco.NewDistanceMatrix (notably aco.ErrTooFewWaypoints
// for fewer than three points).
//
// Complexity: O(n²) time and space.
func BuildDistanceMatrix(points []Point) (*aco.DistanceMatrix, error) {
	n := len(points)
	rows := make([][]float64, n)

	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := Distance(points[i], points[j])
			rows[i][j] = d
			rows[j][i] = d // great-circle distance is symmetric
		}
	}

	return aco.NewDistanceMatrix(rows)
}
