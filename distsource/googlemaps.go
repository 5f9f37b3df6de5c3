package distsource

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"googlemaps.github.io/maps"

	"github.com/katalvlaran/ringroute/aco"
)

// originBatchSize bounds origins per Distance Matrix request. The API
// caps a request at 100 elements; 8 origins × up to 12 destinations
// stays under the cap for the reference scenario sizes.
const originBatchSize = 8

// elementStatusOK is the per-element status of a resolvable pair.
const elementStatusOK = "OK"

// GoogleMaps resolves real driving distances through the Google
// Distance Matrix API. Pairs the API cannot route are encoded as
// UnreachableKm; the diagonal is forced to zero.
type GoogleMaps struct {
	client *maps.Client
}

// NewGoogleMaps builds a source around an API key (see APIKeyFromEnv).
func NewGoogleMaps(apiKey string) (*GoogleMaps, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("distsource: google maps client: %w", err)
	}

	return &GoogleMaps{client: client}, nil
}

// Name implements Source.
func (g *GoogleMaps) Name() string { return "google-distance-matrix" }

// Matrix implements Source: driving mode, metric units, origins batched
// to respect the per-request element limit. All distances are returned
// in kilometres.
func (g *GoogleMaps) Matrix(ctx context.Context, stops []Stop) (*aco.DistanceMatrix, error) {
	n := len(stops)
	locations := make([]string, n)
	for i, s := range stops {
		locations[i] = formatLatLng(s.Point.Lat, s.Point.Lng)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	for start := 0; start < n; start += originBatchSize {
		end := start + originBatchSize
		if end > n {
			end = n
		}

		resp, err := g.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
			Origins:      locations[start:end],
			Destinations: locations,
			Mode:         maps.TravelModeDriving,
			Units:        maps.UnitsMetric,
		})
		if err != nil {
			return nil, fmt.Errorf("distsource: distance matrix request: %w", err)
		}
		if len(resp.Rows) != end-start {
			return nil, fmt.Errorf("distsource: expected %d rows, got %d", end-start, len(resp.Rows))
		}

		for r, row := range resp.Rows {
			i := start + r
			if len(row.Elements) != n {
				return nil, fmt.Errorf("distsource: row %d: expected %d elements, got %d", i, n, len(row.Elements))
			}
			for j, elem := range row.Elements {
				if elem.Status != elementStatusOK {
					rows[i][j] = UnreachableKm
					continue
				}
				rows[i][j] = float64(elem.Distance.Meters) / 1000.0
			}
		}
	}

	// The API may report a tiny nonzero self-distance; the matrix
	// contract requires an exact zero diagonal.
	for i := 0; i < n; i++ {
		rows[i][i] = 0
	}

	return aco.NewDistanceMatrix(rows)
}

// APIKeyFromEnv loads a .env file when present (missing files are not
// an error) and reads the mapping API key from MAPS_API_KEY, falling
// back to the legacy Maps_API_KEY spelling.
func APIKeyFromEnv() (string, error) {
	_ = godotenv.Load()

	if key := os.Getenv("MAPS_API_KEY"); key != "" {
		return key, nil
	}
	if key := os.Getenv("Maps_API_KEY"); key != "" {
		return key, nil
	}

	return "", ErrMissingAPIKey
}

// formatLatLng renders a coordinate pair the way the API expects.
func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
