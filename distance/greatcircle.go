// Package distance - great-circle (haversine) provider.
package distance

import (
	"context"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// GreatCircle computes pairwise haversine distances in meters over
// geographic coordinates (Point.X = latitude, Point.Y = longitude, degrees).
// It performs no I/O; ctx is accepted for interface symmetry only.
type GreatCircle struct{}

// compile-time interface conformance check
var _ Provider = GreatCircle{}

// Matrix returns the symmetric n×n great-circle distance matrix in meters.
//
// Contracts:
//   - points must be non-empty with unique IDs (ErrNoPoints / ErrDuplicateID).
//   - The diagonal is exactly zero.
//
// Complexity: O(n²) time, O(n²) space for the result.
func (GreatCircle) Matrix(_ context.Context, points []Point) (*matrix.Dense, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	var n = len(points)

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = haversineMeters(points[i].X, points[i].Y, points[j].X, points[j].Y)
			_ = m.Set(i, j, d)
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}

// haversineMeters returns the great-circle distance between two
// (lat, lng) pairs in degrees.
//
// Complexity: O(1).
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	var (
		phi1 = lat1 * math.Pi / 180
		phi2 = lat2 * math.Pi / 180
		dPhi = (lat2 - lat1) * math.Pi / 180
		dLam = (lng2 - lng1) * math.Pi / 180
	)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLam/2)*math.Sin(dLam/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
