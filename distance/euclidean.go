// Package distance - planar Euclidean provider.
package distance

import (
	"context"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// Euclidean computes pairwise planar distances over (X, Y) coordinates.
// It performs no I/O; ctx is accepted for interface symmetry only.
type Euclidean struct{}

// compile-time interface conformance check
var _ Provider = Euclidean{}

// Matrix returns the symmetric n×n Euclidean distance matrix.
//
// Contracts:
//   - points must be non-empty with unique IDs (ErrNoPoints / ErrDuplicateID).
//   - The diagonal is exactly zero; the upper triangle is mirrored to avoid
//     computing each pair twice.
//
// Complexity: O(n²) time, O(n²) space for the result.
func (Euclidean) Matrix(_ context.Context, points []Point) (*matrix.Dense, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	var n = len(points)

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j   int
		dx, dy float64
		d      float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = points[i].X - points[j].X
			dy = points[i].Y - points[j].Y
			d = math.Hypot(dx, dy)
			// Mirror both directions; Set cannot fail for in-range indices.
			_ = m.Set(i, j, d)
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}
