// Package distance - provider contract and shared point type.
package distance

import (
	"context"
	"errors"

	"github.com/katalvlaran/antcolony/matrix"
)

// Sentinel errors returned by distance providers.
var (
	// ErrNoPoints indicates that an empty point collection was supplied.
	ErrNoPoints = errors.New("distance: no points supplied")

	// ErrDuplicateID indicates that two points share the same identifier.
	ErrDuplicateID = errors.New("distance: duplicate point id")
)

// Point is an opaque identifier plus two real-valued coordinates.
// Coordinate semantics belong to the provider interpreting them:
// Euclidean reads (X, Y) as planar coordinates; GreatCircle and Road read
// X as latitude and Y as longitude, both in degrees.
// Points are immutable once handed to the engine.
type Point struct {
	ID string  // stable identifier, unique within one instance
	X  float64 // planar x, or latitude in degrees
	Y  float64 // planar y, or longitude in degrees
}

// Provider computes a complete n×n distance matrix over the given points.
//
// Contracts:
//   - The returned matrix has order len(points) with zero diagonal and
//     finite, non-negative entries (matrix.ValidateDistance passes).
//   - Symmetry is NOT guaranteed; callers must not assume it.
//   - Implementations must honor ctx on any blocking work.
type Provider interface {
	Matrix(ctx context.Context, points []Point) (*matrix.Dense, error)
}

// validatePoints enforces the shared provider preconditions: a non-empty
// collection with unique identifiers.
//
// Complexity: O(n) time, O(n) space.
func validatePoints(points []Point) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	seen := make(map[string]struct{}, len(points))

	var (
		i int
		p Point
	)
	for i = 0; i < len(points); i++ {
		p = points[i]
		if _, ok := seen[p.ID]; ok {
			return ErrDuplicateID
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}
