// Package matrix - validation for distance matrices consumed by the ACO engine.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst-case where n is the matrix order; no hidden allocations.
package matrix

import "math"

// DiagTol is a structural tolerance for diagonal checks in distance matrices.
// Distance providers may accumulate tiny floating noise on the diagonal
// (e.g., haversine of a point with itself); values within DiagTol count as zero.
const DiagTol = 1e-9

// ValidateDistance performs full distance-matrix validation:
//   - non-nil, square, n >= 2,
//   - diagonal ≈ 0 (|a_ii| ≤ DiagTol), finite,
//   - no negative entries,
//   - no NaN or ±Inf anywhere (the engine requires a complete matrix).
//
// Symmetry is deliberately NOT enforced: road-network matrices are allowed
// to be asymmetric and the engine does not require symmetry.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func ValidateDistance(dist Matrix) (int, error) {
	// Stage 1: shape checks (non-nil, square, n>=2).
	if dist == nil {
		return 0, ErrNilMatrix
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		// A single point admits no trails; the engine requires n >= 2.
		return 0, ErrDimensionMismatch
	}
	var n = nr // the matrix order

	// Stage 2: diagonal, negativity, finiteness.
	var (
		i, j int     // loop indices
		aij  float64 // matrix entry a[i][j]
		err  error
		abs  float64 // scratch for |value|
	)

	// Diagonal: a_ii ≈ 0 within DiagTol, finite.
	for i = 0; i < n; i++ { // iterate diagonal positions
		aij, err = dist.At(i, i) // read diagonal entry
		if err != nil {
			return 0, ErrOutOfRange
		}
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrNaNInf
		}
		abs = aij // absolute value without allocations
		if abs < 0 {
			abs = -abs // abs(aij)
		}
		if abs > DiagTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan.
	for i = 0; i < n; i++ { // rows
		for j = 0; j < n; j++ { // cols
			if i == j {
				continue // skip diagonal (already checked)
			}
			aij, err = dist.At(i, j) // read off-diagonal entry
			if err != nil {
				return 0, ErrOutOfRange
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return 0, ErrNaNInf
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	return n, nil
}
