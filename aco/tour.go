// Package aco — tour utilities shared by the engine and its consumers.
//
// A tour is a closed Hamiltonian cycle over vertex indices: len(tour)==n+1
// with tour[0]==tour[n]. Helpers here operate on tour structure and cost
// only; they never touch engine state.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from errors.go.
//   - O(n) time for every helper; in-place checks avoid extra allocations.
//   - Stable cost: sums are rounded to 1e-9 to prevent cross-platform FP drift.
package aco

import (
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting quality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// ValidateTour enforces closed Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n],
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Unlike a fixed-start solver, the engine starts ants at random vertices, so
// any start value is admissible as long as the cycle closes on it.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}
	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)
	return out
}

// EqualToursModuloRotation checks equality of two closed tours under rotation
// (same cyclic order and direction, possibly different start). Assumes both
// inputs are closed (len==n+1).
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var (
		n  = len(a) - 1
		st = a[0]
	)
	if a[n] != st || b[n] != b[0] {
		return false
	}
	// Find st in b[0..n-1].
	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == st {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}
	// Compare by rotation.
	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}
	return true
}

// TourCost sums costs along the cycle edges tour[i]→tour[i+1], the closing
// edge included (it is the last element of a closed tour).
//
// Checks performed per edge:
//   - indices in range,
//   - weight finite (no NaN/±Inf), non-negative.
//
// Contract:
//   - dist must be square (n×n); tour must be closed with len(tour) >= 2.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || tour == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	// Shape guard.
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrDimensionMismatch
	}

	// Main accumulation.
	var (
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
		n   = nr
		L   = len(tour) - 1 // last index holds the closing vertex
	)

	for i = 0; i < L; i++ {
		u = tour[i]
		v = tour[i+1]

		// Index range checks.
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}

		// Fetch weight and validate.
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrDimensionMismatch
		}
		if w < 0 {
			return 0, ErrDimensionMismatch
		}

		sum += w
	}

	return round1e9(sum), nil
}

// tourLengthFlat sums cycle edges over a linearized n×n distance buffer
// (w[u*n+v]). Hot-path variant of TourCost used inside the engine where
// inputs are already validated.
//
// Complexity: O(n), zero allocations.
func tourLengthFlat(dist []float64, n int, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(tour)-1; i++ {
		sum += dist[tour[i]*n+tour[i+1]]
	}

	return round1e9(sum)
}
