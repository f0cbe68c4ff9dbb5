// Package aco - heuristic/pheromone store.
//
// The store owns the two n×n matrices shared by every ant within an
// iteration: static heuristic desirability (inverse distance) and mutable
// pheromone intensity. Both live in linearized row-major buffers
// (m[i*n+j]) to keep the constructor's inner loop free of interface
// indirection, the same prefetch idiom the cost utilities use.
package aco

import "math"

// Pheromone lifecycle constants.
const (
	// pheromoneSeed is the uniform initial pheromone level on every edge.
	pheromoneSeed = 1.0

	// pheromoneFloor is the post-evaporation lower clamp. A strictly
	// positive floor keeps every edge selectable indefinitely; without it
	// abandoned edges decay to zero and the search loses ergodicity.
	pheromoneFloor = 0.001
)

// store holds the heuristic and pheromone state for one problem instance.
// It performs no validation: the engine validates the distance matrix before
// construction and owns the store exclusively afterwards.
type store struct {
	n    int       // matrix order
	heur []float64 // static heuristic, heur[i*n+j] = 1/dist[i][j], 0 on zero distance
	pher []float64 // mutable pheromone intensity, uniform-seeded, floor-clamped
}

// newStore derives the heuristic matrix from a linearized distance buffer
// and seeds pheromone uniformly.
//
// Contract:
//   - dist has length n*n with n >= 2, zero diagonal, finite non-negative
//     entries (engine-validated).
//   - A zero off-diagonal distance yields heuristic 0: such an edge has no
//     visibility and is selectable only through pheromone or the uniform
//     fallback.
//
// Complexity: O(n²) time and space.
func newStore(dist []float64, n int) *store {
	s := &store{
		n:    n,
		heur: make([]float64, n*n),
		pher: make([]float64, n*n),
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal carries no edge
			}
			d = dist[i*n+j]
			if d > 0 {
				s.heur[i*n+j] = 1 / d
			}
		}
	}
	s.reseed()

	return s
}

// reseed resets every pheromone entry to the uniform seed value, leaving
// the heuristic untouched.
//
// Complexity: O(n²).
func (s *store) reseed() {
	var k int
	for k = 0; k < len(s.pher); k++ {
		s.pher[k] = pheromoneSeed
	}
}

// evaporate applies proportional decay pheromone *= (1-rho) to every edge,
// then clamps to pheromoneFloor. rho is engine-clamped to (0,1) before it
// reaches this method.
//
// Complexity: O(n²).
func (s *store) evaporate(rho float64) {
	var (
		k    int
		keep = 1 - rho
	)
	for k = 0; k < len(s.pher); k++ {
		s.pher[k] *= keep
		if s.pher[k] < pheromoneFloor {
			s.pher[k] = pheromoneFloor
		}
	}
}

// deposit adds q/length to every edge traversed by the closed tour, in both
// directions, keeping the pheromone matrix symmetric by construction.
// A zero or non-finite length skips the deposit entirely: degenerate tours
// (duplicate coordinates collapsing all distances) must not divide by zero.
//
// Complexity: O(n).
func (s *store) deposit(tour []int, length, q float64) {
	if length <= 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return
	}

	var (
		amount = q / length
		i      int
		u, v   int
	)
	for i = 0; i < len(tour)-1; i++ {
		u = tour[i]
		v = tour[i+1]
		s.pher[u*s.n+v] += amount
		s.pher[v*s.n+u] += amount
	}
}

// snapshot returns an independent [][]float64 copy of the pheromone matrix
// for external observers; no aliasing of the live buffer.
//
// Complexity: O(n²) time and space.
func (s *store) snapshot() [][]float64 {
	out := make([][]float64, s.n)

	var i int
	for i = 0; i < s.n; i++ {
		row := make([]float64, s.n)
		copy(row, s.pher[i*s.n:(i+1)*s.n])
		out[i] = row
	}

	return out
}
