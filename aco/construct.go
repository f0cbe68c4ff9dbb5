// Package aco - probabilistic tour construction (one ant).
//
// Each ant starts at a uniformly random vertex and extends its partial tour
// one vertex at a time: the transition weight toward an unvisited vertex j is
// pheromone[i][j]^alpha * heuristic[i][j]^beta, sampled by cumulative-weight
// roulette. Candidates are always scanned in ascending index order, so a
// seeded RNG reproduces tours bit-identically.
//
// Start policy: uniformly random start per ant, fixed for the whole engine
// instance.
package aco

import (
	"math"
	"math/rand"
)

// constructTour builds one closed tour for one ant over the linearized
// distance/heuristic/pheromone buffers and returns it with its stabilized
// cyclic length.
//
// Contracts:
//   - n >= 2; buffers have length n*n (engine-validated).
//   - rng is non-nil and exclusively owned by this ant.
//   - The returned tour satisfies ValidateTour(tour, n).
//
// Fallback: when every remaining candidate has zero weight (all-zero
// heuristic rows, pheromone at the floor and alpha/beta extremes), the next
// vertex is drawn uniformly from the unvisited set — construction never
// stalls with a non-empty unvisited set.
//
// Complexity: O(n²) time, O(n) space.
func constructTour(dist, heur, pher []float64, n int, alpha, beta float64, rng *rand.Rand) ([]int, float64) {
	var (
		tour    = make([]int, n+1)
		visited = make([]bool, n)
		weights = make([]float64, n) // per-step transition weights, reused
		current = rng.Intn(n)        // uniformly random start vertex
	)
	tour[0] = current
	visited[current] = true

	var (
		step int
		next int
	)
	for step = 1; step < n; step++ {
		next = selectNext(heur, pher, visited, weights, n, current, alpha, beta, rng)
		tour[step] = next
		visited[next] = true
		current = next
	}

	// Close the cycle back to the start.
	tour[n] = tour[0]

	return tour, tourLengthFlat(dist, n, tour)
}

// selectNext picks the ant's next vertex by cumulative-weight roulette over
// the unvisited set, scanning candidates in ascending index order.
//
// Selection rule: draw r uniformly in [0, total); walk cumulative sums and
// return the first candidate whose cumulative weight exceeds r. Ties on
// floating equality go to the first candidate reaching the threshold.
//
// Complexity: O(n).
func selectNext(heur, pher []float64, visited []bool, weights []float64, n, current int, alpha, beta float64, rng *rand.Rand) int {
	var (
		total float64
		j     int
		w     float64
		row   = current * n
	)
	for j = 0; j < n; j++ {
		weights[j] = 0
		if visited[j] {
			continue
		}
		w = math.Pow(pher[row+j], alpha) * math.Pow(heur[row+j], beta)
		weights[j] = w
		total += w
	}

	// All-zero (or non-finite) total: uniform fallback over the unvisited set.
	if !(total > 0) || math.IsInf(total, 0) {
		return uniformUnvisited(visited, n, rng)
	}

	var (
		r   = rng.Float64() * total
		cum float64
	)
	for j = 0; j < n; j++ {
		if visited[j] || weights[j] == 0 {
			continue
		}
		cum += weights[j]
		if r < cum {
			return j
		}
	}

	// Floating round-off can leave r marginally above the final cumulative
	// sum; the last positive-weight candidate absorbs the residue.
	for j = n - 1; j >= 0; j-- {
		if !visited[j] && weights[j] > 0 {
			return j
		}
	}

	return uniformUnvisited(visited, n, rng)
}

// uniformUnvisited draws uniformly among unvisited vertices in ascending
// index order (deterministic under a seeded RNG).
//
// Contract: at least one vertex is unvisited.
//
// Complexity: O(n).
func uniformUnvisited(visited []bool, n int, rng *rand.Rand) int {
	var (
		remaining int
		j         int
	)
	for j = 0; j < n; j++ {
		if !visited[j] {
			remaining++
		}
	}

	var (
		k = rng.Intn(remaining) // k-th unvisited vertex, ascending order
	)
	for j = 0; j < n; j++ {
		if visited[j] {
			continue
		}
		if k == 0 {
			return j
		}
		k--
	}

	// Unreachable under the contract; keep the compiler satisfied.
	return -1
}
