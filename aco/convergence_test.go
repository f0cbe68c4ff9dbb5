// Package aco_test verifies the engine's optimization properties on small
// planar instances: convergence to the unit square's perimeter, monotone
// best length, tour validity, degenerate n=2 behavior and the pheromone
// floor guarantee.
package aco_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/distance"
)

// TestConvergenceUnitSquare runs the canonical square scenario: 4 corner points,
// alpha=1, beta=2, rho=0.1, 20 ants, q=100. After 50+ iterations the best
// length is the perimeter (40) and the best tour walks the boundary.
func TestConvergenceUnitSquare(t *testing.T) {
	eng := newSquareEngine(t)
	st := runIterations(t, eng, 60)

	if math.Abs(st.BestLength-40.0) > lenTol {
		t.Fatalf("best length = %v, want 40.0 (perimeter)", st.BestLength)
	}
	if err := aco.ValidateTour(st.BestTour, 4); err != nil {
		t.Fatalf("best tour invalid: %v", err)
	}

	// Boundary cycle: with corners indexed around the square, consecutive
	// vertices differ by ±1 mod 4; diagonals (0-2, 1-3) never appear.
	var i int
	for i = 0; i < len(st.BestTour)-1; i++ {
		step := (st.BestTour[i+1] - st.BestTour[i] + 4) % 4
		if step != 1 && step != 3 {
			t.Fatalf("best tour uses a diagonal edge at %d: %v", i, st.BestTour)
		}
	}
}

// TestBestLengthMonotone verifies that BestLength never increases across
// successive iterations until Reset.
func TestBestLengthMonotone(t *testing.T) {
	eng := newSquareEngine(t)

	prev := math.Inf(1)
	var i int
	for i = 0; i < 40; i++ {
		st, err := eng.RunIteration()
		if err != nil {
			t.Fatalf("RunIteration %d failed: %v", i, err)
		}
		if st.BestLength > prev {
			t.Fatalf("best length increased at iteration %d: %v > %v", i, st.BestLength, prev)
		}
		if st.Iteration != i+1 {
			t.Fatalf("iteration counter = %d, want %d", st.Iteration, i+1)
		}
		prev = st.BestLength
	}
}

// TestEveryBestTourValid verifies tour invariants and the cost identity:
// the reported best length equals the matrix-summed cost of the best tour,
// closing edge included.
func TestEveryBestTourValid(t *testing.T) {
	eng := newSquareEngine(t)

	var i int
	for i = 0; i < 20; i++ {
		st, err := eng.RunIteration()
		if err != nil {
			t.Fatalf("RunIteration %d failed: %v", i, err)
		}
		if verr := aco.ValidateTour(st.BestTour, 4); verr != nil {
			t.Fatalf("iteration %d: best tour invalid: %v", i, verr)
		}

		// Recompute the cyclic length from square geometry: consecutive
		// corners are 10 apart, diagonals 10√2.
		var (
			sum  float64
			j    int
			u, v int
		)
		for j = 0; j < len(st.BestTour)-1; j++ {
			u = st.BestTour[j]
			v = st.BestTour[j+1]
			if (u+v)%2 == 1 {
				sum += 10
			} else {
				sum += 10 * math.Sqrt2
			}
		}
		if math.Abs(sum-st.BestLength) > 1e-6 {
			t.Fatalf("iteration %d: cost identity broken: %v vs %v", i, sum, st.BestLength)
		}
	}
}

// TestTwoPointInstance verifies the degenerate n=2 case: every closed tour
// is the same back-and-forth cycle, so BestLength is constant from the
// first iteration onward.
func TestTwoPointInstance(t *testing.T) {
	eng := aco.New(distance.Euclidean{})
	params := aco.DefaultParams()
	params.NumAnts = 5

	if err := eng.Configure(context.Background(), pairPoints(), params); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	var i int
	for i = 0; i < 10; i++ {
		st, err := eng.RunIteration()
		if err != nil {
			t.Fatalf("RunIteration %d failed: %v", i, err)
		}
		if math.Abs(st.BestLength-14.0) > lenTol {
			t.Fatalf("iteration %d: best length = %v, want 14.0 (2×distance)", i, st.BestLength)
		}
		if err = aco.ValidateTour(st.BestTour, 2); err != nil {
			t.Fatalf("iteration %d: best tour invalid: %v", i, err)
		}
	}
}

// TestPheromoneFloor verifies that no pheromone entry ever drops below the
// documented floor (0.001), even under aggressive evaporation.
func TestPheromoneFloor(t *testing.T) {
	eng := newSquareEngine(t)
	eng.SetParams(aco.WithRho(0.95), aco.WithNumAnts(2))

	var i, r, c int
	for i = 0; i < 200; i++ {
		st, err := eng.RunIteration()
		if err != nil {
			t.Fatalf("RunIteration %d failed: %v", i, err)
		}
		for r = 0; r < len(st.Pheromone); r++ {
			for c = 0; c < len(st.Pheromone[r]); c++ {
				if st.Pheromone[r][c] < 0.001 {
					t.Fatalf("iteration %d: pheromone[%d][%d] = %v below floor", i, r, c, st.Pheromone[r][c])
				}
			}
		}
	}
}

// TestPheromoneReinforcesPerimeter verifies that after convergence the
// perimeter edges of the square carry strictly more pheromone than the
// diagonals.
func TestPheromoneReinforcesPerimeter(t *testing.T) {
	eng := newSquareEngine(t)
	st := runIterations(t, eng, 60)

	// Perimeter edge (0,1) vs diagonal (0,2).
	if st.Pheromone[0][1] <= st.Pheromone[0][2] {
		t.Fatalf("perimeter pheromone %v not above diagonal %v", st.Pheromone[0][1], st.Pheromone[0][2])
	}
}
