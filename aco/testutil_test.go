// Package aco_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating production functionality.
package aco_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/distance"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for RNG-based components; 0 selects the
	// engine's fixed default stream.
	seedDet = int64(0)

	// lenTol is the absolute tolerance for tour-length comparisons.
	lenTol = 1e-9
)

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// squarePoints returns the canonical 4-point unit-square instance (side 10):
// the optimal cycle is the perimeter with length 40.
func squarePoints() []distance.Point {
	return []distance.Point{
		{ID: "p0", X: 0, Y: 0},
		{ID: "p1", X: 10, Y: 0},
		{ID: "p2", X: 10, Y: 10},
		{ID: "p3", X: 0, Y: 10},
	}
}

// pairPoints returns a minimal 2-point instance 7 apart; every closed tour
// has length 14.
func pairPoints() []distance.Point {
	return []distance.Point{
		{ID: "a", X: 0, Y: 0},
		{ID: "b", X: 7, Y: 0},
	}
}

// newSquareEngine configures a fresh engine on the unit square with the
// canonical exploratory parameters and a deterministic seed.
func newSquareEngine(t *testing.T) *aco.Engine {
	t.Helper()
	eng := aco.New(distance.Euclidean{})

	params := aco.DefaultParams()
	params.Alpha = 1
	params.Beta = 2
	params.Rho = 0.1
	params.NumAnts = 20
	params.Q = 100
	params.Seed = seedDet

	if err := eng.Configure(context.Background(), squarePoints(), params); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	return eng
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
// Prefer slices.Equal over reflect.DeepEqual for slices of basic types.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrNotReady, ErrInvalidParameter, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error mismatch: got %v, want %v", err, target)
	}
}

// mustEqualFloats asserts exact bitwise equality of two float64 slices.
// Used by determinism tests where "close" is not good enough.
func mustEqualFloats(t *testing.T, got, want []float64) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustEqualPheromone asserts bitwise equality of two pheromone snapshots.
func mustEqualPheromone(t *testing.T, got, want [][]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("pheromone row count mismatch: got %d, want %d", len(got), len(want))
	}
	var i int
	for i = 0; i < len(got); i++ {
		mustEqualFloats(t, got[i], want[i])
	}
}

// runIterations drives the engine N times, failing fast on any error, and
// returns the final snapshot.
func runIterations(t *testing.T, eng *aco.Engine, n int) aco.SolverState {
	t.Helper()
	var (
		st  aco.SolverState
		err error
		i   int
	)
	for i = 0; i < n; i++ {
		st, err = eng.RunIteration()
		if err != nil {
			t.Fatalf("RunIteration %d failed: %v", i, err)
		}
	}

	return st
}
