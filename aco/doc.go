// Package aco implements an Ant Colony Optimization engine for closed-tour
// (TSP) instances over an injected distance matrix provider.
//
// One Engine owns one problem instance: a static heuristic matrix (inverse
// distance), a mutable pheromone matrix, and best-tour bookkeeping. An
// external driver calls RunIteration once per tick; each call constructs
// NumAnts stochastic tours biased by pheromone^alpha * heuristic^beta,
// applies the evaporate-then-deposit update, and returns an independent
// SolverState snapshot.
//
// Design principles:
//   - Deterministic: seed-addressable RNG; same seed, inputs and parameters
//     produce bit-identical tour and pheromone sequences.
//   - Strict sentinels: only errors from errors.go; tests match via errors.Is.
//   - No logging, no panics on user input, no timers or goroutines owned by
//     the engine (parallel ant construction is opt-in and joined before the
//     pheromone update).
//   - No aliasing: callers receive deep copies, never live engine state.
//
// The engine requires at least two points; a pheromone floor keeps every
// edge selectable indefinitely, and a uniform-choice fallback guarantees
// forward progress when all transition weights decay to zero.
package aco
