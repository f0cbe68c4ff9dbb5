// Package antcolony is an in-memory Ant Colony Optimization toolkit for
// computing near-optimal closed tours over a set of points — a stochastic,
// population-based TSP metaheuristic with a deterministic, seedable core.
//
// 🐜 What is antcolony?
//
//	A small, focused library that brings together:
//		• ACO engine: pheromone/heuristic matrices, probabilistic tour
//		  construction, evaporate-then-deposit updates, best-tour tracking
//		• Distance providers: planar Euclidean, great-circle (haversine),
//		  and road-network table lookups with graceful fallback
//		• Dense matrices: compact, bounds-checked float64 storage
//		• YAML tunables: parse instances & parameters for host applications
//
// ✨ Why choose antcolony?
//
//   - Deterministic – seedable RNG, bit-identical runs for a fixed seed
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Driver-friendly – one call per iteration; the engine owns no timers
//   - Extensible – inject any distance provider via a single interface
//
// Everything is organized under four subpackages:
//
//	aco/      — the solving engine (configure, iterate, reset, mutate points)
//	distance/ — distance-matrix providers over point collections
//	matrix/   — dense float64 matrices + distance-matrix validation
//	config/   — YAML parsing of instances and engine parameters
//
// Quick sketch:
//
//	eng := aco.New(distance.Euclidean{})
//	_ = eng.Configure(ctx, points, aco.DefaultParams())
//	for i := 0; i < 200; i++ {
//	    st, _ := eng.RunIteration()
//	    fmt.Println(st.Iteration, st.BestLength)
//	}
//
//	go get github.com/katalvlaran/antcolony
package antcolony
