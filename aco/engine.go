// Package aco - engine façade: lifecycle state machine and iteration loop.
//
// States: Uninitialized (no matrices) → Ready (matrices built, iteration 0)
// → iterating (driver calls RunIteration; still Ready) → Ready again after
// Reset. A point-set mutation rebuilds everything inside the call; on any
// failure the engine keeps its prior valid state (no partial mutation).
//
// The engine is designed for single-threaded, cooperative invocation: an
// external driver calls RunIteration once per tick and never overlaps two
// calls on the same instance. The engine owns no timers and spawns
// goroutines only inside one iteration when Params.Workers > 1, joining
// them before the pheromone update.
package aco

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/antcolony/distance"
	"github.com/katalvlaran/antcolony/matrix"
)

// engineState tracks the lifecycle position of an Engine.
type engineState uint8

const (
	// stateUninitialized - no point set or distance matrix yet.
	stateUninitialized engineState = iota

	// stateReady - matrices built; RunIteration and Reset are available.
	stateReady
)

// SolverState is the per-iteration output snapshot handed to consumers.
// Every field is an independent copy; external mutation cannot reach the
// engine, and the engine's next update cannot reach the caller.
type SolverState struct {
	// Iteration is the number of completed iterations since Configure/Reset.
	Iteration int

	// BestTour is the shortest closed tour seen so far (len n+1,
	// BestTour[0]==BestTour[n]); nil until the first iteration completes.
	BestTour []int

	// BestLength is the cyclic length of BestTour; +Inf until the first
	// iteration completes, monotonically non-increasing afterwards.
	BestLength float64

	// Pheromone is a deep copy of the current pheromone matrix.
	Pheromone [][]float64
}

// Engine is a single-instance ACO solver. Construct with New, feed with
// Configure, then drive with RunIteration. The zero value is not usable.
type Engine struct {
	provider distance.Provider
	params   Params

	points []distance.Point
	n      int
	dist   []float64 // linearized n×n distance buffer

	st  *store
	rng *rand.Rand

	iteration  int
	bestTour   []int
	bestLength float64

	state engineState
}

// New returns an unconfigured Engine bound to the given distance provider
// with default parameters. The provider may be nil here; Configure rejects
// it then.
func New(provider distance.Provider) *Engine {
	return &Engine{
		provider:   provider,
		params:     DefaultParams(),
		bestLength: math.Inf(1),
	}
}

// Configure validates parameters and points, builds the distance, heuristic
// and pheromone matrices, and transitions the engine to Ready.
//
// Errors:
//   - ErrNilProvider when the engine was built without a provider.
//   - ErrInvalidParameter on any out-of-range parameter (strict here;
//     SetParams clamps instead).
//   - ErrInvalidInput on fewer than two points or duplicate IDs.
//   - Provider and matrix sentinels from the distance build/validation.
//
// On failure the engine keeps its prior state untouched.
//
// Complexity: O(n²) plus one provider call.
func (e *Engine) Configure(ctx context.Context, points []distance.Point, params Params) error {
	if e.provider == nil {
		return ErrNilProvider
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if len(points) < 2 {
		return ErrInvalidInput
	}

	built, err := e.buildInstance(ctx, points)
	if err != nil {
		return err
	}

	// Commit: everything validated, swap state atomically from the caller's
	// point of view.
	e.params = params.Clamped() // Validate passed; Clamped normalizes Workers
	e.commit(built)

	return nil
}

// RunIteration constructs Params.NumAnts tours, applies the
// evaporate-then-deposit pheromone update, advances the iteration counter
// and returns a snapshot. Available only from Ready; returns ErrNotReady
// otherwise.
//
// Complexity: O(NumAnts·n²) per call.
func (e *Engine) RunIteration() (SolverState, error) {
	if e.state != stateReady {
		return SolverState{}, ErrNotReady
	}

	var (
		numAnts = e.params.NumAnts
		tours   = make([][]int, numAnts)
		lengths = make([]float64, numAnts)
	)

	// Derive one independent RNG stream per ant, in ant order, before any
	// construction starts: sequential and parallel execution then consume
	// identical streams and produce identical tours.
	rngs := make([]*rand.Rand, numAnts)
	var i int
	for i = 0; i < numAnts; i++ {
		rngs[i] = deriveRNG(e.rng, uint64(i))
	}

	if e.params.Workers > 1 {
		e.constructParallel(tours, lengths, rngs)
	} else {
		for i = 0; i < numAnts; i++ {
			tours[i], lengths[i] = constructTour(
				e.dist, e.st.heur, e.st.pher, e.n,
				e.params.Alpha, e.params.Beta, rngs[i],
			)
		}
	}

	// Update order is fixed: evaporate globally first, then deposit from
	// every ant's tour. Reversing it would re-weight the current iteration
	// against history.
	e.st.evaporate(e.params.Rho)
	for i = 0; i < numAnts; i++ {
		e.st.deposit(tours[i], lengths[i], e.params.Q)
	}

	// Global best scan: strictly-less keeps the earliest tour on ties and
	// makes BestLength monotonically non-increasing across the lifetime.
	for i = 0; i < numAnts; i++ {
		if lengths[i] < e.bestLength {
			e.bestLength = lengths[i]
			e.bestTour = CopyTour(tours[i])
		}
	}

	e.iteration++

	return e.snapshot(), nil
}

// constructParallel runs tour construction across a bounded worker pool and
// joins before returning — the barrier the pheromone update relies on.
// Ants only read shared matrices; each writes its own result slot.
func (e *Engine) constructParallel(tours [][]int, lengths []float64, rngs []*rand.Rand) {
	var (
		workers = e.params.Workers
		jobs    = make(chan int)
		wg      sync.WaitGroup
	)
	if workers > len(tours) {
		workers = len(tours)
	}

	wg.Add(workers)
	var w int
	for w = 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				tours[idx], lengths[idx] = constructTour(
					e.dist, e.st.heur, e.st.pher, e.n,
					e.params.Alpha, e.params.Beta, rngs[idx],
				)
			}
		}()
	}

	var i int
	for i = 0; i < len(tours); i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// SetParams applies a partial live update without resetting pheromone
// history. Values are clamped to their admissible ranges rather than
// rejected; the update takes effect on the next RunIteration call. A seed
// change becomes effective on the next Configure or Reset.
func (e *Engine) SetParams(opts ...Option) {
	next := e.params
	for _, opt := range opts {
		opt(&next)
	}
	e.params = next.Clamped()
}

// Params returns the engine's current (clamped) parameter set.
func (e *Engine) Params() Params {
	return e.params
}

// Points returns an independent copy of the current point collection.
func (e *Engine) Points() []distance.Point {
	out := make([]distance.Point, len(e.points))
	copy(out, e.points)

	return out
}

// AddPoint appends a point, rebuilds all matrices from scratch and resets
// iteration/best/pheromone: trail history is not transferable across a
// changed graph. Duplicate IDs yield ErrInvalidInput; on any rebuild error
// the engine keeps its prior state.
//
// Complexity: O(n²) plus one provider call.
func (e *Engine) AddPoint(ctx context.Context, p distance.Point) error {
	if e.state != stateReady {
		return ErrNotReady
	}
	var i int
	for i = 0; i < len(e.points); i++ {
		if e.points[i].ID == p.ID {
			return ErrInvalidInput
		}
	}

	next := make([]distance.Point, 0, len(e.points)+1)
	next = append(next, e.points...)
	next = append(next, p)

	built, err := e.buildInstance(ctx, next)
	if err != nil {
		return err
	}
	e.commit(built)

	return nil
}

// RemovePoint removes the point with the given ID, rebuilds and resets the
// same way AddPoint does. Unknown IDs yield ErrUnknownPoint; shrinking the
// instance below two points yields ErrInvalidInput with no mutation.
//
// Complexity: O(n²) plus one provider call.
func (e *Engine) RemovePoint(ctx context.Context, id string) error {
	if e.state != stateReady {
		return ErrNotReady
	}

	var (
		idx = -1
		i   int
	)
	for i = 0; i < len(e.points); i++ {
		if e.points[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrUnknownPoint
	}
	if len(e.points)-1 < 2 {
		return ErrInvalidInput
	}

	next := make([]distance.Point, 0, len(e.points)-1)
	next = append(next, e.points[:idx]...)
	next = append(next, e.points[idx+1:]...)

	built, err := e.buildInstance(ctx, next)
	if err != nil {
		return err
	}
	e.commit(built)

	return nil
}

// Reset re-seeds pheromone to the uniform seed, zeroes iteration and best
// bookkeeping and re-seeds the RNG, leaving distances and heuristics
// untouched. Idempotent: two consecutive Resets yield identical state.
func (e *Engine) Reset() error {
	if e.state != stateReady {
		return ErrNotReady
	}

	e.st.reseed()
	e.rng = rngFromSeed(e.params.Seed)
	e.iteration = 0
	e.bestTour = nil
	e.bestLength = math.Inf(1)

	return nil
}

// Snapshot returns the current SolverState without running an iteration;
// ErrNotReady before Configure.
func (e *Engine) Snapshot() (SolverState, error) {
	if e.state != stateReady {
		return SolverState{}, ErrNotReady
	}

	return e.snapshot(), nil
}

// builtInstance carries a fully validated instance between buildInstance
// and commit, so failures never leave the engine half-mutated.
type builtInstance struct {
	points []distance.Point
	n      int
	dist   []float64
	st     *store
}

// buildInstance asks the provider for a distance matrix over points,
// validates it and derives the store. Pure with respect to the engine:
// nothing is assigned until commit.
func (e *Engine) buildInstance(ctx context.Context, points []distance.Point) (builtInstance, error) {
	m, err := e.provider.Matrix(ctx, points)
	if err != nil {
		// Provider sentinels (empty set, duplicate IDs) map onto the input
		// taxonomy; anything else is an I/O boundary failure worth context.
		if errors.Is(err, distance.ErrNoPoints) || errors.Is(err, distance.ErrDuplicateID) {
			return builtInstance{}, ErrInvalidInput
		}
		return builtInstance{}, fmt.Errorf("aco: build distance matrix: %w", err)
	}

	n, err := matrix.ValidateDistance(m)
	if err != nil {
		return builtInstance{}, err
	}

	pts := make([]distance.Point, len(points))
	copy(pts, points)

	dist := m.Flat()

	return builtInstance{
		points: pts,
		n:      n,
		dist:   dist,
		st:     newStore(dist, n),
	}, nil
}

// commit installs a built instance and resets solver state; the only place
// the engine transitions into Ready.
func (e *Engine) commit(b builtInstance) {
	e.points = b.points
	e.n = b.n
	e.dist = b.dist
	e.st = b.st
	e.rng = rngFromSeed(e.params.Seed)
	e.iteration = 0
	e.bestTour = nil
	e.bestLength = math.Inf(1)
	e.state = stateReady
}

// snapshot assembles an independent SolverState from live engine state.
func (e *Engine) snapshot() SolverState {
	return SolverState{
		Iteration:  e.iteration,
		BestTour:   CopyTour(e.bestTour),
		BestLength: e.bestLength,
		Pheromone:  e.st.snapshot(),
	}
}
