// Package aco - engine parameters, defaults, clamping and validation.
//
// Two entry points consume parameters with different strictness:
//   - Configure validates strictly and rejects out-of-range values with
//     ErrInvalidParameter (no partial mutation on failure).
//   - SetParams clamps to the admissible ranges instead of rejecting: the
//     engine is a tunable exploratory tool and live slider updates must
//     never fail mid-run.
package aco

import "math"

// Admissible parameter ranges. Alpha/Beta are practically bounded: values
// beyond 10 flatten the roulette into near-argmax selection and add nothing
// but overflow risk in pow().
const (
	// MinAlpha / MaxAlpha bound the pheromone-influence exponent.
	MinAlpha = 0.0
	MaxAlpha = 10.0

	// MinBeta / MaxBeta bound the heuristic-influence exponent.
	MinBeta = 0.0
	MaxBeta = 10.0

	// minRho / maxRho keep the evaporation rate strictly inside (0,1):
	// rho=0 disables forgetting, rho=1 erases all history in one step.
	minRho = 1e-3
	maxRho = 1 - 1e-3
)

// Params holds every tunable of the engine.
//
// Alpha    – pheromone influence exponent, [MinAlpha..MaxAlpha].
// Beta     – heuristic influence exponent, [MinBeta..MaxBeta].
// Rho      – evaporation rate, (0,1).
// NumAnts  – tours constructed per iteration, >= 1.
// Q        – pheromone deposit scale (each ant deposits Q/length), > 0.
// Seed     – RNG seed; 0 selects the fixed default stream. Takes effect on
//            Configure and Reset, not on live SetParams updates.
// Workers  – ants constructed concurrently within one iteration; <= 1 means
//            sequential. Results are identical either way (per-ant RNG
//            streams, deposits applied in ant order after a join barrier).
type Params struct {
	Alpha   float64
	Beta    float64
	Rho     float64
	NumAnts int
	Q       float64
	Seed    int64
	Workers int
}

// Option mutates a Params value; used by SetParams for partial live updates.
type Option func(*Params)

// WithAlpha sets the pheromone influence exponent.
func WithAlpha(alpha float64) Option {
	return func(p *Params) { p.Alpha = alpha }
}

// WithBeta sets the heuristic influence exponent.
func WithBeta(beta float64) Option {
	return func(p *Params) { p.Beta = beta }
}

// WithRho sets the evaporation rate.
func WithRho(rho float64) Option {
	return func(p *Params) { p.Rho = rho }
}

// WithNumAnts sets the number of tours per iteration.
func WithNumAnts(ants int) Option {
	return func(p *Params) { p.NumAnts = ants }
}

// WithQ sets the pheromone deposit scale.
func WithQ(q float64) Option {
	return func(p *Params) { p.Q = q }
}

// WithSeed sets the RNG seed (effective on the next Configure or Reset).
func WithSeed(seed int64) Option {
	return func(p *Params) { p.Seed = seed }
}

// WithWorkers sets the per-iteration construction concurrency.
func WithWorkers(workers int) Option {
	return func(p *Params) { p.Workers = workers }
}

// DefaultParams returns the canonical starting configuration.
//
// Defaults:
//   - Alpha: 1, Beta: 2 — mild pheromone bias, stronger visibility bias.
//   - Rho: 0.1 — slow evaporation.
//   - NumAnts: 20, Q: 100.
//   - Seed: 0 (fixed default stream), Workers: 1 (sequential).
func DefaultParams() Params {
	return Params{
		Alpha:   1,
		Beta:    2,
		Rho:     0.1,
		NumAnts: 20,
		Q:       100,
		Seed:    0,
		Workers: 1,
	}
}

// Validate checks every field strictly against its admissible range.
// NaN anywhere is rejected. Returns ErrInvalidParameter on the first
// violation; nil otherwise.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if math.IsNaN(p.Alpha) || p.Alpha < MinAlpha || p.Alpha > MaxAlpha {
		return ErrInvalidParameter
	}
	if math.IsNaN(p.Beta) || p.Beta < MinBeta || p.Beta > MaxBeta {
		return ErrInvalidParameter
	}
	if math.IsNaN(p.Rho) || p.Rho <= 0 || p.Rho >= 1 {
		return ErrInvalidParameter
	}
	if p.NumAnts < 1 {
		return ErrInvalidParameter
	}
	if math.IsNaN(p.Q) || p.Q <= 0 || math.IsInf(p.Q, 0) {
		return ErrInvalidParameter
	}
	if p.Workers < 0 {
		return ErrInvalidParameter
	}

	return nil
}

// Clamped returns a copy with every field forced into its admissible range.
// NaN exponents collapse to the defaults. Used by SetParams.
//
// Complexity: O(1).
func (p Params) Clamped() Params {
	out := p

	out.Alpha = clampFloat(out.Alpha, MinAlpha, MaxAlpha, DefaultParams().Alpha)
	out.Beta = clampFloat(out.Beta, MinBeta, MaxBeta, DefaultParams().Beta)
	out.Rho = clampFloat(out.Rho, minRho, maxRho, DefaultParams().Rho)
	if out.NumAnts < 1 {
		out.NumAnts = 1
	}
	if math.IsNaN(out.Q) || math.IsInf(out.Q, 0) || out.Q <= 0 {
		// No meaningful clamp target exists for a non-positive deposit scale.
		out.Q = DefaultParams().Q
	}
	if out.Workers < 1 {
		out.Workers = 1
	}

	return out
}

// clampFloat forces v into [lo..hi]; NaN collapses to fallback.
//
// Complexity: O(1).
func clampFloat(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
