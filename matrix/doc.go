// Package matrix provides the compact dense float64 matrices used by the
// ACO engine and its distance providers, plus strict validation for
// distance matrices (square shape, ~zero diagonal, finite non-negative
// entries).
//
// Design:
//   - Row-major flat storage for cache-friendly scans.
//   - Bounds-checked At/Set returning sentinel errors; no panics on user input.
//   - Deep Clone to prevent aliasing between producers and consumers.
package matrix
