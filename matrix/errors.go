// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All helpers MUST return these sentinels and tests MUST check them
// via errors.Is. Nothing here panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (e.g., r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals that a diagonal is required to be ~0 (within eps)
	// but a non-zero entry was observed (distance matrices by convention).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNegativeWeight signals that a negative entry was observed where only
	// non-negative distances are admissible.
	ErrNegativeWeight = errors.New("matrix: negative weight encountered")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates that a matrix is too small for the requested
	// use (distance matrices require order n >= 2).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
