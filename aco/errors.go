// Package aco: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// engine. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.
package aco

import "errors"

var (
	// ErrInvalidInput indicates a malformed or too-small point set or
	// distance matrix (fewer than two points, duplicate point IDs).
	ErrInvalidInput = errors.New("aco: invalid input")

	// ErrNotReady indicates an operation invoked before Configure succeeded
	// (or after a point-set mutation failed to rebuild).
	ErrNotReady = errors.New("aco: engine not configured")

	// ErrInvalidParameter indicates a configure-time parameter outside its
	// admissible range. Live updates via SetParams clamp instead.
	ErrInvalidParameter = errors.New("aco: parameter out of range")

	// ErrNilProvider indicates that a nil distance provider was supplied.
	ErrNilProvider = errors.New("aco: distance provider is nil")

	// ErrUnknownPoint indicates that RemovePoint referenced an ID absent
	// from the current point set.
	ErrUnknownPoint = errors.New("aco: unknown point id")

	// ErrDimensionMismatch indicates an ill-shaped tour or matrix handed to
	// a tour utility (wrong length, out-of-range index, duplicate vertex).
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")
)
