// SPDX-License-Identifier: MIT
// Package spmat: sentinel error set.
// This file defines ONLY package-level sentinel errors. All methods return
// these sentinels (optionally wrapped with %w context) and callers branch
// via errors.Is; no method panics on user-triggered conditions.

package spmat

import "errors"

var (
	// ErrBadOrder is returned when a requested matrix order is invalid (n < 1).
	// Constructors must validate before allocation.
	ErrBadOrder = errors.New("spmat: order must be at least 1")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public accessors (At/Set/Add) MUST return this, not panic.
	ErrOutOfRange = errors.New("spmat: index out of range")

	// ErrNegativeWeight signals a write that would store a weight below zero.
	// Entries are edge multiplicities; negative weight is structurally
	// meaningless and always rejected.
	ErrNegativeWeight = errors.New("spmat: negative weight")

	// ErrNaNInf signals a NaN or ±Inf value where a finite weight is
	// required by the numeric policy.
	ErrNaNInf = errors.New("spmat: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("spmat: nil matrix")
)
