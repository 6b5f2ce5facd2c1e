// SPDX-License-Identifier: MIT
// Package: netdiffuseR/rgraph
//
// errors.go — sentinel errors for the rgraph package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX);
//     sentinels are never redefined with formatted strings.
//   - Algorithms never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package rgraph

import "errors"

// ErrTooFewVertices indicates that a requested vertex count is below the
// minimum (n must be at least 1).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("rgraph: too few vertices")

// ErrDegreeTooLarge indicates that a requested lattice degree exceeds n-1,
// which cannot be realized on n vertices without loops or multi-edges.
// Usage: if errors.Is(err, ErrDegreeTooLarge) { /* lower k or raise n */ }.
var ErrDegreeTooLarge = errors.New("rgraph: k can be at most n-1")

// ErrNeedRandSource indicates that a stochastic operation requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set when p > 0).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("rgraph: rng is required")

// ErrNilMatrix indicates that a nil *spmat.Matrix was passed in.
var ErrNilMatrix = errors.New("rgraph: nil matrix")

// ErrCancelled indicates that the caller's context was cancelled during a
// rewiring pass. This is a normal abort path, not corruption: the input
// matrix is untouched and the in-progress working copy has been discarded.
// Usage: if errors.Is(err, ErrCancelled) { /* treat as clean abort */ }.
var ErrCancelled = errors.New("rgraph: rewire cancelled")
