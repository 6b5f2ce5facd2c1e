// SPDX-License-Identifier: MIT
// Package: netdiffuseR/rgraph
//
// options.go — functional options for the rewiring pass.
//
// Contract (strict):
//   - Options are functional (type Option func(*rewireConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     algorithms themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through rewireConfig.

package rgraph

import (
	"math/rand" // injected RNG for stochastic rewiring
)

// Option customizes a rewiring pass by mutating a rewireConfig instance
// before the pass begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*rewireConfig)

// rewireConfig aggregates all rewiring knobs. It is resolved once per call
// and passed by value afterwards (immutable to the algorithm body).
type rewireConfig struct {
	// RNG for all stochastic choices; nil means "no randomness available".
	rng *rand.Rand
	// bothEnds relocates the source endpoint as well as the target.
	bothEnds bool
	// selfLoops permits a rewired edge to land on its own source vertex.
	selfLoops bool
	// multiEdges permits a rewired edge to land on an occupied cell,
	// accumulating weight there.
	multiEdges bool
	// undirected treats (i,j)/(j,i) as one logical edge: candidates are
	// visited once via their row ≥ col entry and every move is mirrored.
	undirected bool
}

// newRewireConfig resolves deterministic defaults and applies all options
// in order (later overrides earlier). Defaults mirror the zero value: no
// RNG, one-sided rewiring, no self-loops, no multi-edges, directed.
// Complexity: O(len(opts)) time, O(1) space.
func newRewireConfig(opts ...Option) rewireConfig {
	var cfg rewireConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for the rewiring draws.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("rgraph: WithRand(nil)")
	}
	return func(c *rewireConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *rewireConfig) {
		// Seeded source → reproducible rewiring for equal inputs.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBothEnds redraws the source endpoint of every rewired edge as well
// as the target; by default only the target end moves.
func WithBothEnds() Option {
	return func(c *rewireConfig) {
		c.bothEnds = true
	}
}

// WithSelfLoops permits rewired edges to land on their own source vertex.
func WithSelfLoops() Option {
	return func(c *rewireConfig) {
		c.selfLoops = true
	}
}

// WithMultiEdges permits rewired edges to land on already-occupied cells;
// the moved weight then accumulates on top of the existing entry.
func WithMultiEdges() Option {
	return func(c *rewireConfig) {
		c.multiEdges = true
	}
}

// WithUndirected declares the input symmetric: each logical edge is
// considered once (via its row ≥ col entry) and every relocation updates
// both mirror cells, preserving the symmetry invariant.
func WithUndirected() Option {
	return func(c *rewireConfig) {
		c.undirected = true
	}
}
