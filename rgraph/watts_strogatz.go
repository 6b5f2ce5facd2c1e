// SPDX-License-Identifier: MIT
// Package: netdiffuseR/rgraph
//
// watts_strogatz.go — the lattice-then-rewire composition.
//
// Contract:
//   - Equivalent to Rewire(ctx, RingLattice(n, k, true), p, opts...,
//     WithUndirected()): an undirected ring lattice perturbed in place of
//     the classic model.
//   - Caller options are applied first; the undirected flag is always
//     forced afterwards, since the generated lattice is symmetric.
//   - Validation and the RNG contract are inherited from the two stages.
//
// Complexity: O(n·k) construction + O(n·k) bounded rewiring.

package rgraph

import (
	"context"
	"fmt"

	"github.com/manlius/netdiffuseR/spmat"
)

// WattsStrogatz builds an undirected n-vertex ring lattice of degree k and
// rewires each edge with probability p. With p=0 the regular lattice comes
// back unchanged; with p=1 every edge is relocated uniformly at random.
func WattsStrogatz(ctx context.Context, n, k int, p float64, opts ...Option) (*spmat.Matrix, error) {
	base, err := RingLattice(n, k, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
	}

	// The base lattice is symmetric by construction; force the undirected
	// flag so callers cannot accidentally break the symmetry invariant.
	opts = append(opts, WithUndirected())

	out, err := Rewire(ctx, base, p, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
	}

	return out, nil
}
