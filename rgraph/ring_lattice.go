// SPDX-License-Identifier: MIT
// Package: netdiffuseR/rgraph
//
// ring_lattice.go — implementation of RingLattice(n, k, undirected).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); k ≤ n-1 (else ErrDegreeTooLarge).
//   - Undirected with k > 1 uses the half-degree k' = ⌊k/2⌋, so the
//     realized undirected degree 2·k' is always even; k ≤ 1 is unchanged.
//   - For each vertex i and offset j in 1..k', adds weight 1 at
//     (i, (i+j) mod n), mirrored for undirected graphs.
//   - k ≤ 0 yields a valid edgeless lattice (the offset loop is empty).
//   - No randomness: output is fully determined by (n, k, undirected).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n·k') writes. Space: O(n·k') entries.
//
// Determinism:
//   - Entries are emitted i asc, offset asc; the result is identical across
//     runs and platforms.

package rgraph

import (
	"fmt"

	"github.com/manlius/netdiffuseR/spmat"
)

// RingLattice builds an n-vertex ring lattice of target degree k: vertices
// sit on a cycle and each connects to its k nearest neighbours along it.
// Directed lattices give every vertex out-degree exactly k; undirected
// lattices (symmetric storage) give every vertex total degree 2·⌊k/2⌋.
func RingLattice(n, k int, undirected bool) (*spmat.Matrix, error) {
	// Validate the order first: the degree bound below divides by nothing,
	// but a non-positive n makes "n-1" meaningless as a bound.
	if n < MinLatticeVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			MethodRingLattice, n, MinLatticeVertices, ErrTooFewVertices)
	}

	// Degree k requires k distinct neighbours; on n vertices at most n-1
	// exist without loops or multi-edges.
	if k > n-1 {
		return nil, fmt.Errorf("%s: n=%d, k=%d: %w", MethodRingLattice, n, k, ErrDegreeTooLarge)
	}

	// Undirected adjustment: each stored edge contributes to two vertex
	// degrees, so only half the offsets are placed per vertex.
	kk := k
	if undirected && k > undirectedHalfDegreeMin {
		kk = k / 2
	}

	// Order already validated; New cannot fail past this point.
	m, err := spmat.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: New(%d): %w", MethodRingLattice, n, err)
	}

	var i, j, l int
	for i = 0; i < n; i++ { // stable outer loop: i asc
		for j = 1; j <= kk; j++ { // offsets 1..k' connect nearest neighbours first
			l = (i + j) % n // wrap around the ring

			// Additive write keeps multiplicity semantics uniform with Rewire.
			if err = m.Add(i, l, latticeEdgeWeight); err != nil {
				return nil, fmt.Errorf("%s: Add(%d,%d): %w", MethodRingLattice, i, l, err)
			}
			if undirected {
				if err = m.Add(l, i, latticeEdgeWeight); err != nil {
					return nil, fmt.Errorf("%s: Add(%d,%d): %w", MethodRingLattice, l, i, err)
				}
			}
		}
	}

	return m, nil
}
