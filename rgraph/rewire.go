// SPDX-License-Identifier: MIT
// Package: netdiffuseR/rgraph
//
// rewire.go — implementation of Rewire(ctx, g, p, opts...).
//
// Contract:
//   - The input matrix is never mutated: all work happens on a clone.
//   - Candidate edges are snapshotted from the INPUT before any mutation,
//     so moves performed during the pass never alter which edges are
//     considered (no iterator invalidation, explicit snapshot semantics).
//   - Undirected inputs are visited once per logical edge, via the entry
//     with row ≥ col; every relocation mirrors both cells.
//   - Each candidate rewires with probability p. p is NOT range-checked:
//     p ≤ 0 never rewires and p ≥ 1 always does (permissive by contract).
//   - A non-nil RNG (WithSeed/WithRand) is required whenever p > 0;
//     with p ≤ 0 and no RNG the untouched clone is returned directly.
//   - Weight is conserved exactly: a move zeroes the old cell(s) and ADDS
//     the weight onto the new cell(s), merging with any existing entry.
//   - The context is polled every cancelCheckInterval candidates; on
//     cancellation the working copy is discarded and ErrCancelled
//     (wrapping ctx.Err()) is returned with the input still intact.
//
// Target search (rejection sampling):
//   - Candidates for the new target are drawn uniformly over [0, n).
//     A bitset tracks values already tried so a redraw of a rejected value
//     counts as a repeat; after n² repeats the search gives up.
//   - Escape valve: when the repeat limit is exhausted (e.g. a saturated
//     neighbourhood with multi-edges disallowed), the edge is moved to the
//     LAST drawn pair even if it violates the configured constraints. This
//     keeps the pass total and weight-conserving at the cost of a rare
//     constraint breach on degenerate inputs; callers needing a hard
//     guarantee should verify the result (spmat reports diagonals and
//     occupancy in O(1)).
//
// Complexity:
//   - O(m) candidates; each search is bounded by the n² repeat valve, with
//     O(1) expected draws on non-degenerate inputs. Space: O(n) bitset per
//     rewired edge plus the O(m) working copy.
//
// Determinism:
//   - Candidate order is spmat's row-major NonZero order, and draws come
//     only from the injected RNG: fixed seed ⇒ identical output.

package rgraph

import (
	"context"
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/manlius/netdiffuseR/spmat"
)

// Rewire returns a copy of g in which each edge has been relocated with
// probability p, subject to the structural constraints configured via opts.
// The total edge weight of the result always equals that of the input:
// rewiring moves weight, never creates or destroys it.
func Rewire(ctx context.Context, g *spmat.Matrix, p float64, opts ...Option) (*spmat.Matrix, error) {
	// Defensive: reject a nil input before touching it.
	if g == nil {
		return nil, fmt.Errorf("%s: %w", MethodRewire, ErrNilMatrix)
	}
	// Tolerate a nil context the same way the stdlib does.
	if ctx == nil {
		ctx = context.Background()
	}

	// Resolve the configuration once; cfg is immutable from here on.
	cfg := newRewireConfig(opts...)

	// Working copy: exclusively owned by this call until returned.
	out := g.Clone()

	// RNG contract: stochastic work needs an injected source. With p ≤ 0
	// no candidate can rewire, so the untouched clone is already the result.
	if cfg.rng == nil {
		if p > 0 {
			return nil, fmt.Errorf("%s: rng is required: %w", MethodRewire, ErrNeedRandSource)
		}
		return out, nil
	}

	n := g.Rows()
	repeatLimit := n * n // safety valve bound for the target search

	// Snapshot the candidate list from the ORIGINAL graph. Later mutations
	// of the working copy must not change which edges get considered.
	candidates := g.NonZero()

	var (
		i          int         // candidate index (drives the cancel cadence)
		cand       spmat.Entry // current candidate entry
		j, k       int         // current edge endpoints (row, col)
		newj, newk int         // relocated endpoints
		repeats    int         // repeated draws of already-tried targets
		w, cur     float64     // moved weight / occupancy probe
		err        error
	)
	for i, cand = range candidates {
		// Cooperative cancellation between edges, at a fixed cadence.
		if i%cancelCheckInterval == 0 {
			if cerr := ctx.Err(); cerr != nil {
				// Discard the working copy; the input remains valid.
				return nil, fmt.Errorf("%s: after %d candidates: %v: %w",
					MethodRewire, i, cerr, ErrCancelled)
			}
		}

		// Bernoulli gate: a draw above p leaves this edge untouched.
		if cfg.rng.Float64() > p {
			continue
		}

		j, k = cand.Row, cand.Col

		// Undirected: each logical edge is stored twice; visit it exactly
		// once through its canonical row ≥ col entry.
		if cfg.undirected && j < k {
			continue
		}

		// New source endpoint: redrawn only under two-sided rewiring.
		newj = j
		if cfg.bothEnds {
			newj = cfg.rng.Intn(n)
		}

		// Rejection-sample the new target. tried marks every value drawn so
		// far in this search; redrawing a marked value counts as a repeat.
		tried := bits.New(n)
		repeats = 0
		for {
			newk = cfg.rng.Intn(n)

			if tried.Bit(newk) == 1 {
				repeats++
				if repeats >= repeatLimit {
					// Escape valve: proceed with the last drawn pair.
					break
				}
				continue
			}
			tried.SetBit(newk, 1)

			// Canonical ordering for undirected storage, mirroring the
			// candidate-selection skip above.
			if cfg.undirected && newj < newk {
				continue
			}
			// Self-loop constraint, checked on the relocated pair.
			if !cfg.selfLoops && newj == newk {
				continue
			}
			// Multi-edge constraint, checked against the CURRENT working
			// copy: earlier moves in this pass count as occupancy.
			if !cfg.multiEdges {
				if cur, err = out.At(newj, newk); err != nil {
					return nil, fmt.Errorf("%s: At(%d,%d): %w", MethodRewire, newj, newk, err)
				}
				if cur != 0 {
					continue
				}
			}

			// All constraints hold: newk accepted.
			break
		}

		// Move the CURRENT weight at (j,k) — earlier merges included.
		if w, err = out.At(j, k); err != nil {
			return nil, fmt.Errorf("%s: At(%d,%d): %w", MethodRewire, j, k, err)
		}
		if err = out.Set(j, k, 0); err != nil {
			return nil, fmt.Errorf("%s: Set(%d,%d,0): %w", MethodRewire, j, k, err)
		}
		if cfg.undirected {
			if err = out.Set(k, j, 0); err != nil {
				return nil, fmt.Errorf("%s: Set(%d,%d,0): %w", MethodRewire, k, j, err)
			}
		}

		// Additive merge: preserves any pre-existing weight at the target
		// when multi-edges are allowed, and total weight in every case.
		if err = out.Add(newj, newk, w); err != nil {
			return nil, fmt.Errorf("%s: Add(%d,%d,%g): %w", MethodRewire, newj, newk, w, err)
		}
		if cfg.undirected {
			if err = out.Add(newk, newj, w); err != nil {
				return nil, fmt.Errorf("%s: Add(%d,%d,%g): %w", MethodRewire, newk, newj, w, err)
			}
		}
	}

	return out, nil
}
