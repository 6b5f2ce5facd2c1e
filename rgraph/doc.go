// Package rgraph constructs degree-regular ring lattices and stochastically
// rewires the edges of sparse adjacency matrices, implementing the
// Watts–Strogatz small-world model.
//
// What:
//
//   - RingLattice(n, k, undirected): deterministic n-vertex ring lattice in
//     which each vertex connects to its k nearest neighbours on the cycle.
//   - Rewire(ctx, g, p, opts...): relocates each edge of g with probability
//     p under configurable structural constraints (self-loops, multi-edges,
//     one- or two-sided rewiring, undirected symmetry). Returns a new
//     matrix; the input is never mutated.
//   - WattsStrogatz(ctx, n, k, p, opts...): the classic composition of the
//     two, undirected.
//
// Why:
//
//   - Small-world topologies interpolate between regular lattices (p=0) and
//     random graphs (p=1); tuning p trades clustering against path length.
//   - Reproducibility: randomness enters only through WithSeed/WithRand, so
//     a fixed seed always reproduces the same network.
//
// Complexity:
//
//   - RingLattice: O(n·k) writes.
//   - Rewire: O(m) candidate edges, each with bounded rejection sampling
//     (at most n² repeated draws before the escape valve triggers).
//
// Errors:
//
//   - ErrTooFewVertices: lattice order n < 1.
//   - ErrDegreeTooLarge: lattice degree k > n-1.
//   - ErrNeedRandSource: Rewire with p > 0 and no RNG configured.
//   - ErrNilMatrix: nil input matrix.
//   - ErrCancelled: the context was cancelled mid-rewire; the input graph
//     remains valid, the partial working copy is discarded.
package rgraph
