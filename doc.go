// Package netdiffuser generates reproducible synthetic networks with a
// tunable balance between regularity and randomness, implementing the
// Watts–Strogatz small-world model over sparse weighted adjacency matrices.
//
// What lives where:
//
//	spmat/   — sparse, square, weighted adjacency matrices (the data model)
//	rgraph/  — ring-lattice construction and stochastic edge rewiring
//	convert/ — interchange with gonum graph/simple weighted graphs
//
// Typical flow: build a degree-regular ring lattice, then perturb it with a
// seeded rewiring pass.
//
//	base, _ := rgraph.RingLattice(100, 4, true)
//	sw, _ := rgraph.Rewire(ctx, base, 0.1,
//		rgraph.WithUndirected(),
//		rgraph.WithSeed(42),
//	)
//
// Both steps are pure: the input matrix is never mutated, randomness comes
// only from an injected seedable source, and the same inputs always yield
// the same network.
//
// References: Watts, D. J., & Strogatz, S. H. (1998). Collective dynamics
// of “small-world” networks. Nature, 393(6684), 440–442.
package netdiffuser
