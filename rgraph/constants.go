// Package rgraph defines shared constants used by the lattice and rewiring
// implementations, ensuring consistent defaults and uniform error context.
package rgraph

// Method name constants, used to prefix errors with the operation name.
const (
	// MethodRingLattice is the canonical name for the RingLattice operation.
	MethodRingLattice = "RingLattice"
	// MethodRewire is the canonical name for the Rewire operation.
	MethodRewire = "Rewire"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz operation.
	MethodWattsStrogatz = "WattsStrogatz"
)

// MinLatticeVertices is the smallest valid ring-lattice order. A single
// vertex is a legal (edgeless for k=0) lattice.
const MinLatticeVertices = 1

// latticeEdgeWeight is the multiplicity added per constructed lattice edge.
const latticeEdgeWeight = 1.0

// cancelCheckInterval is the cadence, in candidate edges, at which Rewire
// polls the caller's context. Checking every edge would dominate the loop
// for large graphs; once per thousand keeps aborts prompt and cheap.
const cancelCheckInterval = 1000

// undirectedHalfDegreeMin is the degree above which an undirected lattice
// halves k: for k ≤ 1 there is nothing to split across the two directions.
const undirectedHalfDegreeMin = 1
