package convert

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/manlius/netdiffuseR/spmat"
)

// absentWeight is reported by gonum for vertex pairs with no edge,
// matching spmat's implicit-zero convention.
const absentWeight = 0

// selfWeight is the implicit weight of a vertex to itself in the exported
// graphs; simple graphs carry no self-loops, so zero is the only choice.
const selfWeight = 0

// ToDirected exports m as a gonum weighted directed graph: one node per
// vertex 0..n-1 and one weighted edge per non-zero entry.
// Returns ErrLoopEdge if the diagonal is populated.
// Complexity: O(n + m) for m non-zero entries.
func ToDirected(m *spmat.Matrix) (*simple.WeightedDirectedGraph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	g := simple.NewWeightedDirectedGraph(selfWeight, absentWeight)
	// Add every vertex up front so isolated vertices survive the export.
	for i := 0; i < m.Rows(); i++ {
		g.AddNode(simple.Node(i))
	}

	for _, e := range m.NonZero() {
		if e.Row == e.Col {
			return nil, fmt.Errorf("entry (%d,%d): %w", e.Row, e.Col, ErrLoopEdge)
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.Row), simple.Node(e.Col), e.Weight))
	}

	return g, nil
}

// ToUndirected exports a symmetric m as a gonum weighted undirected graph,
// emitting each logical edge once via its row > col entry.
// Returns ErrAsymmetric for non-symmetric input and ErrLoopEdge if the
// diagonal is populated.
// Complexity: O(n + m).
func ToUndirected(m *spmat.Matrix) (*simple.WeightedUndirectedGraph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.IsSymmetric() {
		return nil, ErrAsymmetric
	}

	g := simple.NewWeightedUndirectedGraph(selfWeight, absentWeight)
	for i := 0; i < m.Rows(); i++ {
		g.AddNode(simple.Node(i))
	}

	for _, e := range m.NonZero() {
		if e.Row == e.Col {
			return nil, fmt.Errorf("entry (%d,%d): %w", e.Row, e.Col, ErrLoopEdge)
		}
		// Symmetry guarantees the mirror entry; emit the pair once.
		if e.Row < e.Col {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.Row), simple.Node(e.Col), e.Weight))
	}

	return g, nil
}

// FromDirected ingests a gonum weighted directed graph into a fresh matrix.
// Node IDs must be exactly 0..n-1 for n nodes (ErrBadNodeID otherwise);
// edge weights must satisfy spmat's numeric policy (finite, non-negative).
// Complexity: O(n + E).
func FromDirected(g *simple.WeightedDirectedGraph) (*spmat.Matrix, error) {
	nodes := g.Nodes()
	n := nodes.Len()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// Distinctness is guaranteed by the graph; n IDs all inside [0, n)
	// therefore cover 0..n-1 exactly.
	for nodes.Next() {
		if id := nodes.Node().ID(); id < 0 || id >= int64(n) {
			return nil, fmt.Errorf("node %d of %d: %w", id, n, ErrBadNodeID)
		}
	}

	m, err := spmat.New(n)
	if err != nil {
		return nil, fmt.Errorf("New(%d): %w", n, err)
	}

	edges := g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		if err = m.Set(int(e.From().ID()), int(e.To().ID()), e.Weight()); err != nil {
			return nil, fmt.Errorf("edge %d→%d: %w", e.From().ID(), e.To().ID(), err)
		}
	}

	return m, nil
}
