// Package convert exchanges spmat adjacency matrices with gonum's
// graph/simple weighted graphs, so generated networks can feed gonum's
// analysis routines and externally built gonum graphs can be rewired.
//
// What:
//
//   - ToDirected / ToUndirected: export a matrix as a gonum simple graph.
//   - FromDirected: ingest a gonum weighted directed graph whose node IDs
//     are exactly 0..n-1 back into a matrix.
//
// Limitations:
//
//   - gonum simple graphs hold neither self-loops nor parallel edges, so a
//     matrix with a populated diagonal cannot be exported (ErrLoopEdge);
//     multi-edge multiplicities survive only as scalar weights.
//   - ToUndirected requires a symmetric matrix (ErrAsymmetric) and emits
//     each logical edge once.
//
// Errors:
//
//   - ErrNilMatrix: nil matrix input.
//   - ErrLoopEdge: non-zero diagonal entry during export.
//   - ErrAsymmetric: ToUndirected on a non-symmetric matrix.
//   - ErrEmptyGraph: FromDirected on a graph with no nodes.
//   - ErrBadNodeID: FromDirected node IDs are not exactly 0..n-1.
package convert
