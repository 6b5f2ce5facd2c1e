package convert

import "errors"

var (
	// ErrNilMatrix indicates a nil *spmat.Matrix input.
	ErrNilMatrix = errors.New("convert: nil matrix")
	// ErrLoopEdge indicates a non-zero diagonal entry, which gonum simple
	// graphs cannot represent.
	ErrLoopEdge = errors.New("convert: self-loop not representable in simple graph")
	// ErrAsymmetric indicates ToUndirected received a non-symmetric matrix.
	ErrAsymmetric = errors.New("convert: matrix is not symmetric")
	// ErrEmptyGraph indicates FromDirected received a graph with no nodes.
	ErrEmptyGraph = errors.New("convert: graph has no nodes")
	// ErrBadNodeID indicates node IDs are not exactly 0..n-1.
	ErrBadNodeID = errors.New("convert: node ids must be exactly 0..n-1")
)
