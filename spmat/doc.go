// Package spmat provides a sparse, square, weighted adjacency matrix over
// vertices labeled 0..n-1, the exchange type shared by the generation and
// rewiring algorithms in rgraph.
//
// What:
//
//   - Matrix stores only non-zero entries; absent cells read as weight 0.
//   - At/Set/Add give O(1) cell access with explicit bounds errors.
//   - NonZero enumerates entries as (row, col, weight) triples in
//     deterministic row-major order.
//   - Clone produces a fully independent deep copy.
//   - TotalWeight, NNZ, IsSymmetric and Equal expose the structural
//     observables the algorithms guarantee (weight conservation, symmetry).
//
// Why:
//
//   - Ring lattices and their rewired variants are sparse (O(n·k) entries);
//     a dense n×n block wastes memory and makes entry enumeration O(n²).
//   - Deterministic enumeration order makes stochastic passes reproducible
//     for a fixed seed: the candidate list never depends on map iteration.
//
// Numeric policy:
//
//   - Weights are non-negative finite reals (integer multiplicities in
//     practice). Set/Add reject NaN, ±Inf and negative results.
//   - Writing weight 0 deletes the entry; the structure never stores
//     explicit zeros.
//
// Errors:
//
//   - ErrBadOrder: requested order n < 1.
//   - ErrOutOfRange: row or column index outside [0, n).
//   - ErrNegativeWeight: a write would store a weight below 0.
//   - ErrNaNInf: a write carried a NaN or ±Inf value.
//   - ErrNilMatrix: a nil *Matrix receiver or argument.
package spmat
