// SPDX-License-Identifier: MIT
// Package spmat: sparse square weighted matrix implementation.
//
// Design contract (strict):
//   - Storage is a map keyed by (row, col); absent cells read as 0.
//   - Writing 0 deletes the cell: the map holds non-zero weights only.
//   - NonZero returns entries in row-major order, independent of map
//     iteration, so every scan over a matrix is deterministic.
//   - All accessors validate bounds and the numeric policy (finite,
//     non-negative) and return sentinel errors; they never panic.
//
// Complexity:
//   - At/Set/Add: O(1) expected.
//   - NonZero: O(m log m) for m non-zero entries (sort for determinism).
//   - Clone/TotalWeight/NNZ: O(m).
//   - IsSymmetric/Equal: O(m).

package spmat

import (
	"math"
	"sort"
)

// Epsilon is the non-negative tolerance used by IsSymmetric and Equal when
// comparing stored weights.
const Epsilon = 1e-9

// cellKey addresses a single matrix cell. Using a small comparable struct
// keeps the map key compact and hash-friendly.
type cellKey struct {
	row int // row index in [0, n)
	col int // column index in [0, n)
}

// Entry is one non-zero cell reported by NonZero.
type Entry struct {
	Row    int     // row index
	Col    int     // column index
	Weight float64 // stored weight, strictly non-zero
}

// Matrix is a sparse n×n weighted adjacency matrix over vertices 0..n-1.
// The zero value is not usable; construct via New or Clone.
type Matrix struct {
	n     int                  // order (rows == cols == n)
	cells map[cellKey]float64 // non-zero cells only
}

// New returns an empty n×n matrix.
// Returns ErrBadOrder if n < 1.
// Complexity: O(1).
func New(n int) (*Matrix, error) {
	// Validate the order before allocating anything.
	if n < 1 {
		return nil, ErrBadOrder
	}

	return &Matrix{n: n, cells: make(map[cellKey]float64)}, nil
}

// Rows returns the matrix order n.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.n }

// Cols returns the matrix order n (the matrix is always square).
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.n }

// checkIndex validates that (i, j) addresses a cell inside the matrix.
func (m *Matrix) checkIndex(i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrOutOfRange
	}

	return nil
}

// checkWeight validates the numeric policy for a weight about to be stored.
func checkWeight(w float64) error {
	// Reject non-finite values first (NaN compares false with everything).
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrNaNInf
	}
	// Entries are multiplicities; a negative store is always a caller bug.
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}

// At returns the weight stored at (i, j); absent cells read as 0.
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1) expected.
func (m *Matrix) At(i, j int) (float64, error) {
	if err := m.checkIndex(i, j); err != nil {
		return 0, err
	}

	// Missing keys yield the zero value, which is exactly "no edge".
	return m.cells[cellKey{row: i, col: j}], nil
}

// Set stores weight w at (i, j), deleting the cell when w == 0.
// Returns ErrOutOfRange, ErrNaNInf or ErrNegativeWeight on invalid input.
// Complexity: O(1) expected.
func (m *Matrix) Set(i, j int, w float64) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	if err := checkWeight(w); err != nil {
		return err
	}

	key := cellKey{row: i, col: j}
	if w == 0 {
		// Keep the invariant: no explicit zeros in storage.
		delete(m.cells, key)
		return nil
	}
	m.cells[key] = w

	return nil
}

// Add adds delta to the weight at (i, j). The resulting weight must satisfy
// the numeric policy (finite, non-negative); a violating delta is rejected
// and the cell is left untouched.
// Complexity: O(1) expected.
func (m *Matrix) Add(i, j int, delta float64) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}

	key := cellKey{row: i, col: j}
	next := m.cells[key] + delta
	if err := checkWeight(next); err != nil {
		return err
	}

	if next == 0 {
		delete(m.cells, key)
		return nil
	}
	m.cells[key] = next

	return nil
}

// NonZero returns all non-zero entries as (row, col, weight) triples in
// row-major order. The slice is freshly allocated: callers may mutate the
// matrix afterwards without invalidating the snapshot.
// Complexity: O(m log m) for m non-zero entries.
func (m *Matrix) NonZero() []Entry {
	out := make([]Entry, 0, len(m.cells))
	for key, w := range m.cells {
		out = append(out, Entry{Row: key.row, Col: key.col, Weight: w})
	}

	// Row-major order: map iteration is randomized, downstream scans are not.
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}
		return out[a].Col < out[b].Col
	})

	return out
}

// NNZ returns the number of non-zero entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.cells) }

// TotalWeight returns the sum of all stored weights. Both algorithms in
// rgraph conserve this quantity exactly.
// Complexity: O(m).
func (m *Matrix) TotalWeight() float64 {
	var sum float64
	for _, w := range m.cells {
		sum += w
	}

	return sum
}

// Clone returns a deep copy sharing no state with the receiver.
// Complexity: O(m).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{n: m.n, cells: make(map[cellKey]float64, len(m.cells))}
	for key, w := range m.cells {
		out.cells[key] = w
	}

	return out
}

// IsSymmetric reports whether every cell (i, j) matches (j, i) within
// Epsilon — the storage invariant of an undirected graph.
// Complexity: O(m).
func (m *Matrix) IsSymmetric() bool {
	for key, w := range m.cells {
		mirror := m.cells[cellKey{row: key.col, col: key.row}]
		if math.Abs(w-mirror) > Epsilon {
			return false
		}
	}

	return true
}

// Equal reports whether o has the same order and the same non-zero entries
// within Epsilon. A nil argument is never equal.
// Complexity: O(m).
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.n != o.n || len(m.cells) != len(o.cells) {
		return false
	}
	for key, w := range m.cells {
		ow, ok := o.cells[key]
		if !ok || math.Abs(w-ow) > Epsilon {
			return false
		}
	}

	return true
}
