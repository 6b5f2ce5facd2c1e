// Package spmat_test provides unit tests for the sparse adjacency matrix,
// covering construction validation, the numeric policy, deterministic
// enumeration, and the clone/equality observables the rgraph algorithms
// depend on.
package spmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manlius/netdiffuseR/spmat"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -100} {
		m, err := spmat.New(n)
		require.Nil(t, m)
		require.ErrorIs(t, err, spmat.ErrBadOrder)
	}

	m, err := spmat.New(1)
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 1, m.Cols())
	require.Zero(t, m.NNZ())
}

func TestAccessors_Bounds(t *testing.T) {
	t.Parallel()

	m, err := spmat.New(3)
	require.NoError(t, err)

	tests := []struct{ i, j int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}, {-1, -1},
	}
	for _, tc := range tests {
		_, err = m.At(tc.i, tc.j)
		require.ErrorIs(t, err, spmat.ErrOutOfRange, "At(%d,%d)", tc.i, tc.j)
		require.ErrorIs(t, m.Set(tc.i, tc.j, 1), spmat.ErrOutOfRange, "Set(%d,%d)", tc.i, tc.j)
		require.ErrorIs(t, m.Add(tc.i, tc.j, 1), spmat.ErrOutOfRange, "Add(%d,%d)", tc.i, tc.j)
	}
}

func TestNumericPolicy(t *testing.T) {
	t.Parallel()

	m, err := spmat.New(2)
	require.NoError(t, err)

	// Negative stores are rejected outright.
	require.ErrorIs(t, m.Set(0, 1, -1), spmat.ErrNegativeWeight)
	// Non-finite values are rejected before the sign check.
	require.ErrorIs(t, m.Set(0, 1, math.NaN()), spmat.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), spmat.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), spmat.ErrNaNInf)

	// An Add driving a cell below zero must leave it untouched.
	require.NoError(t, m.Set(0, 1, 2))
	require.ErrorIs(t, m.Add(0, 1, -3), spmat.ErrNegativeWeight)
	w, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, w)
}

func TestSet_ZeroDeletesEntry(t *testing.T) {
	t.Parallel()

	m, err := spmat.New(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 1))
	require.Equal(t, 1, m.NNZ())

	require.NoError(t, m.Set(0, 1, 0))
	require.Zero(t, m.NNZ())

	// Add down to exactly zero must delete as well.
	require.NoError(t, m.Set(1, 0, 2))
	require.NoError(t, m.Add(1, 0, -2))
	require.Zero(t, m.NNZ())
}

func TestAdd_Accumulates(t *testing.T) {
	t.Parallel()

	m, err := spmat.New(4)
	require.NoError(t, err)

	require.NoError(t, m.Add(2, 3, 1))
	require.NoError(t, m.Add(2, 3, 1))
	require.NoError(t, m.Add(2, 3, 0.5))

	w, err := m.At(2, 3)
	require.NoError(t, err)
	require.InDelta(t, 2.5, w, spmat.Epsilon)
	require.InDelta(t, 2.5, m.TotalWeight(), spmat.Epsilon)
	require.Equal(t, 1, m.NNZ())
}

func TestNonZero_RowMajorOrder(t *testing.T) {
	t.Parallel()

	m, err := spmat.New(4)
	require.NoError(t, err)

	// Insert deliberately out of order; enumeration must not care.
	require.NoError(t, m.Set(3, 0, 4))
	require.NoError(t, m.Set(0, 2, 1))
	require.NoError(t, m.Set(1, 1, 2))
	require.NoError(t, m.Set(1, 3, 3))

	want := []spmat.Entry{
		{Row: 0, Col: 2, Weight: 1},
		{Row: 1, Col: 1, Weight: 2},
		{Row: 1, Col: 3, Weight: 3},
		{Row: 3, Col: 0, Weight: 4},
	}
	require.Equal(t, want, m.NonZero())
}

func TestNonZero_SnapshotIndependence(t *testing.T) {
	t.Parallel()

	m, err := spmat.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))

	snap := m.NonZero()
	// Mutating the matrix afterwards must not affect the snapshot.
	require.NoError(t, m.Set(0, 1, 0))
	require.NoError(t, m.Set(2, 2, 9))

	require.Equal(t, []spmat.Entry{{Row: 0, Col: 1, Weight: 1}}, snap)
}

func TestClone_Independence(t *testing.T) {
	t.Parallel()

	m, err := spmat.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(1, 2, 2))

	c := m.Clone()
	require.True(t, m.Equal(c))

	// Writes to the clone must not leak back.
	require.NoError(t, c.Set(0, 1, 0))
	require.NoError(t, c.Set(2, 0, 7))

	w, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, w)
	w, err = m.At(2, 0)
	require.NoError(t, err)
	require.Zero(t, w)
}

func TestIsSymmetric(t *testing.T) {
	t.Parallel()

	m, err := spmat.New(3)
	require.NoError(t, err)
	require.True(t, m.IsSymmetric(), "empty matrix is trivially symmetric")

	require.NoError(t, m.Set(0, 1, 1))
	require.False(t, m.IsSymmetric())

	require.NoError(t, m.Set(1, 0, 1))
	require.True(t, m.IsSymmetric())

	// Diagonal entries never break symmetry.
	require.NoError(t, m.Set(2, 2, 5))
	require.True(t, m.IsSymmetric())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, err := spmat.New(2)
	require.NoError(t, err)
	b, err := spmat.New(2)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	require.NoError(t, a.Set(0, 1, 1))
	require.False(t, a.Equal(b))

	require.NoError(t, b.Set(0, 1, 1))
	require.True(t, a.Equal(b))

	// Same entry count, different cell.
	require.NoError(t, a.Set(1, 0, 1))
	require.NoError(t, b.Set(1, 1, 1))
	require.False(t, a.Equal(b))

	// Different order never compares equal, even when both are empty.
	c, err := spmat.New(3)
	require.NoError(t, err)
	d, err := spmat.New(2)
	require.NoError(t, err)
	require.False(t, c.Equal(d))
}
