// File: rgraph/options_test.go
package rgraph_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manlius/netdiffuseR/rgraph"
)

// TestWithRand_NilPanics: option constructors validate and panic on
// meaningless input; algorithms never do.
func TestWithRand_NilPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { rgraph.WithRand(nil) })
}

// TestWithRand_MatchesSeed: an explicit RNG with the same seed must drive
// the pass identically to WithSeed.
func TestWithRand_MatchesSeed(t *testing.T) {
	t.Parallel()

	base, err := rgraph.RingLattice(24, 4, true)
	require.NoError(t, err)

	a, err := rgraph.Rewire(context.Background(), base, 0.3,
		rgraph.WithUndirected(), rgraph.WithSeed(123))
	require.NoError(t, err)

	b, err := rgraph.Rewire(context.Background(), base, 0.3,
		rgraph.WithUndirected(), rgraph.WithRand(rand.New(rand.NewSource(123))))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
}
