package majority_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mincost/majority"
	"github.com/katalvlaran/mincost/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSweep_OrderAndEquivalence: results come back in input order and match
// individual searches.
func TestSweep_OrderAndEquivalence(t *testing.T) {
	collections := make([][]region.Region, 8)
	for i := range collections {
		collections[i] = randomRegions(t, 6+i, int64(i+1))
	}

	results, err := majority.Sweep(context.Background(), collections, majority.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, results, len(collections))

	for i, rs := range collections {
		want, err := majority.FindMinimumCostMajority(rs)
		require.NoError(t, err)
		assert.Equal(t, want.Found, results[i].Found, "collection %d", i)
		assert.Equal(t, want.Indices, results[i].Indices, "collection %d", i)
		assert.Equal(t, want.Cost, results[i].Cost, "collection %d", i)
	}
}

// TestSweep_Error reports the failing collection and returns no results.
func TestSweep_Error(t *testing.T) {
	collections := [][]region.Region{
		randomRegions(t, 5, 1),
		randomRegions(t, 5, 2),
		nil,
	}
	results, err := majority.Sweep(context.Background(), collections)
	require.ErrorIs(t, err, region.ErrNilRegions)
	assert.Contains(t, err.Error(), "collection 2")
	assert.Nil(t, results)
}

// TestSweep_Canceled stops on a cancelled parent context.
func TestSweep_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := majority.Sweep(ctx, [][]region.Region{randomRegions(t, 8, 3)})
	require.ErrorIs(t, err, majority.ErrCanceled)
}

// TestSweep_Empty returns an empty slice for no collections.
func TestSweep_Empty(t *testing.T) {
	results, err := majority.Sweep(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestSweep_BadOption validates options before spawning work.
func TestSweep_BadOption(t *testing.T) {
	_, err := majority.Sweep(context.Background(), nil, majority.WithWorkers(-1))
	require.ErrorIs(t, err, majority.ErrBadOption)
}
