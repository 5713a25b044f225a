package majority_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mincost/builder"
	"github.com/katalvlaran/mincost/majority"
	"github.com/katalvlaran/mincost/region"
	"github.com/stretchr/testify/require"
)

// engines lists every search driver exercised by the equivalence tests.
var engines = []majority.Engine{majority.Recursive, majority.Iterative, majority.Parallel}

// bruteForce enumerates all 2ⁿ subsets and returns the minimum cost of a
// subset reaching threshold, or -1 when none does. Only for n ≤ 16.
func bruteForce(rs []region.Region, threshold int) int {
	n := len(rs)
	best := math.MaxInt
	for mask := 0; mask < 1<<n; mask++ {
		var coarse, cost int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				coarse += rs[i].Coarse
				cost += region.Cost(rs[i])
			}
		}
		if coarse >= threshold && cost < best {
			best = cost
		}
	}
	if best == math.MaxInt {
		return -1
	}

	return best
}

// randomRegions draws a small collection including zero weights.
func randomRegions(t testing.TB, n int, seed int64) []region.Region {
	t.Helper()
	rs, err := builder.Random(n,
		builder.WithSeed(seed),
		builder.WithCoarseRange(0, 6),
		builder.WithFineRange(0, 50),
	)
	require.NoError(t, err)

	return rs
}

// requireConsistent checks the internal consistency of a found Result.
func requireConsistent(t *testing.T, rs []region.Region, res majority.Result) {
	t.Helper()
	require.True(t, res.Found)
	require.Len(t, res.Regions, len(res.Indices))

	var coarse, cost int
	seen := make(map[int]bool, len(res.Indices))
	for k, i := range res.Indices {
		require.False(t, seen[i], "duplicate index %d", i)
		seen[i] = true
		if k > 0 {
			require.Less(t, res.Indices[k-1], i, "indices must ascend")
		}
		require.Equal(t, rs[i], res.Regions[k])
		coarse += rs[i].Coarse
		cost += region.Cost(rs[i])
	}
	require.Equal(t, coarse, res.Coarse)
	require.Equal(t, cost, res.Cost)
	require.GreaterOrEqual(t, res.Coarse, res.Threshold)
}
