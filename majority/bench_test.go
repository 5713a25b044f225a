// Package majority_test — benchmarks for the majority search engines.
//
// Policy:
//   - Fixed seeds via builder.WithSeed; inputs are built outside the timer.
//   - Sizes chosen to finish quickly on CI while exercising the memo table.
package majority_test

import (
	"testing"

	"github.com/katalvlaran/mincost/builder"
	"github.com/katalvlaran/mincost/majority"
	"github.com/katalvlaran/mincost/region"
)

// benchmarkEngine runs one engine on n random regions.
func benchmarkEngine(b *testing.B, n int, eng majority.Engine) {
	rs, err := builder.Random(n, builder.WithSeed(2016), builder.WithCoarseRange(3, 55), builder.WithFineRange(1e5, 1e7))
	if err != nil {
		b.Fatalf("builder.Random: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = majority.FindMinimumCostMajority(rs, majority.WithEngine(eng)); err != nil {
			b.Fatalf("search failed: %v", err)
		}
	}
}

// BenchmarkRecursive_n30 measures direct recursion on 30 regions.
func BenchmarkRecursive_n30(b *testing.B) { benchmarkEngine(b, 30, majority.Recursive) }

// BenchmarkIterative_n30 measures the explicit-stack driver on 30 regions.
func BenchmarkIterative_n30(b *testing.B) { benchmarkEngine(b, 30, majority.Iterative) }

// BenchmarkParallel_n30 measures the fan-out driver on 30 regions.
func BenchmarkParallel_n30(b *testing.B) { benchmarkEngine(b, 30, majority.Parallel) }

// BenchmarkIterative_n51 uses the size of a national map (50 states + a district).
func BenchmarkIterative_n51(b *testing.B) { benchmarkEngine(b, 51, majority.Iterative) }

// BenchmarkSetAdd measures one persistent extension on a long shared tail.
func BenchmarkSetAdd(b *testing.B) {
	var tail *region.Set
	r := region.Region{Coarse: 1, Fine: 3}
	for i := 0; i < 64; i++ {
		tail = tail.Add(i, r)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tail.Add(64, r)
	}
}
