// Package mincost finds the cheapest way to win a majority of weighted
// regions, when every region must itself be won by a majority of its own
// fine weight, and returns the winning subset as well as its cost.
//
// 🚀 What is mincost?
//
//	A small, pure-Go library built around one memoised optimal-subset search:
//		• region   — Region values, the persistent witness Set, cost and threshold helpers
//		• majority — the search itself (recursive, explicit-stack and parallel engines),
//		             budgets, Prometheus metrics and concurrent sweeps
//		• builder  — deterministic generators of region collections for tests and benchmarks
//
// ✨ Why choose mincost?
//
//   - Exact – the optimum is proven against exhaustive enumeration in tests
//   - Witness, not just a number – the chosen regions come back by index,
//     so regions with identical weights stay distinguishable
//   - Aliasing-free – witness sets are immutable and share structure
//   - Bounded – step and time budgets surface as errors, never as truncated answers
//
// Quick example:
//
//	regions := []region.Region{
//	    region.New("a", 3, 10),
//	    region.New("b", 2, 4),
//	    region.New("c", 4, 20),
//	}
//	res, _ := majority.FindMinimumCostMajority(regions)
//	// res.Indices == [0 1], res.Cost == 9
//
//	go get github.com/katalvlaran/mincost
package mincost
