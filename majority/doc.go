// Package majority finds the cheapest way to win a majority of regions when
// each region must itself be won by a majority of its own fine weight.
//
// 🚀 Problem
//
//	Given regions r₀…rₙ₋₁, each with a coarse weight cᵢ and a fine weight fᵢ,
//	choose a subset S such that
//
//	  Σ_{i∈S} cᵢ ≥ T,   T = ⌊Σ cᵢ / 2⌋ + 1
//
//	minimising Σ_{i∈S} (⌊fᵢ/2⌋ + 1). The answer is the witness subset S,
//	not only its cost.
//
// ⚙️ Algorithm
//
//	solve(r, i) returns the cheapest subset of regions [i, n) whose coarse
//	weight reaches r:
//
//	  r ≤ 0   → the empty subset (goal already met)
//	  i == n  → impossible
//	  else    → min over c ∈ [i, n) of solve(r − c_c, c+1) ∪ {c}
//
//	Results are memoised under Key{Remaining: r, From: i}. Witness subsets
//	are persistent region.Set lists: extending a memoised child allocates one
//	node and never touches the child, so memo entries stay valid for every
//	later lookup. Ties keep the first minimum found (lowest candidate index).
//
// Engines (Options.Engine):
//   - Recursive — direct memoised recursion.
//   - Iterative — the same search driven by an explicit frame stack.
//   - Parallel  — the root candidate loop fanned out across goroutines, each
//     branch with its own memo table; the witness equals the sequential one.
//
// Complexity:
//
//	Time   O(n²·T) worst case, O(1) per set extension.
//	Memory O(n·T) memo entries, each sharing structure with its children.
//
// Budgets: MaxSteps and TimeLimit (or a context deadline) abort the search
// with ErrBudgetExceeded; a cancelled context yields ErrCanceled. Neither is
// ever reported as "no solution".
//
// Usage:
//
//	res, err := majority.FindMinimumCostMajority(regions,
//	    majority.WithEngine(majority.Iterative),
//	    majority.WithTimeLimit(2*time.Second),
//	)
//	if err != nil { … }
//	if res.Found {
//	    fmt.Println(res.Cost, res.Indices)
//	}
package majority
