package majority

// solveRecursive returns the cheapest subset of regions [from, n) whose
// coarse weight reaches remaining.
//
// Recursion depth is bounded by n+1 because every call advances from.
func (e *engine) solveRecursive(remaining, from int) (entry, error) {
	if got, ok := e.resolve(remaining, from); ok {
		return got, nil
	}
	if err := e.budget.tick(); err != nil {
		return entry{}, err
	}

	var best entry
	for c := from; c < e.n; c++ {
		child, err := e.solveRecursive(remaining-e.regions[c].Coarse, c+1)
		if err != nil {
			return entry{}, err
		}
		best = e.extend(best, c, child)
	}
	e.memo[Key{Remaining: remaining, From: from}] = best

	return best, nil
}
