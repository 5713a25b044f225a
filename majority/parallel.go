package majority

import (
	"golang.org/x/sync/errgroup"
)

// branch is the result of one root candidate in a Parallel search.
type branch struct {
	child  entry
	states int
	hits   int64
}

// solveParallel expands (remaining, from) once, solving each candidate's
// child subproblem on its own goroutine with a private memo table. The
// min-reduction runs in candidate order with a strict comparison, so the
// witness matches the sequential engines.
//
// Returns the result plus the memo entries and hits accumulated by all branches.
func (e *engine) solveParallel(remaining, from, workers int) (entry, int, int64, error) {
	if got, ok := e.resolve(remaining, from); ok {
		return got, len(e.memo), e.hits, nil
	}
	if err := e.budget.tick(); err != nil {
		return entry{}, 0, 0, err
	}

	branches := make([]branch, e.n)
	g, gctx := errgroup.WithContext(e.budget.ctx)
	g.SetLimit(workers)
	shared := e.budget.withContext(gctx)

	for c := from; c < e.n; c++ {
		c := c
		g.Go(func() error {
			sub := newEngine(e.regions, shared)
			child, err := sub.solveRecursive(remaining-e.regions[c].Coarse, c+1)
			if err != nil {
				return err
			}
			branches[c] = branch{child: child, states: len(sub.memo), hits: sub.hits}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entry{}, 0, 0, err
	}

	var (
		best   entry
		states = 1
		hits   int64
	)
	for c := from; c < e.n; c++ {
		best = e.extend(best, c, branches[c].child)
		states += branches[c].states
		hits += branches[c].hits
	}
	e.memo[Key{Remaining: remaining, From: from}] = best

	return best, states, hits, nil
}
