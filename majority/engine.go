package majority

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/mincost/region"
)

// checkMask sets how often the context is polled: on the first expansion
// and then every 1024 expansions.
const checkMask = 1023

// entry is one memo value. feasible=false means no subset works;
// feasible=true with a nil set means the goal is already met.
type entry struct {
	set      *region.Set
	feasible bool
}

// better reports whether cand strictly improves on best.
func better(cand *region.Set, best entry) bool {
	return !best.feasible || cand.Cost() < best.set.Cost()
}

// budget is shared by every engine of one search, including the branches of
// a Parallel search, so the step counter is atomic.
type budget struct {
	ctx      context.Context
	maxSteps int64
	steps    *atomic.Int64
}

func newBudget(ctx context.Context, maxSteps int64) *budget {
	return &budget{ctx: ctx, maxSteps: maxSteps, steps: new(atomic.Int64)}
}

// withContext returns a budget sharing b's counter under a new context.
func (b *budget) withContext(ctx context.Context) *budget {
	return &budget{ctx: ctx, maxSteps: b.maxSteps, steps: b.steps}
}

// tick accounts one expansion and reports budget or context failures.
func (b *budget) tick() error {
	s := b.steps.Add(1)
	if b.maxSteps > 0 && s > b.maxSteps {
		return fmt.Errorf("%d steps: %w", b.maxSteps, ErrBudgetExceeded)
	}
	if s != 1 && s&checkMask != 0 {
		return nil
	}

	return contextErr(b.ctx.Err())
}

// contextErr maps a context error onto the package sentinels.
func contextErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrBudgetExceeded, err)
	default:
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}
}

// engine owns the memo table of one search (or one Parallel branch).
type engine struct {
	regions []region.Region
	n       int
	memo    map[Key]entry
	hits    int64
	budget  *budget
}

func newEngine(regions []region.Region, b *budget) *engine {
	return &engine{
		regions: regions,
		n:       len(regions),
		memo:    make(map[Key]entry),
		budget:  b,
	}
}

// resolve answers (remaining, from) without expanding it, when possible:
// base A (goal met), base B (no candidates left) or a memo hit.
func (e *engine) resolve(remaining, from int) (entry, bool) {
	if remaining <= 0 {
		return entry{feasible: true}, true
	}
	key := Key{Remaining: remaining, From: from}
	if from >= e.n {
		if _, ok := e.memo[key]; !ok {
			e.memo[key] = entry{}
		}

		return entry{}, true
	}
	if got, ok := e.memo[key]; ok {
		e.hits++

		return got, true
	}

	return entry{}, false
}

// extend folds the child result for candidate c into best.
// The child set is shared, never modified.
func (e *engine) extend(best entry, c int, child entry) entry {
	if !child.feasible {
		return best
	}
	cand := child.set.Add(c, e.regions[c])
	if better(cand, best) {
		return entry{set: cand, feasible: true}
	}

	return best
}
