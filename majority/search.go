package majority

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mincost/region"
)

// FindMinimumCostMajority returns the cheapest subset of regions whose
// coarse weight reaches region.Threshold(regions).
//
// Contract:
//   - regions must pass region.Validate; otherwise the validation error is
//     returned before any search work.
//   - Result.Found=false means no subset reaches the threshold (for example
//     an empty collection, whose threshold is 1). It is not an error.
//   - ErrBudgetExceeded / ErrCanceled abort the search; no partial result
//     is returned.
//
// Complexity: O(n²·T) time, O(n·T) memo entries, T = threshold.
func FindMinimumCostMajority(regions []region.Region, opts ...Option) (Result, error) {
	if err := region.Validate(regions); err != nil {
		return Result{}, err
	}

	return run(regions, region.Threshold(regions), opts)
}

// Solve is FindMinimumCostMajority with an explicit threshold.
// A threshold ≤ 0 is met by the empty subset.
func Solve(regions []region.Region, threshold int, opts ...Option) (Result, error) {
	if err := region.Validate(regions); err != nil {
		return Result{}, err
	}

	return run(regions, threshold, opts)
}

// run resolves options, drives the selected engine and assembles the Result.
func run(regions []region.Region, threshold int, opts []Option) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}

	ctx := o.Ctx
	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}

	id := uuid.New()
	log := o.Logger.With("search_id", id.String())
	log.DebugContext(ctx, "majority search started",
		"regions", len(regions),
		"threshold", threshold,
		"engine", o.Engine.String())

	start := time.Now()
	e := newEngine(regions, newBudget(ctx, o.MaxSteps))

	var (
		best   entry
		states int
		hits   int64
	)
	switch o.Engine {
	case Recursive:
		best, err = e.solveRecursive(threshold, 0)
		states, hits = len(e.memo), e.hits
	case Iterative:
		best, err = e.solveIterative(threshold, 0)
		states, hits = len(e.memo), e.hits
	case Parallel:
		best, states, hits, err = e.solveParallel(threshold, 0, o.Workers)
	}

	stats := Stats{
		Steps:    e.budget.steps.Load(),
		States:   states,
		MemoHits: hits,
		Elapsed:  time.Since(start),
	}

	if err != nil {
		log.DebugContext(ctx, "majority search aborted", "error", err, "steps", stats.Steps)
		o.Metrics.observe(outcomeOf(err, false), stats)

		return Result{}, fmt.Errorf("search %s: %w", id, err)
	}

	res := Result{
		SearchID:  id,
		Found:     best.feasible,
		Threshold: threshold,
		TotalFine: region.TotalFine(regions),
		Stats:     stats,
	}
	if best.feasible {
		res.Indices = best.set.Indices()
		res.Regions = best.set.Regions(regions)
		res.Cost = best.set.Cost()
		res.Coarse = best.set.Coarse()
	}

	log.DebugContext(ctx, "majority search finished",
		"found", res.Found,
		"cost", res.Cost,
		"members", len(res.Indices),
		"steps", stats.Steps,
		"states", stats.States,
		"elapsed", stats.Elapsed)
	o.Metrics.observe(outcomeOf(nil, res.Found), stats)

	return res, nil
}
