package majority

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mincost/region"
)

// Sweep runs FindMinimumCostMajority on every collection concurrently,
// at most Options.Workers at a time. Each search owns its memo table.
//
// Results are returned in input order. The first failing collection cancels
// the others and its error, tagged with the collection index, is returned.
func Sweep(ctx context.Context, collections [][]region.Region, opts ...Option) ([]Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(collections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	// The per-search context is appended last so it wins over any WithContext in opts.
	perSearch := make([]Option, 0, len(opts)+1)
	perSearch = append(perSearch, opts...)
	perSearch = append(perSearch, WithContext(gctx))

	for i := range collections {
		i := i
		g.Go(func() error {
			res, err := FindMinimumCostMajority(collections[i], perSearch...)
			if err != nil {
				return fmt.Errorf("collection %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
