// SPDX-License-Identifier: MIT
// Package: mincost/builder
//
// api.go — public generators.
//
// Determinism: for Random, regions are drawn in index order and each draws
// coarse before fine, so a fixed seed fixes the whole collection.

package builder

import (
	"github.com/katalvlaran/mincost/region"
)

// Method tags used in error context.
const (
	methodRandom    = "Random"
	methodUniform   = "Uniform"
	methodFromPairs = "FromPairs"
)

// Random returns n regions whose weights are drawn uniformly from the
// configured coarse and fine ranges.
//
// Errors:
//   - ErrTooFewRegions  if n < 0.
//   - ErrInvalidRange   if a range has lo < 0 or lo > hi.
//   - ErrNeedRandSource if neither WithSeed nor WithRand was given.
//
// Complexity: O(n).
func Random(n int, opts ...Option) ([]region.Region, error) {
	cfg := newBuilderConfig(opts...)
	if n < 0 {
		return nil, builderErrorf(methodRandom, ErrTooFewRegions, "n=%d", n)
	}
	if err := checkRange(methodRandom, "coarse", cfg.coarseLo, cfg.coarseHi); err != nil {
		return nil, err
	}
	if err := checkRange(methodRandom, "fine", cfg.fineLo, cfg.fineHi); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandom, ErrNeedRandSource, "n=%d", n)
	}

	out := make([]region.Region, n)
	for i := range out {
		coarse := cfg.intIn(cfg.coarseLo, cfg.coarseHi)
		fine := cfg.intIn(cfg.fineLo, cfg.fineHi)
		out[i] = region.New(cfg.nameFn(i), coarse, fine)
	}

	return out, nil
}

// Uniform returns n regions that all carry the same weights.
// Only WithNameScheme affects the result.
func Uniform(n, coarse, fine int, opts ...Option) ([]region.Region, error) {
	cfg := newBuilderConfig(opts...)
	if n < 0 {
		return nil, builderErrorf(methodUniform, ErrTooFewRegions, "n=%d", n)
	}
	if coarse < 0 || fine < 0 {
		return nil, builderErrorf(methodUniform, ErrInvalidRange, "coarse=%d fine=%d", coarse, fine)
	}

	out := make([]region.Region, n)
	for i := range out {
		out[i] = region.New(cfg.nameFn(i), coarse, fine)
	}

	return out, nil
}

// FromPairs builds regions from literal [coarse, fine] pairs.
func FromPairs(pairs [][2]int, opts ...Option) ([]region.Region, error) {
	cfg := newBuilderConfig(opts...)
	out := make([]region.Region, len(pairs))
	for i, p := range pairs {
		if p[0] < 0 || p[1] < 0 {
			return nil, builderErrorf(methodFromPairs, ErrInvalidRange, "pair[%d]=%v", i, p)
		}
		out[i] = region.New(cfg.nameFn(i), p[0], p[1])
	}

	return out, nil
}

// checkRange validates an inclusive weight range.
func checkRange(method, what string, lo, hi int) error {
	if lo < 0 || lo > hi {
		return builderErrorf(method, ErrInvalidRange, "%s=[%d,%d]", what, lo, hi)
	}

	return nil
}
