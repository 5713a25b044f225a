// SPDX-License-Identifier: MIT
// Package: mincost/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors panic on nil arguments (programmer error).
//   • Range validity is checked by the generators and surfaces as
//     ErrInvalidRange, so a bad range never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a generator by mutating a builderConfig.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithNameScheme sets the region label generator. Panics on nil.
func WithNameScheme(fn NameFn) Option {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithCoarseRange sets the inclusive range of coarse weights drawn by Random.
func WithCoarseRange(lo, hi int) Option {
	return func(c *builderConfig) {
		c.coarseLo, c.coarseHi = lo, hi
	}
}

// WithFineRange sets the inclusive range of fine weights drawn by Random.
func WithFineRange(lo, hi int) Option {
	return func(c *builderConfig) {
		c.fineLo, c.fineHi = lo, hi
	}
}
