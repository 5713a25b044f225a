// SPDX-License-Identifier: MIT
// Package: mincost/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nameFn      = DefaultNameFn   ("R0","R1",...)
//   • rng         = nil             (Random requires WithSeed/WithRand)
//   • coarse      = [1, 10]
//   • fine        = [0, 1000]

package builder

import "math/rand"

// Default weight ranges (inclusive).
const (
	defaultCoarseLo = 1
	defaultCoarseHi = 10
	defaultFineLo   = 0
	defaultFineHi   = 1000
)

// builderConfig aggregates all knobs used by generators.
type builderConfig struct {
	nameFn   NameFn
	rng      *rand.Rand
	coarseLo int
	coarseHi int
	fineLo   int
	fineHi   int
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies opts in order (later overrides earlier).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		nameFn:   DefaultNameFn,
		coarseLo: defaultCoarseLo,
		coarseHi: defaultCoarseHi,
		fineLo:   defaultFineLo,
		fineHi:   defaultFineHi,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// intIn draws uniformly from [lo, hi].
func (c builderConfig) intIn(lo, hi int) int {
	if lo == hi {
		return lo
	}

	return lo + c.rng.Intn(hi-lo+1)
}
