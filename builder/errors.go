// SPDX-License-Identifier: MIT
// Package: mincost/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w via builderErrorf.
//   • Generators never panic; panics are confined to WithX constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewRegions indicates a negative region count.
var ErrTooFewRegions = errors.New("builder: region count too small")

// ErrNeedRandSource indicates that Random was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRange indicates a weight range with lo < 0 or lo > hi, or a
// negative constant weight.
var ErrInvalidRange = errors.New("builder: invalid weight range")

// builderErrorf wraps sentinel with a "<method>: <message>" prefix.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
