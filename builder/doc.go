// SPDX-License-Identifier: MIT
// Package: mincost/builder
//
// Package builder generates deterministic region collections for tests,
// examples and benchmarks of the majority search.
//
// The package offers:
//
//   - Generators:
//     – Random:   n regions with weights drawn uniformly from configured ranges.
//     – Uniform:  n identical regions (tie scenarios).
//     – FromPairs: regions from literal (coarse, fine) pairs.
//   - Configuration primitives:
//     – Option:        a function that mutates builderConfig before use.
//     – builderConfig: holds RNG, name scheme and weight ranges.
//   - Name schemes (NameFn implementations):
//     – DefaultNameFn: "R0", "R1", …
//     – ExcelNameFn:   "A", "B", …, "Z", "AA", …
//
// Guarantees:
//
//   - Determinism: same options and seed ⇒ identical collections.
//   - Fast-fail on meaningless option arguments via panics in option
//     constructors; generators themselves never panic and return sentinel
//     errors (ErrTooFewRegions, ErrNeedRandSource, ErrInvalidRange).
//   - Every generated collection passes region.Validate.
package builder
