// Package region defines the weighted regions consumed by the majority
// search, together with the persistent witness Set and the small aggregate
// helpers (cost, threshold, totals) shared by every engine.
//
// A Region carries two non-negative weights:
//
//	Coarse — contributes to the majority threshold (e.g. electoral votes).
//	Fine   — contributes to cost (e.g. votes cast inside the region).
//
// The cost of securing a region is a simple majority of its fine weight:
//
//	Cost(r) = ⌊r.Fine/2⌋ + 1
//
// and the threshold of a collection is a simple majority of its coarse
// weight:
//
//	Threshold(rs) = ⌊Σ Coarse/2⌋ + 1
//
// Set is an immutable singly-linked set of region indices. Add never
// mutates its receiver; it allocates one node and shares the tail, so a Set
// stored in a memo table can be extended by any number of callers without
// copying or aliasing. A nil *Set is the valid empty set.
package region
