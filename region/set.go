package region

import "sort"

// Set is an immutable set of region indices, built as a persistent
// singly-linked list. The nil *Set is the empty set and every method is
// safe to call on it.
//
// Each node caches the aggregates of the whole list (size, Σ Coarse, Σ Cost),
// so reading them is O(1). Add allocates exactly one node and shares the
// receiver as its tail; no Set is ever modified after construction.
type Set struct {
	index  int
	next   *Set
	size   int
	coarse int
	cost   int
}

// Add returns a new Set holding index plus every member of s.
// r must be the region stored at index; its weights feed the cached
// aggregates. The caller guarantees index is not already a member: the
// search only extends sets drawn from strictly higher indices.
//
// Complexity: O(1) time, O(1) space.
func (s *Set) Add(index int, r Region) *Set {
	return &Set{
		index:  index,
		next:   s,
		size:   s.Len() + 1,
		coarse: s.Coarse() + r.Coarse,
		cost:   s.Cost() + Cost(r),
	}
}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return s.size
}

// Coarse returns Σ Coarse over the members.
func (s *Set) Coarse() int {
	if s == nil {
		return 0
	}

	return s.coarse
}

// Cost returns Σ Cost over the members.
func (s *Set) Cost() int {
	if s == nil {
		return 0
	}

	return s.cost
}

// Contains reports whether index is a member.
//
// Complexity: O(k) for k members.
func (s *Set) Contains(index int) bool {
	for n := s; n != nil; n = n.next {
		if n.index == index {
			return true
		}
	}

	return false
}

// Indices returns the member indices in ascending order, in a freshly
// allocated slice the caller owns.
//
// Complexity: O(k log k).
func (s *Set) Indices() []int {
	out := make([]int, 0, s.Len())
	for n := s; n != nil; n = n.next {
		out = append(out, n.index)
	}
	sort.Ints(out)

	return out
}

// Regions resolves the members against src, in ascending index order.
// src must be the collection the set was built from.
func (s *Set) Regions(src []Region) []Region {
	idx := s.Indices()
	out := make([]Region, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}

	return out
}
