package region

import "errors"

var (
	// ErrNilRegions is returned when a nil region slice is supplied.
	// An empty, non-nil slice is valid input.
	ErrNilRegions = errors.New("region: region list is nil")

	// ErrNegativeWeight indicates a region with a negative coarse or fine weight.
	ErrNegativeWeight = errors.New("region: negative weight")

	// ErrWeightOverflow indicates that summing the weights of a collection
	// overflows int.
	ErrWeightOverflow = errors.New("region: total weight overflows int")
)

// Region is an immutable weighted entity.
//
// Name is an optional label and never participates in the search. Two
// regions with equal weights are still distinct: outputs identify regions by
// their index in the input slice.
type Region struct {
	Name   string
	Coarse int
	Fine   int
}

// New returns a Region with the given label and weights.
func New(name string, coarse, fine int) Region {
	return Region{Name: name, Coarse: coarse, Fine: fine}
}
