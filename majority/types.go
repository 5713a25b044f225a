package majority

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mincost/region"
)

var (
	// ErrBadOption indicates an invalid Options value (negative budget,
	// zero workers, nil context).
	ErrBadOption = errors.New("majority: invalid option")

	// ErrUnsupportedEngine is returned for an unknown Engine value.
	ErrUnsupportedEngine = errors.New("majority: unsupported engine")

	// ErrBudgetExceeded is returned when the search exceeds MaxSteps,
	// TimeLimit or the context deadline. It is distinct from "no solution".
	ErrBudgetExceeded = errors.New("majority: search exceeded budget")

	// ErrCanceled is returned when the search context is cancelled.
	ErrCanceled = errors.New("majority: search canceled")
)

// Engine selects the search driver.
type Engine int

const (
	// Recursive drives solve by direct recursion (depth ≤ n+1).
	Recursive Engine = iota

	// Iterative drives solve with an explicit frame stack.
	Iterative

	// Parallel fans the root candidate loop out across Options.Workers goroutines.
	Parallel
)

// String implements fmt.Stringer.
func (e Engine) String() string {
	switch e {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Key identifies one subproblem: reach Remaining more coarse weight using
// only regions at index ≥ From. Key is comparable and used directly as a
// map key.
type Key struct {
	Remaining int
	From      int
}

// Less orders keys by Remaining, then From.
func (k Key) Less(o Key) bool {
	if k.Remaining != o.Remaining {
		return k.Remaining < o.Remaining
	}

	return k.From < o.From
}

// Stats reports the work done by one search.
type Stats struct {
	// Steps counts subproblem expansions (memo misses that ran the candidate loop).
	Steps int64
	// States is the number of memo entries at the end of the search.
	States int
	// MemoHits counts lookups answered from the memo table.
	MemoHits int64
	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}

// Result is the outcome of a search.
//
// Found=false means no subset reaches the threshold; it is a normal outcome,
// not an error. When Found is true, Indices lists the chosen regions in
// ascending input order and Regions holds copies of them in the same order.
type Result struct {
	SearchID  uuid.UUID
	Found     bool
	Indices   []int
	Regions   []region.Region
	Cost      int
	Coarse    int
	Threshold int
	TotalFine int
	Stats     Stats
}

// Share returns Cost as a fraction of the collection's total fine weight,
// or 0 when nothing was found or the total is zero.
func (r Result) Share() float64 {
	if !r.Found || r.TotalFine == 0 {
		return 0
	}

	return float64(r.Cost) / float64(r.TotalFine)
}
