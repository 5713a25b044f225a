package region

import (
	"fmt"
	"math"
)

// Validate checks a region collection before any search begins.
//
// Contract:
//   - regions must be non-nil (ErrNilRegions); an empty slice is accepted.
//   - every Coarse and Fine weight must be ≥ 0 (ErrNegativeWeight).
//   - Σ Coarse and Σ Fine must fit in int (ErrWeightOverflow).
//
// Errors carry the offending index and are matched with errors.Is.
//
// Complexity: O(n) time, O(1) space.
func Validate(regions []Region) error {
	if regions == nil {
		return ErrNilRegions
	}

	var coarse, fine int
	for i := range regions {
		r := regions[i]
		if r.Coarse < 0 {
			return fmt.Errorf("region[%d] coarse=%d: %w", i, r.Coarse, ErrNegativeWeight)
		}
		if r.Fine < 0 {
			return fmt.Errorf("region[%d] fine=%d: %w", i, r.Fine, ErrNegativeWeight)
		}
		if coarse > math.MaxInt-r.Coarse {
			return fmt.Errorf("region[%d] coarse: %w", i, ErrWeightOverflow)
		}
		if fine > math.MaxInt-r.Fine {
			return fmt.Errorf("region[%d] fine: %w", i, ErrWeightOverflow)
		}
		coarse += r.Coarse
		fine += r.Fine
	}

	return nil
}
