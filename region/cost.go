package region

// Cost returns the fine weight needed to win r: ⌊Fine/2⌋+1.
//
// Complexity: O(1).
func Cost(r Region) int {
	return r.Fine/2 + 1
}

// Threshold returns the coarse weight a subset of regions must reach to hold
// a majority of the whole collection: ⌊Σ Coarse/2⌋+1.
//
// An empty collection has threshold 1, which no subset can meet.
//
// Complexity: O(n).
func Threshold(regions []Region) int {
	return TotalCoarse(regions)/2 + 1
}

// TotalCoarse sums the coarse weights of regions.
func TotalCoarse(regions []Region) int {
	var total int
	for i := range regions {
		total += regions[i].Coarse
	}

	return total
}

// TotalFine sums the fine weights of regions.
func TotalFine(regions []Region) int {
	var total int
	for i := range regions {
		total += regions[i].Fine
	}

	return total
}

// TotalCost sums Cost over regions.
func TotalCost(regions []Region) int {
	var total int
	for i := range regions {
		total += Cost(regions[i])
	}

	return total
}
