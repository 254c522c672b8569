package rules

import "math"

// DeriveOverallRating returns the arithmetic mean of the finite,
// strictly positive competency scores rounded to two decimals. ok is
// false when no score qualifies; unset scores arrive as zero and are
// skipped rather than dragging the mean down.
func DeriveOverallRating(scores ...float64) (rating float64, ok bool) {
	var sum float64
	var count int
	for _, score := range scores {
		if math.IsNaN(score) || math.IsInf(score, 0) || score <= 0 {
			continue
		}
		sum += score
		count++
	}
	if count == 0 {
		return 0, false
	}
	return math.Round(sum/float64(count)*100) / 100, true
}
