package gap

import "sort"

// DefaultQuickWins is the result cap when the caller passes max <= 0.
const DefaultQuickWins = 3

// QuickWins re-ranks an analysis's recommendations by estimated completion
// time, shortest first, and returns the top max. The sort is stable so
// equally-quick gaps keep their importance order.
func QuickWins(analysis Analysis, max int) []Recommendation {
	if max <= 0 {
		max = DefaultQuickWins
	}

	recs := make([]Recommendation, len(analysis.Recommendations))
	copy(recs, analysis.Recommendations)

	sort.SliceStable(recs, func(i, j int) bool {
		return durationBucket(recs[i].EstimatedTime) < durationBucket(recs[j].EstimatedTime)
	})

	if len(recs) > max {
		recs = recs[:max]
	}
	return recs
}
