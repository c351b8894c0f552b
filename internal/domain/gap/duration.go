package gap

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var firstNumber = regexp.MustCompile(`(\d+)`)

// monthsFromEstimate converts a free-text duration estimate to months.
// Ranges use their first number ("3-6 months" reads as 3); anything
// unparsable defaults to three months so partial data degrades instead of
// aborting the whole estimate.
func monthsFromEstimate(estimate string) float64 {
	s := strings.ToLower(estimate)

	switch {
	case strings.Contains(s, "week"):
		if n, ok := leadingNumber(s); ok {
			return n / 4
		}
	case strings.Contains(s, "month"):
		if n, ok := leadingNumber(s); ok {
			return n
		}
	case strings.Contains(s, "year"):
		if n, ok := leadingNumber(s); ok {
			return n * 12
		}
	}
	return 3
}

func leadingNumber(s string) (float64, bool) {
	m := firstNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// durationBucket groups estimates by how fast they complete; lower buckets
// make better quick wins. Unrecognized estimates go to a catch-all bucket.
func durationBucket(estimate string) int {
	s := strings.ToLower(estimate)
	switch {
	case strings.Contains(s, "week"), strings.Contains(s, "day"):
		return 1
	case strings.Contains(s, "1-2 month"), strings.Contains(s, "1 month"):
		return 2
	case strings.Contains(s, "2-3 month"):
		return 3
	case strings.Contains(s, "3-4 month"), strings.Contains(s, "3-6 month"):
		return 4
	case strings.Contains(s, "6 month"):
		return 5
	default:
		return 10
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
