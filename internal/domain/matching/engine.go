package matching

import "sort"

// DefaultLimit is the result cap when the caller passes limit <= 0.
const DefaultLimit = 10

// Rank orders matches by preferred-industry tier first, then score
// descending, then median wage descending (unknown wage sorts as 0).
// The sort is stable so equal rows keep candidate order.
func Rank(matches []Match, t Tunables) {
	tier := func(m Match) int {
		if _, ok := t.PreferredIndustries[Normalize(m.Occupation.Industry)]; ok {
			return 0
		}
		return 1
	}
	sort.SliceStable(matches, func(i, j int) bool {
		ti, tj := tier(matches[i]), tier(matches[j])
		if ti != tj {
			return ti < tj
		}
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Occupation.WageOrZero() > matches[j].Occupation.WageOrZero()
	})
}

// ScoreAll runs one strategy over every candidate, ranks, and truncates.
// An empty result is a valid outcome, not an error: for ExactOverlap it is
// the signal to fall back to FuzzyBlend.
func ScoreAll(inputSkills []string, cands []Candidate, s ScoringStrategy, t Tunables, limit int) []Match {
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]Match, 0, len(cands))
	for _, c := range cands {
		if m, ok := s.Score(inputSkills, c); ok {
			out = append(out, m)
		}
	}

	Rank(out, t)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
