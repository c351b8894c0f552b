package matching

import (
	"math"
	"strings"

	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

// Candidate is one occupation pre-selected by the catalog store, carrying
// its full required-skill list. All scoring happens here, not in SQL.
type Candidate struct {
	Occupation     occupation.Occupation
	RequiredSkills []string
}

// Match is a scored candidate. Score is 0..100 rounded to one decimal.
type Match struct {
	Occupation     occupation.Occupation
	Score          float64
	MatchingSkills int
	RequiredSkills []string
}

// Tunables carries the scoring constants that are product decisions rather
// than invariants. DefaultTunables preserves the original behavior.
type Tunables struct {
	// TextScoreCap bounds how much incidental title/description hits can
	// contribute in the fuzzy blend, versus a skill-overlap ratio that can
	// reach 1.0.
	TextScoreCap float64

	// PreferredIndustries sort ahead of all others regardless of wage.
	PreferredIndustries map[string]struct{}
}

func DefaultTunables() Tunables {
	return Tunables{
		TextScoreCap: 0.25,
		PreferredIndustries: map[string]struct{}{
			"manufacturing": {},
			"construction":  {},
			"technology":    {},
			"logistics":     {},
			"energy":        {},
		},
	}
}

// ScoringStrategy scores one candidate against a normalized input skill
// set. ok is false when the candidate does not qualify under the strategy
// (e.g. zero required skills, no token hit).
type ScoringStrategy interface {
	Score(inputSkills []string, c Candidate) (m Match, ok bool)
}

// ExactOverlap scores by skill-set coverage: |input ∩ required| / |required|.
// Occupations with no required skills never qualify (the ratio is undefined).
type ExactOverlap struct{}

func (ExactOverlap) Score(inputSkills []string, c Candidate) (Match, bool) {
	matching, total := overlap(inputSkills, c.RequiredSkills)
	if total == 0 || matching == 0 {
		return Match{}, false
	}
	ratio := float64(matching) / float64(total)
	return Match{
		Occupation:     c.Occupation,
		Score:          round1(ratio * 100),
		MatchingSkills: matching,
		RequiredSkills: c.RequiredSkills,
	}, true
}

// FuzzyBlend qualifies a candidate when any token appears as a substring of
// any required-skill name, the title, or the description. The skill-name
// channel scores as the ratio of token-hit required skills over the distinct
// required total; title and description hits score separately under the cap,
// so incidental text matches stay weighted below skill-name matches.
type FuzzyBlend struct {
	Tokens   []string
	Tunables Tunables
}

func (f FuzzyBlend) Score(_ []string, c Candidate) (Match, bool) {
	if len(f.Tokens) == 0 {
		return Match{}, false
	}

	title := Normalize(c.Occupation.Title)
	desc := Normalize(c.Occupation.Description)

	textHits := 0
	for _, tok := range f.Tokens {
		if contains(title, tok) || contains(desc, tok) {
			textHits++
		}
	}

	skillHits, total := 0, 0
	seen := make(map[string]struct{}, len(c.RequiredSkills))
	for _, r := range c.RequiredSkills {
		n := Normalize(r)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		total++
		for _, tok := range f.Tokens {
			if contains(n, tok) {
				skillHits++
				break
			}
		}
	}

	if skillHits == 0 && textHits == 0 {
		return Match{}, false
	}

	matchScore := 0.0
	if total > 0 {
		matchScore = float64(skillHits) / float64(total)
	}

	maxText := f.Tunables.TextScoreCap
	textScore := (float64(textHits) / float64(len(f.Tokens))) * maxText
	if textScore > maxText {
		textScore = maxText
	}

	final := matchScore
	if textScore > final {
		final = textScore
	}

	return Match{
		Occupation:     c.Occupation,
		Score:          round1(final * 100),
		MatchingSkills: skillHits,
		RequiredSkills: c.RequiredSkills,
	}, true
}

// overlap counts case-insensitive set intersection between the input skills
// and the candidate's required skills, de-duplicating required names.
func overlap(inputSkills, required []string) (matching, total int) {
	in := make(map[string]struct{}, len(inputSkills))
	for _, s := range inputSkills {
		in[Normalize(s)] = struct{}{}
	}
	delete(in, "")

	seen := make(map[string]struct{}, len(required))
	for _, r := range required {
		n := Normalize(r)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		total++
		if _, ok := in[n]; ok {
			matching++
		}
	}
	return matching, total
}

func contains(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(haystack, needle)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
