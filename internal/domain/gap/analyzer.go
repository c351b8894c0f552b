package gap

import (
	"strings"

	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

// Recommendation is a training path that closes one skill gap.
type Recommendation struct {
	SkillGap      string
	Certification string
	EstimatedTime string
	Cost          string
	Provider      string
	VAEligible    bool
}

// Analysis is the per-request gap report. The Development* fields are only
// populated when the AI collaborator augments the analysis.
type Analysis struct {
	Gaps                 []string
	Recommendations      []Recommendation
	MatchPercentage      float64
	EstimatedTimeToReady string

	DevelopmentSummary  string
	DevelopmentSteps    []string
	ResourceSuggestions []string
}

// ResourceLookup resolves a catalog training resource by skill name
// (case-insensitive). ok is false when the catalog has none.
type ResourceLookup func(skillName string) (occupation.TrainingResource, bool)

// Tunables holds the estimator constants that are product decisions.
type Tunables struct {
	// ParallelFactor discounts summed training durations because multiple
	// certifications can usually be pursued concurrently.
	ParallelFactor float64

	// TopRecommendations bounds how many gaps feed the time estimate.
	TopRecommendations int
}

func DefaultTunables() Tunables {
	return Tunables{
		ParallelFactor:     0.6,
		TopRecommendations: 3,
	}
}

// Analyzer computes gap reports against a read-only catalog snapshot. The
// default-training table is injected so tests can substitute fixtures.
type Analyzer struct {
	defaults map[string]Recommendation
	tunables Tunables
}

func NewAnalyzer(defaults map[string]Recommendation, t Tunables) *Analyzer {
	if defaults == nil {
		defaults = map[string]Recommendation{}
	}
	if t.ParallelFactor <= 0 {
		t.ParallelFactor = DefaultTunables().ParallelFactor
	}
	if t.TopRecommendations <= 0 {
		t.TopRecommendations = DefaultTunables().TopRecommendations
	}
	return &Analyzer{defaults: defaults, tunables: t}
}

// Analyze compares known skills against the target occupation's required
// skills, in catalog order. An empty required list yields the degenerate
// analysis; callers distinguish "unknown occupation" upstream.
func (a *Analyzer) Analyze(knownSkills, requiredSkills []string, lookup ResourceLookup) Analysis {
	required := matching.NormalizeSet(requiredSkills)
	if len(required) == 0 {
		return Analysis{
			Gaps:                 []string{},
			Recommendations:      []Recommendation{},
			MatchPercentage:      0,
			EstimatedTimeToReady: "Unable to determine",
		}
	}

	known := make(map[string]struct{})
	for _, s := range matching.NormalizeSet(knownSkills) {
		known[s] = struct{}{}
	}

	matchingCount := 0
	missing := make([]string, 0, len(required))
	for _, r := range required {
		if _, ok := known[r]; ok {
			matchingCount++
		} else {
			missing = append(missing, r)
		}
	}

	matchPct := 0.0
	if len(required) > 0 {
		matchPct = float64(matchingCount) / float64(len(required)) * 100
	}

	// Iterating missing skills in required order already yields the
	// importance ordering the report needs.
	recs := make([]Recommendation, 0, len(missing))
	for _, skill := range missing {
		recs = append(recs, a.recommend(skill, lookup))
	}

	return Analysis{
		Gaps:                 missing,
		Recommendations:      recs,
		MatchPercentage:      round1(matchPct),
		EstimatedTimeToReady: a.timeToReady(recs, matchPct),
	}
}

// recommend resolves the training path for one missing skill: catalog
// resource first, then the injected defaults, then a synthesized generic
// recommendation. Every gap gets a recommendation.
func (a *Analyzer) recommend(skill string, lookup ResourceLookup) Recommendation {
	key := matching.Normalize(skill)

	if lookup != nil {
		if res, ok := lookup(key); ok {
			cert := res.Certification
			if cert == "" {
				cert = "Industry certification"
			}
			est := res.EstimatedTime
			if est == "" {
				est = "Varies"
			}
			cost := res.Cost
			if cost == "" {
				cost = "Varies"
			}
			return Recommendation{
				SkillGap:      skill,
				Certification: cert,
				EstimatedTime: est,
				Cost:          cost,
				Provider:      res.Provider,
				VAEligible:    res.VAEligible,
			}
		}
	}

	if def, ok := a.defaults[key]; ok {
		def.SkillGap = skill
		return def
	}

	return Recommendation{
		SkillGap:      skill,
		Certification: titleCase(skill) + " certification or training",
		EstimatedTime: "1-6 months",
		Cost:          "Varies - check VA benefits eligibility",
		Provider:      "Various training providers",
		VAEligible:    true,
	}
}

// timeToReady estimates how long closing the top gaps takes. Thresholds
// short-circuit the duration math; otherwise the top recommendations'
// durations are summed in months and discounted by the parallel factor.
func (a *Analyzer) timeToReady(recs []Recommendation, matchPct float64) string {
	if matchPct >= 90 {
		return "Job ready now"
	}
	if matchPct >= 75 {
		return "1-2 months with focused training"
	}
	if len(recs) == 0 {
		return "Unable to determine"
	}

	top := recs
	if len(top) > a.tunables.TopRecommendations {
		top = top[:a.tunables.TopRecommendations]
	}

	totalMonths := 0.0
	for _, rec := range top {
		totalMonths += monthsFromEstimate(rec.EstimatedTime)
	}

	adjusted := totalMonths * a.tunables.ParallelFactor
	switch {
	case adjusted <= 2:
		return "1-2 months"
	case adjusted <= 4:
		return "2-4 months"
	case adjusted <= 6:
		return "4-6 months"
	case adjusted <= 12:
		return "6-12 months"
	default:
		return "12+ months"
	}
}

func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(f)
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
