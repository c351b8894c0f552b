package gap

import (
	"testing"

	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

func catalogLookup(resources map[string]occupation.TrainingResource) ResourceLookup {
	return func(skillName string) (occupation.TrainingResource, bool) {
		res, ok := resources[skillName]
		return res, ok
	}
}

func TestAnalyze_MatchPercentageAndGaps(t *testing.T) {
	a := NewAnalyzer(nil, DefaultTunables())

	known := []string{"Project Management", "leadership"}
	required := []string{"project management", "data analysis", "leadership", "lean manufacturing", "quality control", "supply chain"}

	got := a.Analyze(known, required, nil)

	if got.MatchPercentage != 33.3 {
		t.Fatalf("MatchPercentage = %v, want 33.3", got.MatchPercentage)
	}
	wantGaps := []string{"data analysis", "lean manufacturing", "quality control", "supply chain"}
	if len(got.Gaps) != len(wantGaps) {
		t.Fatalf("Gaps = %v, want %v", got.Gaps, wantGaps)
	}
	for i, g := range wantGaps {
		if got.Gaps[i] != g {
			t.Fatalf("Gaps[%d] = %q, want %q", i, got.Gaps[i], g)
		}
	}
	if len(got.Recommendations) != len(wantGaps) {
		t.Fatalf("Recommendations count = %d, want %d", len(got.Recommendations), len(wantGaps))
	}
}

func TestAnalyze_NoRequiredSkills(t *testing.T) {
	a := NewAnalyzer(nil, DefaultTunables())

	got := a.Analyze([]string{"leadership"}, nil, nil)

	if got.MatchPercentage != 0 {
		t.Fatalf("MatchPercentage = %v, want 0", got.MatchPercentage)
	}
	if got.EstimatedTimeToReady != "Unable to determine" {
		t.Fatalf("EstimatedTimeToReady = %q", got.EstimatedTimeToReady)
	}
	if got.Gaps == nil || len(got.Gaps) != 0 {
		t.Fatalf("Gaps = %v, want empty non-nil slice", got.Gaps)
	}
}

func TestAnalyze_DuplicateRequiredCountedOnce(t *testing.T) {
	a := NewAnalyzer(nil, DefaultTunables())

	got := a.Analyze([]string{"welding"}, []string{"Welding", "welding", "blueprint reading"}, nil)

	if got.MatchPercentage != 50.0 {
		t.Fatalf("MatchPercentage = %v, want 50.0", got.MatchPercentage)
	}
	if len(got.Gaps) != 1 || got.Gaps[0] != "blueprint reading" {
		t.Fatalf("Gaps = %v, want [blueprint reading]", got.Gaps)
	}
}

func TestRecommend_CatalogBeatsDefaults(t *testing.T) {
	defaults := map[string]Recommendation{
		"cybersecurity": {Certification: "CompTIA Security+", EstimatedTime: "2-3 months", Cost: "$392", VAEligible: true},
	}
	a := NewAnalyzer(defaults, DefaultTunables())

	resources := map[string]occupation.TrainingResource{
		"cybersecurity": {
			SkillName:     "cybersecurity",
			Certification: "CISSP Associate",
			Provider:      "ISC2",
			EstimatedTime: "4-6 months",
			Cost:          "$749",
			VAEligible:    true,
		},
	}

	got := a.Analyze(nil, []string{"cybersecurity"}, catalogLookup(resources))

	if len(got.Recommendations) != 1 {
		t.Fatalf("Recommendations = %v", got.Recommendations)
	}
	rec := got.Recommendations[0]
	if rec.Certification != "CISSP Associate" || rec.Provider != "ISC2" {
		t.Fatalf("catalog resource not used: %+v", rec)
	}
	if rec.SkillGap != "cybersecurity" {
		t.Fatalf("SkillGap = %q", rec.SkillGap)
	}
}

func TestRecommend_DefaultsWhenCatalogMisses(t *testing.T) {
	defaults := map[string]Recommendation{
		"cdl": {Certification: "Commercial Driver's License", EstimatedTime: "4-8 weeks", Cost: "$3000-7000", VAEligible: true},
	}
	a := NewAnalyzer(defaults, DefaultTunables())

	got := a.Analyze(nil, []string{"CDL"}, catalogLookup(nil))

	rec := got.Recommendations[0]
	if rec.Certification != "Commercial Driver's License" {
		t.Fatalf("Certification = %q, want defaults entry", rec.Certification)
	}
	if rec.SkillGap != "cdl" {
		t.Fatalf("SkillGap = %q, want normalized gap name", rec.SkillGap)
	}
}

func TestRecommend_GenericFallback(t *testing.T) {
	a := NewAnalyzer(nil, DefaultTunables())

	got := a.Analyze(nil, []string{"underwater basket weaving"}, nil)

	rec := got.Recommendations[0]
	if rec.Certification != "Underwater Basket Weaving certification or training" {
		t.Fatalf("Certification = %q", rec.Certification)
	}
	if rec.Cost != "Varies - check VA benefits eligibility" {
		t.Fatalf("Cost = %q", rec.Cost)
	}
	if !rec.VAEligible {
		t.Fatal("generic recommendation should be VA eligible")
	}
}

func TestRecommend_BlankCatalogFieldsGetPlaceholders(t *testing.T) {
	a := NewAnalyzer(nil, DefaultTunables())

	resources := map[string]occupation.TrainingResource{
		"hvac": {SkillName: "hvac"},
	}

	got := a.Analyze(nil, []string{"hvac"}, catalogLookup(resources))

	rec := got.Recommendations[0]
	if rec.Certification != "Industry certification" {
		t.Fatalf("Certification = %q", rec.Certification)
	}
	if rec.EstimatedTime != "Varies" || rec.Cost != "Varies" {
		t.Fatalf("placeholders missing: %+v", rec)
	}
}

func TestTimeToReady_Thresholds(t *testing.T) {
	a := NewAnalyzer(nil, DefaultTunables())

	if got := a.timeToReady(nil, 92); got != "Job ready now" {
		t.Fatalf("at 92%% got %q", got)
	}
	if got := a.timeToReady(nil, 80); got != "1-2 months with focused training" {
		t.Fatalf("at 80%% got %q", got)
	}
	if got := a.timeToReady(nil, 40); got != "Unable to determine" {
		t.Fatalf("no recommendations got %q", got)
	}
}

func TestTimeToReady_SumsTopRecommendations(t *testing.T) {
	a := NewAnalyzer(nil, DefaultTunables())

	// 3 + 3 + 6 months, discounted by 0.6 = 7.2 -> "6-12 months". The
	// fourth recommendation is outside the top three and must not count.
	recs := []Recommendation{
		{EstimatedTime: "3-6 months"},
		{EstimatedTime: "3 months"},
		{EstimatedTime: "6 months"},
		{EstimatedTime: "2 years"},
	}

	if got := a.timeToReady(recs, 40); got != "6-12 months" {
		t.Fatalf("timeToReady = %q, want 6-12 months", got)
	}
}

func TestTimeToReady_WeeksDiscountToShortBucket(t *testing.T) {
	a := NewAnalyzer(nil, DefaultTunables())

	// 4 weeks reads as one month; 1 * 0.6 = 0.6 -> "1-2 months".
	recs := []Recommendation{{EstimatedTime: "4-8 weeks"}}

	if got := a.timeToReady(recs, 40); got != "1-2 months" {
		t.Fatalf("timeToReady = %q, want 1-2 months", got)
	}
}

func TestMonthsFromEstimate(t *testing.T) {
	cases := []struct {
		estimate string
		want     float64
	}{
		{"4-8 weeks", 1},
		{"3-6 months", 3},
		{"1 year", 12},
		{"Varies", 3},
		{"", 3},
	}
	for _, tc := range cases {
		if got := monthsFromEstimate(tc.estimate); got != tc.want {
			t.Errorf("monthsFromEstimate(%q) = %v, want %v", tc.estimate, got, tc.want)
		}
	}
}
