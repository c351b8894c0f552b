package gap

import "testing"

func TestQuickWins_ShortestDurationFirst(t *testing.T) {
	analysis := Analysis{Recommendations: []Recommendation{
		{SkillGap: "cybersecurity", EstimatedTime: "3-6 months"},
		{SkillGap: "forklift operation", EstimatedTime: "1-2 weeks"},
		{SkillGap: "data analysis", EstimatedTime: "2-3 months"},
		{SkillGap: "cdl", EstimatedTime: "4-8 weeks"},
	}}

	got := QuickWins(analysis, 0)

	if len(got) != DefaultQuickWins {
		t.Fatalf("len = %d, want %d", len(got), DefaultQuickWins)
	}
	want := []string{"forklift operation", "cdl", "data analysis"}
	for i, w := range want {
		if got[i].SkillGap != w {
			t.Fatalf("got[%d] = %q, want %q", i, got[i].SkillGap, w)
		}
	}
}

func TestQuickWins_StableForEqualDurations(t *testing.T) {
	analysis := Analysis{Recommendations: []Recommendation{
		{SkillGap: "lean manufacturing", EstimatedTime: "2-3 months"},
		{SkillGap: "quality control", EstimatedTime: "2-3 months"},
		{SkillGap: "supply chain", EstimatedTime: "2-3 months"},
	}}

	got := QuickWins(analysis, 3)

	want := []string{"lean manufacturing", "quality control", "supply chain"}
	for i, w := range want {
		if got[i].SkillGap != w {
			t.Fatalf("got[%d] = %q, want %q (importance order must survive)", i, got[i].SkillGap, w)
		}
	}
}

func TestQuickWins_DoesNotMutateAnalysis(t *testing.T) {
	analysis := Analysis{Recommendations: []Recommendation{
		{SkillGap: "slow", EstimatedTime: "6 months"},
		{SkillGap: "fast", EstimatedTime: "2 weeks"},
	}}

	QuickWins(analysis, 2)

	if analysis.Recommendations[0].SkillGap != "slow" {
		t.Fatal("QuickWins reordered the caller's recommendations")
	}
}

func TestDurationBucket_Ordering(t *testing.T) {
	ordered := []string{"2 weeks", "1-2 months", "2-3 months", "3-6 months", "6 months", "Varies"}
	for i := 1; i < len(ordered); i++ {
		if durationBucket(ordered[i-1]) >= durationBucket(ordered[i]) {
			t.Errorf("durationBucket(%q) = %d not below durationBucket(%q) = %d",
				ordered[i-1], durationBucket(ordered[i-1]), ordered[i], durationBucket(ordered[i]))
		}
	}
}
