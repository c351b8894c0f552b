package gap

import "testing"

func analysisWith(matchPct float64, gaps ...string) Analysis {
	return Analysis{
		Gaps:                 gaps,
		MatchPercentage:      matchPct,
		EstimatedTimeToReady: "1-2 months",
	}
}

func TestReadiness_BonusAboveHalfCoverage(t *testing.T) {
	// 5 of 6 matched: base 83.3, bonus (5-3)*2 = 4 -> 87.3.
	report := Readiness(analysisWith(83.3, "supply chain"), 6, "Operations Manager")

	if report.ReadinessScore != 87.3 {
		t.Fatalf("ReadinessScore = %v, want 87.3", report.ReadinessScore)
	}
	if report.Level != LevelHighlyQualified {
		t.Fatalf("Level = %q, want %q", report.Level, LevelHighlyQualified)
	}
	if report.SkillsMatched != 5 || report.SkillsRequired != 6 || report.GapsCount != 1 {
		t.Fatalf("counts wrong: %+v", report)
	}
	if report.OccupationTitle != "Operations Manager" {
		t.Fatalf("OccupationTitle = %q", report.OccupationTitle)
	}
}

func TestReadiness_BonusCappedAtTen(t *testing.T) {
	// 20 of 20 matched: bonus would be (20-10)*2 = 20, capped at 10.
	report := Readiness(analysisWith(95.0), 20, "Registered Nurse")

	if report.ReadinessScore != 100 {
		t.Fatalf("ReadinessScore = %v, want 100 (95 + capped 10, clamped)", report.ReadinessScore)
	}
}

func TestReadiness_NoBonusAtHalfOrBelow(t *testing.T) {
	// 3 of 6 matched is exactly half; no bonus applies.
	report := Readiness(analysisWith(50.0, "a", "b", "c"), 6, "Electrician")

	if report.ReadinessScore != 50.0 {
		t.Fatalf("ReadinessScore = %v, want 50.0", report.ReadinessScore)
	}
	if report.Level != LevelPartiallyQualified {
		t.Fatalf("Level = %q, want %q", report.Level, LevelPartiallyQualified)
	}
}

func TestReadiness_LevelBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{85.0, LevelHighlyQualified},
		{84.9, LevelQualified},
		{70.0, LevelQualified},
		{69.9, LevelPartiallyQualified},
		{50.0, LevelPartiallyQualified},
		{49.9, LevelDevelopmentNeeded},
	}
	for _, tc := range cases {
		level, _ := readinessLevel(tc.score)
		if level != tc.want {
			t.Errorf("readinessLevel(%v) = %q, want %q", tc.score, level, tc.want)
		}
	}
}

func TestReadiness_MoreGapsThanRequiredClampsMatched(t *testing.T) {
	report := Readiness(analysisWith(0, "a", "b", "c"), 2, "Welder")

	if report.SkillsMatched != 0 {
		t.Fatalf("SkillsMatched = %d, want 0", report.SkillsMatched)
	}
	if report.Level != LevelDevelopmentNeeded {
		t.Fatalf("Level = %q", report.Level)
	}
}
