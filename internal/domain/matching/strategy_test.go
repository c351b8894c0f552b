package matching

import (
	"testing"

	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

func cand(title, industry string, wage int, skills ...string) Candidate {
	w := wage
	return Candidate{
		Occupation: occupation.Occupation{
			Code:       title,
			Title:      title,
			Industry:   industry,
			MedianWage: &w,
		},
		RequiredSkills: skills,
	}
}

func TestExactOverlap_CoverageRatio(t *testing.T) {
	c := cand("Operations Manager", "management", 97970,
		"team leadership", "operations management", "process improvement", "budgeting",
		"scheduling", "quality control", "communication", "problem solving")

	m, ok := ExactOverlap{}.Score([]string{"team leadership", "communication", "problem solving"}, c)
	if !ok {
		t.Fatalf("expected candidate to qualify")
	}
	if m.Score != 37.5 {
		t.Fatalf("score = %v, want 37.5", m.Score)
	}
	if m.MatchingSkills != 3 {
		t.Fatalf("matching skills = %d, want 3", m.MatchingSkills)
	}
}

func TestExactOverlap_NoRequiredSkills(t *testing.T) {
	if _, ok := (ExactOverlap{}).Score([]string{"anything"}, cand("Empty", "management", 0)); ok {
		t.Fatalf("candidate without required skills must not qualify")
	}
}

func TestExactOverlap_NoOverlap(t *testing.T) {
	c := cand("Electrician", "construction", 60240, "electrical systems")
	if _, ok := (ExactOverlap{}).Score([]string{"cooking"}, c); ok {
		t.Fatalf("zero-overlap candidate must not qualify")
	}
}

func TestExactOverlap_DeduplicatesRequired(t *testing.T) {
	c := cand("Dup", "management", 0, "budgeting", "Budgeting", "scheduling")
	m, ok := ExactOverlap{}.Score([]string{"budgeting"}, c)
	if !ok {
		t.Fatalf("expected qualification")
	}
	// 1 of 2 distinct required skills.
	if m.Score != 50.0 {
		t.Fatalf("score = %v, want 50.0", m.Score)
	}
}

func TestFuzzyBlend_TextScoreCapped(t *testing.T) {
	c := cand("Logistics Analyst", "logistics", 77520, "supply chain")
	f := FuzzyBlend{
		Tokens:   []string{"logistics"},
		Tunables: DefaultTunables(),
	}

	m, ok := f.Score([]string{"logistics coordination"}, c)
	if !ok {
		t.Fatalf("expected title token hit to qualify")
	}
	// 1/1 token hits capped at 0.25 -> 25.0.
	if m.Score != 25.0 {
		t.Fatalf("score = %v, want 25.0", m.Score)
	}
}

func TestFuzzyBlend_OverlapBeatsTextScore(t *testing.T) {
	c := cand("Logistics Analyst", "logistics", 77520, "supply chain", "data analysis")
	f := FuzzyBlend{
		Tokens:   []string{"supply", "chain"},
		Tunables: DefaultTunables(),
	}

	m, ok := f.Score([]string{"supply chain"}, c)
	if !ok {
		t.Fatalf("expected skill token hit to qualify")
	}
	// Skill-channel ratio 1/2 = 0.5 beats the capped text score.
	if m.Score != 50.0 {
		t.Fatalf("score = %v, want 50.0", m.Score)
	}
}

func TestFuzzyBlend_SkillNameSubstringScores(t *testing.T) {
	c := cand("Electrician", "construction", 60240, "electrical systems")
	f := FuzzyBlend{
		Tokens:   []string{"electrical", "work"},
		Tunables: DefaultTunables(),
	}

	m, ok := f.Score([]string{"electrical work"}, c)
	if !ok {
		t.Fatalf("skill-name substring hit must qualify")
	}
	// "electrical" hits the only required skill: 1/1 ratio.
	if m.Score != 100.0 {
		t.Fatalf("score = %v, want 100.0", m.Score)
	}
	if m.MatchingSkills != 1 {
		t.Fatalf("matching skills = %d, want 1", m.MatchingSkills)
	}
}

func TestFuzzyBlend_SkillRatioOverDistinctRequired(t *testing.T) {
	c := cand("Facilities Technician", "construction", 52000,
		"electrical systems", "hvac", "plumbing", "plumbing")
	f := FuzzyBlend{
		Tokens:   []string{"electrical"},
		Tunables: DefaultTunables(),
	}

	m, ok := f.Score([]string{"electrical work"}, c)
	if !ok {
		t.Fatalf("expected qualification")
	}
	// 1 hit of 3 distinct required skills.
	if m.Score != 33.3 {
		t.Fatalf("score = %v, want 33.3", m.Score)
	}
}

func TestFuzzyBlend_NoTokens(t *testing.T) {
	c := cand("Anything", "management", 0, "skill")
	f := FuzzyBlend{Tunables: DefaultTunables()}
	if _, ok := f.Score([]string{"skill"}, c); ok {
		t.Fatalf("empty token set must not qualify anything")
	}
}

func TestFuzzyBlend_NoHits(t *testing.T) {
	c := cand("Electrician", "construction", 60240, "electrical systems")
	f := FuzzyBlend{Tokens: []string{"cooking"}, Tunables: DefaultTunables()}
	if _, ok := f.Score([]string{"cooking"}, c); ok {
		t.Fatalf("candidate without token hits must not qualify")
	}
}
