package matching

import (
	"testing"
)

func match(code, industry string, score float64, wage int) Match {
	w := wage
	m := Match{Score: score}
	m.Occupation.Code = code
	m.Occupation.Industry = industry
	m.Occupation.MedianWage = &w
	return m
}

func TestRank_PreferredIndustriesFirst(t *testing.T) {
	matches := []Match{
		match("mgmt", "management", 90.0, 100000),
		match("mfg", "manufacturing", 40.0, 45000),
	}
	Rank(matches, DefaultTunables())

	if matches[0].Occupation.Code != "mfg" {
		t.Fatalf("expected preferred industry first, got %s", matches[0].Occupation.Code)
	}
}

func TestRank_ScoreThenWage(t *testing.T) {
	matches := []Match{
		match("low-wage", "technology", 50.0, 40000),
		match("high-score", "technology", 80.0, 30000),
		match("high-wage", "technology", 50.0, 90000),
	}
	Rank(matches, DefaultTunables())

	want := []string{"high-score", "high-wage", "low-wage"}
	for i, code := range want {
		if matches[i].Occupation.Code != code {
			t.Fatalf("position %d = %s, want %s", i, matches[i].Occupation.Code, code)
		}
	}
}

func TestRank_NilWageSortsLast(t *testing.T) {
	known := match("known", "technology", 50.0, 40000)
	unknown := Match{Score: 50.0}
	unknown.Occupation.Code = "unknown"
	unknown.Occupation.Industry = "technology"

	matches := []Match{unknown, known}
	Rank(matches, DefaultTunables())

	if matches[0].Occupation.Code != "known" {
		t.Fatalf("expected known wage first, got %s", matches[0].Occupation.Code)
	}
}

func TestScoreAll_TruncatesToLimit(t *testing.T) {
	cands := []Candidate{
		cand("a", "technology", 1, "go"),
		cand("b", "technology", 2, "go"),
		cand("c", "technology", 3, "go"),
	}
	got := ScoreAll([]string{"go"}, cands, ExactOverlap{}, DefaultTunables(), 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	// Equal scores: wage breaks the tie.
	if got[0].Occupation.Code != "c" {
		t.Fatalf("expected highest wage first, got %s", got[0].Occupation.Code)
	}
}

func TestScoreAll_EmptyResultIsValid(t *testing.T) {
	cands := []Candidate{cand("a", "technology", 1, "go")}
	got := ScoreAll([]string{"cooking"}, cands, ExactOverlap{}, DefaultTunables(), 10)
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
