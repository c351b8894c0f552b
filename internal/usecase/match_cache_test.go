package usecase

import (
	"strings"
	"testing"
)

func TestMatchCacheKey_Deterministic(t *testing.T) {
	prefs := &Preferences{MinSalary: intPtr(60000), Industries: []string{"technology"}}

	a := MatchCacheKey([]string{"cybersecurity", "leadership"}, prefs, 10)
	b := MatchCacheKey([]string{"cybersecurity", "leadership"}, prefs, 10)

	if a != b {
		t.Fatalf("same input produced different keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "match:") {
		t.Fatalf("key %q missing match: prefix", a)
	}
}

func TestMatchCacheKey_DifferentiatesInputs(t *testing.T) {
	base := MatchCacheKey([]string{"cybersecurity"}, nil, 10)

	variants := []string{
		MatchCacheKey([]string{"leadership"}, nil, 10),
		MatchCacheKey([]string{"cybersecurity"}, nil, 5),
		MatchCacheKey([]string{"cybersecurity"}, &Preferences{MinSalary: intPtr(50000)}, 10),
		MatchCacheKey([]string{"cybersecurity"}, &Preferences{Industries: []string{"energy"}}, 10),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base key", i)
		}
	}
}

func TestMatchCacheKey_NilPrefsMatchesEmptyPrefs(t *testing.T) {
	a := MatchCacheKey([]string{"welding"}, nil, 10)
	b := MatchCacheKey([]string{"welding"}, &Preferences{}, 10)

	if a != b {
		t.Fatalf("nil and empty preferences should share a key: %q vs %q", a, b)
	}
}
