package matching

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Team Leadership  ", "team leadership"},
		{"CYBERSECURITY", "cybersecurity"},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeSet_DedupesKeepingFirst(t *testing.T) {
	got := NormalizeSet([]string{"Leadership", "  leadership ", "", "LOGISTICS", "leadership"})
	want := []string{"leadership", "logistics"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeSet = %v, want %v", got, want)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("C++ / systems-engineering (v2)")
	// "c" is below the minimum token length; "v2" too.
	want := []string{"systems", "engineering"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}

	if toks := Tokenize("   "); toks != nil {
		t.Fatalf("expected nil tokens for blank input, got %v", toks)
	}
}

func TestTokenSet_CapsAtMaxTokens(t *testing.T) {
	skills := make([]string, 0, MaxTokens+5)
	for i := 0; i < MaxTokens+5; i++ {
		skills = append(skills, "skill"+string(rune('a'+i)))
	}
	got := TokenSet(skills)
	if len(got) != MaxTokens {
		t.Fatalf("expected %d tokens, got %d", MaxTokens, len(got))
	}
}

func TestTokenSet_DedupesAcrossSkills(t *testing.T) {
	got := TokenSet([]string{"network security", "network administration"})
	want := []string{"network", "security", "administration"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TokenSet = %v, want %v", got, want)
	}
}
