package matching

import "strings"

// MaxTokens bounds the combined token set handed to the fuzzy matcher so a
// pathological input cannot explode the candidate query.
const MaxTokens = 20

const minTokenLen = 3

// Normalize lower-cases and trims a skill string. Blank input normalizes to
// the empty string; callers filter empties before matching.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSet normalizes every skill, drops empties, and de-duplicates
// keeping the first occurrence in input order.
func NormalizeSet(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := Normalize(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Tokenize splits a skill on runs of non-alphanumeric characters and keeps
// tokens of at least three characters, in order.
func Tokenize(skill string) []string {
	s := Normalize(skill)
	if s == "" {
		return nil
	}

	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() >= minTokenLen {
			tokens = append(tokens, b.String())
		}
		b.Reset()
	}
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// TokenSet tokenizes all skills into one de-duplicated, order-preserving
// token list capped at MaxTokens.
func TokenSet(skills []string) []string {
	out := make([]string, 0, MaxTokens)
	seen := make(map[string]struct{})
	for _, skill := range skills {
		for _, tok := range Tokenize(skill) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
			if len(out) >= MaxTokens {
				return out
			}
		}
	}
	return out
}
