package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/domain/profile"
	"github.com/aravhawk/vetpath/internal/repository"
)

// Preferences filter scored matches before truncation.
type Preferences struct {
	MinSalary  *int
	Industries []string
}

type MatchUsecase interface {
	Match(ctx context.Context, skills []string, prefs *Preferences, limit int) ([]matching.Match, error)
	MatchFromProfile(ctx context.Context, parsed profile.ParsedSkills, prefs *Preferences, limit int) ([]matching.Match, error)
	MatchFromMOS(ctx context.Context, mosCode, branch string, additionalSkills []string, limit int) ([]matching.Match, error)
}

type Matcher struct {
	occupations repository.OccupationRepository
	skills      repository.OccupationSkillRepository
	crosswalk   repository.CrosswalkRepository
	cache       MatchCache
	tunables    matching.Tunables
	logger      *log.Logger
}

func NewMatchUsecase(
	occupations repository.OccupationRepository,
	skills repository.OccupationSkillRepository,
	crosswalk repository.CrosswalkRepository,
	cache MatchCache,
	tunables matching.Tunables,
	logger *log.Logger,
) *Matcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Matcher{
		occupations: occupations,
		skills:      skills,
		crosswalk:   crosswalk,
		cache:       cache,
		tunables:    tunables,
		logger:      logger,
	}
}

// Match runs the two-tier search: exact set-membership scoring first, token
// fallback only when exact yields nothing. Empty input yields an empty
// ranked list, not an error.
func (u *Matcher) Match(ctx context.Context, skills []string, prefs *Preferences, limit int) ([]matching.Match, error) {
	if limit <= 0 {
		limit = matching.DefaultLimit
	}

	normalized := matching.NormalizeSet(skills)
	if len(normalized) == 0 {
		return []matching.Match{}, nil
	}

	key := MatchCacheKey(normalized, prefs, limit)
	if u.cache != nil {
		var cached []matching.Match
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	ranked, err := u.exactMatches(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if len(ranked) == 0 {
		ranked, err = u.fuzzyMatches(ctx, normalized)
		if err != nil {
			return nil, err
		}
	}

	out := applyPreferences(ranked, prefs)
	if len(out) > limit {
		out = out[:limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, matchCacheTTL); err != nil {
			u.logger.Printf("[Match] cache write skipped: %v", err)
		}
	}
	return out, nil
}

func (u *Matcher) exactMatches(ctx context.Context, normalized []string) ([]matching.Match, error) {
	cands, err := u.skills.FindCandidatesBySkills(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return matching.ScoreAll(normalized, cands, matching.ExactOverlap{}, u.tunables, len(cands)), nil
}

func (u *Matcher) fuzzyMatches(ctx context.Context, normalized []string) ([]matching.Match, error) {
	tokens := matching.TokenSet(normalized)
	if len(tokens) == 0 {
		return []matching.Match{}, nil
	}
	cands, err := u.skills.FindCandidatesByTokens(ctx, tokens)
	if err != nil {
		return nil, err
	}
	strategy := matching.FuzzyBlend{Tokens: tokens, Tunables: u.tunables}
	return matching.ScoreAll(normalized, cands, strategy, u.tunables, len(cands)), nil
}

// MatchFromProfile flattens a parsed skill profile (with leadership and
// clearance augmentation) and matches the combined set.
func (u *Matcher) MatchFromProfile(ctx context.Context, parsed profile.ParsedSkills, prefs *Preferences, limit int) ([]matching.Match, error) {
	return u.Match(ctx, parsed.FlattenSkills(), prefs, limit)
}

// MatchFromMOS translates crosswalk strength ordinals to scores
// (strength * 20, capped at 100), merges in skill-based matches for any
// additional skills without duplicating occupation codes, then sorts the
// combined list by score desc, wage desc before truncating.
func (u *Matcher) MatchFromMOS(ctx context.Context, mosCode, branch string, additionalSkills []string, limit int) ([]matching.Match, error) {
	if limit <= 0 {
		limit = matching.DefaultLimit
	}

	rows, err := u.crosswalk.FindByMOS(ctx, mosCode, branch)
	if err != nil {
		return nil, err
	}

	out := make([]matching.Match, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.OccupationCode]; dup {
			continue
		}
		seen[row.OccupationCode] = struct{}{}

		occ, found, err := u.occupations.GetByCode(ctx, row.OccupationCode)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		reqs, err := u.skills.FindByOccupationCode(ctx, occ.Code)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(reqs))
		for _, req := range reqs {
			names = append(names, req.SkillName)
		}

		score := float64(row.MatchStrength * 20)
		if score > 100 {
			score = 100
		}
		out = append(out, matching.Match{
			Occupation:     occ,
			Score:          score,
			RequiredSkills: names,
		})
	}

	if len(additionalSkills) > 0 {
		extra, err := u.Match(ctx, additionalSkills, nil, limit)
		if err != nil {
			return nil, err
		}
		for _, m := range extra {
			if _, dup := seen[m.Occupation.Code]; dup {
				continue
			}
			seen[m.Occupation.Code] = struct{}{}
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Occupation.WageOrZero() > out[j].Occupation.WageOrZero()
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func applyPreferences(matches []matching.Match, prefs *Preferences) []matching.Match {
	if prefs == nil {
		return matches
	}

	industries := make(map[string]struct{}, len(prefs.Industries))
	for _, ind := range prefs.Industries {
		industries[matching.Normalize(ind)] = struct{}{}
	}

	out := make([]matching.Match, 0, len(matches))
	for _, m := range matches {
		if prefs.MinSalary != nil && m.Occupation.WageOrZero() < *prefs.MinSalary {
			continue
		}
		if len(industries) > 0 {
			if _, ok := industries[matching.Normalize(m.Occupation.Industry)]; !ok {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
