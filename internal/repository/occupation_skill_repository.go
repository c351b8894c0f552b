package repository

import (
	"context"
	"strings"

	"github.com/aravhawk/vetpath/internal/database"
	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

// OccupationSkillRepository selects candidate occupations for the matchers.
// It never scores: candidates come back with their full required-skill
// lists and the scoring strategies do the math in memory.
type OccupationSkillRepository interface {
	FindByOccupationCode(ctx context.Context, code string) ([]occupation.SkillRequirement, error)
	FindCandidatesBySkills(ctx context.Context, skills []string) ([]matching.Candidate, error)
	FindCandidatesByTokens(ctx context.Context, tokens []string) ([]matching.Candidate, error)
}

type PostgresOccupationSkillRepository struct {
	db database.DB
}

func NewPostgresOccupationSkillRepository(db database.DB) *PostgresOccupationSkillRepository {
	return &PostgresOccupationSkillRepository{db: db}
}

func (r *PostgresOccupationSkillRepository) FindByOccupationCode(ctx context.Context, code string) ([]occupation.SkillRequirement, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return []occupation.SkillRequirement{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT occupation_code, skill_name, importance_level
		 FROM occupation_skills
		 WHERE occupation_code = $1
		 ORDER BY importance_level DESC, skill_name ASC`,
		code,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]occupation.SkillRequirement, 0)
	for rows.Next() {
		var req occupation.SkillRequirement
		if err := rows.Scan(&req.OccupationCode, &req.SkillName, &req.Importance); err != nil {
			return nil, err
		}
		req.Importance = occupation.ClampImportance(req.Importance)
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindCandidatesBySkills returns every occupation sharing at least one
// skill (case-insensitive) with the input set.
func (r *PostgresOccupationSkillRepository) FindCandidatesBySkills(ctx context.Context, skills []string) ([]matching.Candidate, error) {
	normalized := matching.NormalizeSet(skills)
	if len(normalized) == 0 {
		return []matching.Candidate{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT `+qualifiedOccupationColumns+`
		 FROM occupations o
		 JOIN occupation_skills os ON os.occupation_code = o.occupation_code
		 WHERE LOWER(os.skill_name) = ANY($1)`,
		normalized,
	)
	if err != nil {
		return nil, err
	}

	occs, err := collectOccupations(rows)
	if err != nil {
		return nil, err
	}
	return r.attachRequiredSkills(ctx, occs)
}

// FindCandidatesByTokens returns occupations where any token appears as a
// substring of a required-skill name, the title, or the description.
func (r *PostgresOccupationSkillRepository) FindCandidatesByTokens(ctx context.Context, tokens []string) ([]matching.Candidate, error) {
	if len(tokens) == 0 {
		return []matching.Candidate{}, nil
	}

	patterns := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(strings.ToLower(tok))
		if tok == "" {
			continue
		}
		patterns = append(patterns, "%"+tok+"%")
	}
	if len(patterns) == 0 {
		return []matching.Candidate{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT `+qualifiedOccupationColumns+`
		 FROM occupations o
		 WHERE o.occupation_title ILIKE ANY($1)
		    OR o.description ILIKE ANY($1)
		    OR EXISTS (
		        SELECT 1 FROM occupation_skills os
		        WHERE os.occupation_code = o.occupation_code
		          AND os.skill_name ILIKE ANY($1)
		    )`,
		patterns,
	)
	if err != nil {
		return nil, err
	}

	occs, err := collectOccupations(rows)
	if err != nil {
		return nil, err
	}
	return r.attachRequiredSkills(ctx, occs)
}

const qualifiedOccupationColumns = `o.occupation_code, o.occupation_title, COALESCE(o.description, ''), o.median_wage,
	COALESCE(o.job_outlook, ''), o.growth_rate, COALESCE(o.industry, ''), COALESCE(o.education_required, '')`

func collectOccupations(rows database.Rows) ([]occupation.Occupation, error) {
	defer rows.Close()

	out := make([]occupation.Occupation, 0)
	for rows.Next() {
		occ, err := scanOccupation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOccupationSkillRepository) attachRequiredSkills(ctx context.Context, occs []occupation.Occupation) ([]matching.Candidate, error) {
	if len(occs) == 0 {
		return []matching.Candidate{}, nil
	}

	codes := make([]string, 0, len(occs))
	for _, occ := range occs {
		codes = append(codes, occ.Code)
	}

	rows, err := r.db.Query(ctx,
		`SELECT occupation_code, skill_name
		 FROM occupation_skills
		 WHERE occupation_code = ANY($1)
		 ORDER BY importance_level DESC, skill_name ASC`,
		codes,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCode := make(map[string][]string, len(occs))
	for rows.Next() {
		var code, skill string
		if err := rows.Scan(&code, &skill); err != nil {
			return nil, err
		}
		byCode[code] = append(byCode[code], skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]matching.Candidate, 0, len(occs))
	for _, occ := range occs {
		out = append(out, matching.Candidate{
			Occupation:     occ,
			RequiredSkills: byCode[occ.Code],
		})
	}
	return out, nil
}
