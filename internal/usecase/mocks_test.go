package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
	"github.com/aravhawk/vetpath/internal/repository"
)

type mockOccupationRepo struct {
	byCode map[string]occupation.Occupation
}

func (m *mockOccupationRepo) GetByCode(_ context.Context, code string) (occupation.Occupation, bool, error) {
	occ, ok := m.byCode[code]
	return occ, ok, nil
}

func (m *mockOccupationRepo) List(_ context.Context, industry string, limit int) ([]occupation.Occupation, error) {
	out := make([]occupation.Occupation, 0, len(m.byCode))
	for _, occ := range m.byCode {
		if industry != "" && !strings.EqualFold(occ.Industry, industry) {
			continue
		}
		out = append(out, occ)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *mockOccupationRepo) Industries(_ context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for _, occ := range m.byCode {
		if _, ok := seen[occ.Industry]; !ok {
			seen[occ.Industry] = struct{}{}
			out = append(out, occ.Industry)
		}
	}
	return out, nil
}

type mockSkillRepo struct {
	bySkills      []matching.Candidate
	byTokens      []matching.Candidate
	byOccupation  map[string][]occupation.SkillRequirement
	bySkillsCalls int
	byTokensCalls int
}

func (m *mockSkillRepo) FindByOccupationCode(_ context.Context, code string) ([]occupation.SkillRequirement, error) {
	return m.byOccupation[code], nil
}

func (m *mockSkillRepo) FindCandidatesBySkills(_ context.Context, _ []string) ([]matching.Candidate, error) {
	m.bySkillsCalls++
	return m.bySkills, nil
}

func (m *mockSkillRepo) FindCandidatesByTokens(_ context.Context, _ []string) ([]matching.Candidate, error) {
	m.byTokensCalls++
	return m.byTokens, nil
}

type mockCrosswalkRepo struct {
	rows []repository.CrosswalkRow
}

func (m *mockCrosswalkRepo) FindByMOS(_ context.Context, mosCode, branch string) ([]repository.CrosswalkRow, error) {
	var out []repository.CrosswalkRow
	for _, row := range m.rows {
		if !strings.EqualFold(row.MOSCode, mosCode) {
			continue
		}
		if branch != "" && !strings.EqualFold(row.Branch, branch) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *mockCrosswalkRepo) ListMOSCodes(_ context.Context, branch string) ([]repository.MOSCode, error) {
	var out []repository.MOSCode
	for _, row := range m.rows {
		if branch != "" && !strings.EqualFold(row.Branch, branch) {
			continue
		}
		out = append(out, repository.MOSCode{Code: row.MOSCode, MilitaryTitle: row.MilitaryTitle, Branch: row.Branch})
	}
	return out, nil
}

type mockTrainingRepo struct {
	bySkill map[string]occupation.TrainingResource
}

func (m *mockTrainingRepo) GetBySkillName(_ context.Context, skillName string) (occupation.TrainingResource, bool, error) {
	res, ok := m.bySkill[strings.ToLower(skillName)]
	return res, ok, nil
}

func (m *mockTrainingRepo) Upsert(_ context.Context, res occupation.TrainingResource) error {
	if m.bySkill == nil {
		m.bySkill = map[string]occupation.TrainingResource{}
	}
	m.bySkill[strings.ToLower(res.SkillName)] = res
	return nil
}

type mockCache struct {
	entries map[string][]byte
	gets    int
	sets    int
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func intPtr(n int) *int { return &n }

func candidate(code, title, industry string, wage int, skills ...string) matching.Candidate {
	return matching.Candidate{
		Occupation: occupation.Occupation{
			Code:       code,
			Title:      title,
			Industry:   industry,
			MedianWage: intPtr(wage),
		},
		RequiredSkills: skills,
	}
}
