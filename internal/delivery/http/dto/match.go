package dto

import (
	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/usecase"
)

type Preferences struct {
	MinSalary  *int     `json:"min_salary,omitempty"`
	Industries []string `json:"industries,omitempty"`
}

type MatchRequest struct {
	Skills      []string     `json:"skills"`
	Preferences *Preferences `json:"preferences,omitempty"`
	Limit       int          `json:"limit,omitempty"`
}

type ProfileMatchRequest struct {
	MilitaryProfile
	Preferences *Preferences `json:"preferences,omitempty"`
}

type CareerMatch struct {
	OccupationCode    string   `json:"occupation_code"`
	OccupationTitle   string   `json:"occupation_title"`
	Description       string   `json:"description"`
	MedianWage        int      `json:"median_wage"`
	JobOutlook        string   `json:"job_outlook"`
	GrowthRate        *float64 `json:"growth_rate,omitempty"`
	Industry          string   `json:"industry"`
	EducationRequired string   `json:"education_required"`
	SkillMatchScore   float64  `json:"skill_match_score"`
	MatchingSkills    int      `json:"matching_skills"`
	RequiredSkills    []string `json:"required_skills"`
}

type MatchResponse struct {
	Matches    []CareerMatch `json:"matches"`
	TotalFound int           `json:"total_found"`
	Message    string        `json:"message,omitempty"`
}

type ProfileMatchResponse struct {
	ParsedSkills ParsedSkills  `json:"parsed_skills"`
	Matches      []CareerMatch `json:"matches"`
	TotalFound   int           `json:"total_found"`
}

func (p *Preferences) ToUsecase() *usecase.Preferences {
	if p == nil {
		return nil
	}
	return &usecase.Preferences{MinSalary: p.MinSalary, Industries: p.Industries}
}

func FromMatches(matches []matching.Match) []CareerMatch {
	out := make([]CareerMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, CareerMatch{
			OccupationCode:    m.Occupation.Code,
			OccupationTitle:   m.Occupation.Title,
			Description:       m.Occupation.Description,
			MedianWage:        m.Occupation.WageOrZero(),
			JobOutlook:        m.Occupation.JobOutlook,
			GrowthRate:        m.Occupation.GrowthRate,
			Industry:          m.Occupation.Industry,
			EducationRequired: m.Occupation.EducationRequired,
			SkillMatchScore:   m.Score,
			MatchingSkills:    m.MatchingSkills,
			RequiredSkills:    emptyIfNil(m.RequiredSkills),
		})
	}
	return out
}
