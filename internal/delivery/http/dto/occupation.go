package dto

import (
	"github.com/aravhawk/vetpath/internal/domain/occupation"
	"github.com/aravhawk/vetpath/internal/repository"
)

type OccupationSummary struct {
	OccupationCode  string `json:"occupation_code"`
	OccupationTitle string `json:"occupation_title"`
	MedianWage      int    `json:"median_wage"`
	Industry        string `json:"industry"`
}

type RequiredSkill struct {
	SkillName  string `json:"skill_name"`
	Importance int    `json:"importance_level"`
}

type CareerDetail struct {
	OccupationCode    string          `json:"occupation_code"`
	OccupationTitle   string          `json:"occupation_title"`
	Description       string          `json:"description"`
	MedianWage        int             `json:"median_wage"`
	JobOutlook        string          `json:"job_outlook"`
	GrowthRate        *float64        `json:"growth_rate,omitempty"`
	Industry          string          `json:"industry"`
	EducationRequired string          `json:"education_required"`
	RequiredSkills    []RequiredSkill `json:"required_skills"`
}

type MOSCode struct {
	MOSCode       string `json:"mos_code"`
	MilitaryTitle string `json:"military_title"`
	Branch        string `json:"branch"`
}

func FromOccupations(items []occupation.Occupation) []OccupationSummary {
	out := make([]OccupationSummary, 0, len(items))
	for _, o := range items {
		out = append(out, OccupationSummary{
			OccupationCode:  o.Code,
			OccupationTitle: o.Title,
			MedianWage:      o.WageOrZero(),
			Industry:        o.Industry,
		})
	}
	return out
}

func FromCareerDetail(occ occupation.Occupation, reqs []occupation.SkillRequirement) CareerDetail {
	skills := make([]RequiredSkill, 0, len(reqs))
	for _, r := range reqs {
		skills = append(skills, RequiredSkill{SkillName: r.SkillName, Importance: r.Importance})
	}
	return CareerDetail{
		OccupationCode:    occ.Code,
		OccupationTitle:   occ.Title,
		Description:       occ.Description,
		MedianWage:        occ.WageOrZero(),
		JobOutlook:        occ.JobOutlook,
		GrowthRate:        occ.GrowthRate,
		Industry:          occ.Industry,
		EducationRequired: occ.EducationRequired,
		RequiredSkills:    skills,
	}
}

func FromMOSCodes(items []repository.MOSCode) []MOSCode {
	out := make([]MOSCode, 0, len(items))
	for _, m := range items {
		out = append(out, MOSCode{MOSCode: m.Code, MilitaryTitle: m.MilitaryTitle, Branch: m.Branch})
	}
	return out
}
