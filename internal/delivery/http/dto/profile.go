package dto

import "github.com/aravhawk/vetpath/internal/domain/profile"

type Leadership struct {
	Level   string `json:"level"`
	Scope   string `json:"scope"`
	Context string `json:"context"`
}

type ParsedSkills struct {
	Leadership          *Leadership `json:"leadership,omitempty"`
	TechnicalSkills     []string    `json:"technical_skills"`
	SoftSkills          []string    `json:"soft_skills"`
	TransferableSkills  []string    `json:"transferable_skills"`
	YearsExperience     *int        `json:"years_experience,omitempty"`
	AssetResponsibility string      `json:"asset_responsibility,omitempty"`
	Certifications      []string    `json:"certifications"`
	SecurityClearance   string      `json:"security_clearance,omitempty"`
}

type MilitaryProfile struct {
	Branch                string `json:"branch"`
	YearsOfService        int    `json:"years_of_service"`
	MOSCode               string `json:"mos_code,omitempty"`
	Rank                  string `json:"rank,omitempty"`
	ExperienceDescription string `json:"experience_description"`
}

func (p ParsedSkills) ToDomain() profile.ParsedSkills {
	out := profile.ParsedSkills{
		TechnicalSkills:     p.TechnicalSkills,
		SoftSkills:          p.SoftSkills,
		TransferableSkills:  p.TransferableSkills,
		YearsExperience:     p.YearsExperience,
		AssetResponsibility: p.AssetResponsibility,
		Certifications:      p.Certifications,
		SecurityClearance:   p.SecurityClearance,
	}
	if p.Leadership != nil {
		out.Leadership = &profile.Leadership{
			Level:   p.Leadership.Level,
			Scope:   p.Leadership.Scope,
			Context: p.Leadership.Context,
		}
	}
	return out
}

func (p MilitaryProfile) ToDomain() profile.MilitaryProfile {
	return profile.MilitaryProfile(p)
}

func FromParsedSkills(p profile.ParsedSkills) ParsedSkills {
	out := ParsedSkills{
		TechnicalSkills:     emptyIfNil(p.TechnicalSkills),
		SoftSkills:          emptyIfNil(p.SoftSkills),
		TransferableSkills:  emptyIfNil(p.TransferableSkills),
		YearsExperience:     p.YearsExperience,
		AssetResponsibility: p.AssetResponsibility,
		Certifications:      emptyIfNil(p.Certifications),
		SecurityClearance:   p.SecurityClearance,
	}
	if p.Leadership != nil {
		out.Leadership = &Leadership{
			Level:   p.Leadership.Level,
			Scope:   p.Leadership.Scope,
			Context: p.Leadership.Context,
		}
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
