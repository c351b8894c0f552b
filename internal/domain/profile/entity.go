package profile

import (
	"strings"
)

// Leadership describes leadership experience extracted from a service
// record.
type Leadership struct {
	Level   string
	Scope   string
	Context string
}

// ParsedSkills is the structured output of the experience parser, whether
// AI-extracted or keyword-derived.
type ParsedSkills struct {
	Leadership          *Leadership
	TechnicalSkills     []string
	SoftSkills          []string
	TransferableSkills  []string
	YearsExperience     *int
	AssetResponsibility string
	Certifications      []string
	SecurityClearance   string
}

// MilitaryProfile is the raw input a caller supplies about their service.
type MilitaryProfile struct {
	Branch                string
	YearsOfService        int
	MOSCode               string
	Rank                  string
	ExperienceDescription string
}

// FlattenSkills combines every skill list into one case-insensitively
// de-duplicated slice, augmented with skills implied by leadership level
// and security clearance. Order is preserved; first occurrence wins.
func (p ParsedSkills) FlattenSkills() []string {
	all := make([]string, 0,
		len(p.TechnicalSkills)+len(p.SoftSkills)+len(p.TransferableSkills)+5)
	all = append(all, p.TechnicalSkills...)
	all = append(all, p.SoftSkills...)
	all = append(all, p.TransferableSkills...)

	if p.Leadership != nil {
		all = append(all, "team leadership")
		switch p.Leadership.Level {
		case "manager", "senior manager":
			all = append(all, "operations management", "strategic planning")
		}
	}

	if p.SecurityClearance != "" {
		all = append(all, "security clearance")
		if strings.Contains(strings.ToLower(p.SecurityClearance), "top secret") {
			all = append(all, "cybersecurity", "risk assessment")
		}
	}

	seen := make(map[string]struct{}, len(all))
	unique := make([]string, 0, len(all))
	for _, s := range all {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}
