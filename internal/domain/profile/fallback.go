package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Keyword tables for the deterministic parser. Order matters for
// leadership and clearance: the first (most senior / most privileged)
// match wins.

var leadershipLevels = []struct {
	level    string
	keywords []string
}{
	{"senior manager", []string{"battalion", "commander", "command sergeant", "first sergeant"}},
	{"manager", []string{"company", "captain", "platoon leader", "section chief"}},
	{"supervisor", []string{"sergeant", "staff sergeant", "petty officer", "nco"}},
	{"team lead", []string{"squad leader", "team leader", "fire team", "crew chief"}},
}

var technicalSkillKeywords = []struct {
	skill    string
	keywords []string
}{
	{"equipment maintenance", []string{"maintenance", "repair", "mechanic", "technician"}},
	{"inventory management", []string{"inventory", "supply", "logistics", "warehouse"}},
	{"communications systems", []string{"radio", "communications", "signal", "satellite"}},
	{"medical procedures", []string{"medic", "medical", "first aid", "corpsman"}},
	{"weapons systems", []string{"weapons", "armament", "gunnery", "ordnance"}},
	{"vehicle operations", []string{"driver", "vehicle", "convoy", "transport"}},
	{"network administration", []string{"network", "it", "systems", "cyber"}},
	{"security operations", []string{"security", "force protection", "guard"}},
	{"training and instruction", []string{"training", "instructor", "teach", "mentor"}},
	{"documentation", []string{"reports", "documentation", "records", "admin"}},
}

var softSkillKeywords = []struct {
	skill    string
	keywords []string
}{
	{"leadership", []string{"led", "leader", "command", "supervised"}},
	{"teamwork", []string{"team", "unit", "crew", "squad"}},
	{"communication", []string{"briefed", "coordinated", "liaison"}},
	{"problem solving", []string{"troubleshoot", "resolved", "solved"}},
	{"adaptability", []string{"deployed", "various", "multiple", "diverse"}},
	{"stress management", []string{"combat", "high-pressure", "operational"}},
	{"attention to detail", []string{"inspection", "quality", "precision"}},
	{"time management", []string{"deadline", "schedule", "mission"}},
}

var clearanceLevels = []struct {
	level    string
	keywords []string
}{
	{"Top Secret/SCI", []string{"ts/sci", "top secret/sci"}},
	{"Top Secret", []string{"top secret", "ts clearance"}},
	{"Secret", []string{"secret clearance", "secret security"}},
	{"Confidential", []string{"confidential clearance"}},
}

var (
	yearsRe = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)
	scopeRe = regexp.MustCompile(`(\d+)[\s-]*(?:person|soldier|marine|sailor|airman|personnel|people|member)`)
	assetRe = regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:m(?:illion)?|k|worth|value|equipment)`)
)

// ParseFallback extracts skills from an experience description with
// keyword matching. It is the no-AI path: coarser than the model-backed
// parser but deterministic, and always returns a usable profile.
func ParseFallback(description string) ParsedSkills {
	lower := strings.ToLower(description)

	var years *int
	if m := yearsRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			years = &n
		}
	}

	var leadership *Leadership
	for _, ll := range leadershipLevels {
		if containsAny(lower, ll.keywords) {
			scope := "team members"
			if m := scopeRe.FindStringSubmatch(lower); m != nil {
				scope = m[1] + " direct reports"
			}
			leadership = &Leadership{
				Level:   ll.level,
				Scope:   scope,
				Context: "military operational environment",
			}
			break
		}
	}

	var technical []string
	for _, tk := range technicalSkillKeywords {
		if containsAny(lower, tk.keywords) {
			technical = append(technical, tk.skill)
		}
	}

	var soft []string
	for _, sk := range softSkillKeywords {
		if containsAny(lower, sk.keywords) {
			soft = append(soft, sk.skill)
		}
	}

	transferable := transferableSkills(lower, leadership != nil)

	assetResponsibility := ""
	if m := assetRe.FindStringSubmatch(lower); m != nil {
		assetResponsibility = fmt.Sprintf("$%s in equipment/assets", m[1])
	}

	clearance := ""
	for _, cl := range clearanceLevels {
		if containsAny(lower, cl.keywords) {
			clearance = cl.level
			break
		}
	}

	return ParsedSkills{
		Leadership:          leadership,
		TechnicalSkills:     capSlice(technical, 10),
		SoftSkills:          capSlice(soft, 8),
		TransferableSkills:  capSlice(transferable, 8),
		YearsExperience:     years,
		AssetResponsibility: assetResponsibility,
		Certifications:      []string{},
		SecurityClearance:   clearance,
	}
}

func transferableSkills(lower string, hasLeadership bool) []string {
	var out []string
	if hasLeadership {
		out = append(out, "team leadership and personnel management")
	}
	if strings.Contains(lower, "training") || strings.Contains(lower, "instructor") {
		out = append(out, "training development and delivery")
	}
	if containsAny(lower, []string{"logistics", "supply", "inventory"}) {
		out = append(out, "supply chain and logistics management")
	}
	if containsAny(lower, []string{"maintenance", "repair", "mechanic"}) {
		out = append(out, "equipment maintenance and troubleshooting")
	}
	if containsAny(lower, []string{"network", "it", "cyber", "systems"}) {
		out = append(out, "information technology and systems administration")
	}
	if containsAny(lower, []string{"medic", "medical", "corpsman"}) {
		out = append(out, "emergency medical response and patient care")
	}
	if containsAny(lower, []string{"security", "force protection"}) {
		out = append(out, "security operations and risk management")
	}
	out = append(out,
		"high-stress decision making",
		"operational planning and execution",
		"cross-functional team collaboration",
	)
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func capSlice(s []string, n int) []string {
	if s == nil {
		return []string{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
