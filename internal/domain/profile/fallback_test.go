package profile

import "testing"

func contains(skills []string, want string) bool {
	for _, s := range skills {
		if s == want {
			return true
		}
	}
	return false
}

func TestParseFallback_InfantrySquadLeader(t *testing.T) {
	desc := "Served 8 years as an Army infantry squad leader. Led a 9-person " +
		"fire team on multiple deployments, coordinated convoy security and " +
		"trained new soldiers. Held a Secret clearance."

	got := ParseFallback(desc)

	if got.YearsExperience == nil || *got.YearsExperience != 8 {
		t.Fatalf("YearsExperience = %v, want 8", got.YearsExperience)
	}
	if got.Leadership == nil {
		t.Fatal("expected leadership to be detected")
	}
	if got.Leadership.Level != "team lead" {
		t.Fatalf("Leadership.Level = %q, want team lead", got.Leadership.Level)
	}
	if got.Leadership.Scope != "9 direct reports" {
		t.Fatalf("Leadership.Scope = %q", got.Leadership.Scope)
	}
	if !contains(got.TechnicalSkills, "security operations") {
		t.Fatalf("TechnicalSkills = %v, want security operations", got.TechnicalSkills)
	}
	if !contains(got.SoftSkills, "leadership") || !contains(got.SoftSkills, "teamwork") {
		t.Fatalf("SoftSkills = %v", got.SoftSkills)
	}
	if got.SecurityClearance != "Secret" {
		t.Fatalf("SecurityClearance = %q, want Secret", got.SecurityClearance)
	}
}

func TestParseFallback_MostSeniorLeadershipWins(t *testing.T) {
	got := ParseFallback("Company commander, previously a squad leader and sergeant.")

	if got.Leadership == nil || got.Leadership.Level != "senior manager" {
		t.Fatalf("Leadership = %+v, want senior manager", got.Leadership)
	}
}

func TestParseFallback_ClearancePrecedence(t *testing.T) {
	got := ParseFallback("Held a TS/SCI clearance, previously a secret clearance.")

	if got.SecurityClearance != "Top Secret/SCI" {
		t.Fatalf("SecurityClearance = %q, want Top Secret/SCI", got.SecurityClearance)
	}
}

func TestParseFallback_AssetResponsibility(t *testing.T) {
	got := ParseFallback("Accountable for $2.5 million worth of communications equipment.")

	if got.AssetResponsibility != "$2.5 in equipment/assets" {
		t.Fatalf("AssetResponsibility = %q", got.AssetResponsibility)
	}
	if !contains(got.TechnicalSkills, "communications systems") {
		t.Fatalf("TechnicalSkills = %v", got.TechnicalSkills)
	}
}

func TestParseFallback_NoSignals(t *testing.T) {
	got := ParseFallback("I like long walks on the beach.")

	if got.Leadership != nil {
		t.Fatalf("Leadership = %+v, want nil", got.Leadership)
	}
	if got.YearsExperience != nil {
		t.Fatalf("YearsExperience = %v, want nil", got.YearsExperience)
	}
	if len(got.TransferableSkills) == 0 {
		t.Fatal("baseline transferable skills should always be present")
	}
	if got.Certifications == nil {
		t.Fatal("Certifications must be an empty slice, not nil")
	}
}

func TestFlattenSkills_DedupesCaseInsensitively(t *testing.T) {
	p := ParsedSkills{
		TechnicalSkills:    []string{"Network Administration", "cybersecurity"},
		SoftSkills:         []string{"network administration", "Communication"},
		TransferableSkills: []string{"communication", ""},
	}

	got := p.FlattenSkills()

	want := []string{"Network Administration", "cybersecurity", "Communication"}
	if len(got) != len(want) {
		t.Fatalf("FlattenSkills = %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("got[%d] = %q, want %q (first occurrence wins)", i, got[i], w)
		}
	}
}

func TestFlattenSkills_LeadershipAndClearanceExpansion(t *testing.T) {
	p := ParsedSkills{
		Leadership:        &Leadership{Level: "manager"},
		SecurityClearance: "Top Secret",
	}

	got := p.FlattenSkills()

	for _, want := range []string{
		"team leadership",
		"operations management",
		"strategic planning",
		"security clearance",
		"cybersecurity",
		"risk assessment",
	} {
		if !contains(got, want) {
			t.Fatalf("FlattenSkills = %v, missing %q", got, want)
		}
	}
}

func TestFlattenSkills_SupervisorGetsNoManagerExpansion(t *testing.T) {
	p := ParsedSkills{Leadership: &Leadership{Level: "supervisor"}}

	got := p.FlattenSkills()

	if !contains(got, "team leadership") {
		t.Fatalf("FlattenSkills = %v, missing team leadership", got)
	}
	if contains(got, "operations management") {
		t.Fatalf("FlattenSkills = %v, supervisor must not imply operations management", got)
	}
}
