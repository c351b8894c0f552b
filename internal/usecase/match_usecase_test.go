package usecase

import (
	"context"
	"testing"

	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
	"github.com/aravhawk/vetpath/internal/domain/profile"
	"github.com/aravhawk/vetpath/internal/repository"
)

func newMatcher(skills *mockSkillRepo, occs *mockOccupationRepo, crosswalk *mockCrosswalkRepo, cache MatchCache) *Matcher {
	if occs == nil {
		occs = &mockOccupationRepo{byCode: map[string]occupation.Occupation{}}
	}
	if crosswalk == nil {
		crosswalk = &mockCrosswalkRepo{}
	}
	return NewMatchUsecase(occs, skills, crosswalk, cache, matching.DefaultTunables(), nil)
}

func TestMatch_ExactPathScores(t *testing.T) {
	skills := &mockSkillRepo{
		bySkills: []matching.Candidate{
			candidate("11-1021.00", "Operations Manager", "Management", 98100,
				"leadership", "data analysis", "budgeting", "hiring"),
		},
	}
	u := newMatcher(skills, nil, nil, nil)

	got, err := u.Match(context.Background(), []string{"Leadership", "data analysis"}, nil, 10)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("matches = %v", got)
	}
	if got[0].Score != 50.0 {
		t.Fatalf("Score = %v, want 50.0", got[0].Score)
	}
	if got[0].MatchingSkills != 2 {
		t.Fatalf("MatchingSkills = %d, want 2", got[0].MatchingSkills)
	}
	if skills.byTokensCalls != 0 {
		t.Fatalf("token search ran %d times; exact hits must not fall back", skills.byTokensCalls)
	}
}

func TestMatch_FallsBackOnlyWhenExactEmpty(t *testing.T) {
	skills := &mockSkillRepo{
		bySkills: nil,
		byTokens: []matching.Candidate{
			candidate("15-1244.00", "Network Administrator", "Technology", 90520,
				"network administration", "troubleshooting"),
		},
	}
	u := newMatcher(skills, nil, nil, nil)

	got, err := u.Match(context.Background(), []string{"network security"}, nil, 10)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if skills.bySkillsCalls != 1 || skills.byTokensCalls != 1 {
		t.Fatalf("calls = (%d exact, %d token), want (1, 1)", skills.bySkillsCalls, skills.byTokensCalls)
	}
	if len(got) != 1 {
		t.Fatalf("matches = %v, want the token-qualified candidate", got)
	}
	if got[0].Score <= 0 {
		t.Fatalf("Score = %v, want > 0", got[0].Score)
	}
}

func TestMatch_EmptySkillsShortCircuits(t *testing.T) {
	skills := &mockSkillRepo{}
	u := newMatcher(skills, nil, nil, nil)

	got, err := u.Match(context.Background(), []string{"  ", ""}, nil, 10)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("matches = %v, want empty", got)
	}
	if skills.bySkillsCalls != 0 {
		t.Fatal("blank input must not reach the repository")
	}
}

func TestMatch_PreferencesFilterAfterScoring(t *testing.T) {
	skills := &mockSkillRepo{
		bySkills: []matching.Candidate{
			candidate("51-4121.00", "Welder", "Manufacturing", 47010, "welding"),
			candidate("15-1244.00", "Network Administrator", "Technology", 90520, "welding"),
		},
	}
	u := newMatcher(skills, nil, nil, nil)

	prefs := &Preferences{MinSalary: intPtr(50000), Industries: []string{"Technology"}}
	got, err := u.Match(context.Background(), []string{"welding"}, prefs, 10)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 || got[0].Occupation.Code != "15-1244.00" {
		t.Fatalf("matches = %v, want only the technology occupation", got)
	}
}

func TestMatch_CacheHitSkipsRepository(t *testing.T) {
	cache := newMockCache()
	skills := &mockSkillRepo{}
	u := newMatcher(skills, nil, nil, cache)

	cached := []matching.Match{{
		Occupation: occupation.Occupation{Code: "29-1141.00", Title: "Registered Nurse"},
		Score:      75.0,
	}}
	key := MatchCacheKey([]string{"patient care"}, nil, 10)
	if err := cache.SetJSON(context.Background(), key, cached, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	got, err := u.Match(context.Background(), []string{"Patient Care"}, nil, 10)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 || got[0].Occupation.Code != "29-1141.00" {
		t.Fatalf("matches = %v, want cached entry", got)
	}
	if skills.bySkillsCalls != 0 {
		t.Fatal("cache hit must not reach the repository")
	}
}

func TestMatch_MissWritesCache(t *testing.T) {
	cache := newMockCache()
	skills := &mockSkillRepo{
		bySkills: []matching.Candidate{
			candidate("49-9021.00", "HVAC Technician", "Construction", 51390, "hvac"),
		},
	}
	u := newMatcher(skills, nil, nil, cache)

	if _, err := u.Match(context.Background(), []string{"hvac"}, nil, 10); err != nil {
		t.Fatalf("Match: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache writes = %d, want 1", cache.sets)
	}
}

func TestMatchFromProfile_UsesFlattenedSkills(t *testing.T) {
	skills := &mockSkillRepo{
		bySkills: []matching.Candidate{
			candidate("11-1021.00", "Operations Manager", "Management", 98100,
				"team leadership", "operations management"),
		},
	}
	u := newMatcher(skills, nil, nil, nil)

	parsed := profile.ParsedSkills{
		Leadership: &profile.Leadership{Level: "manager"},
	}
	got, err := u.MatchFromProfile(context.Background(), parsed, nil, 10)
	if err != nil {
		t.Fatalf("MatchFromProfile: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("matches = %v", got)
	}
	// team leadership + operations management out of the augmented set.
	if got[0].MatchingSkills != 2 {
		t.Fatalf("MatchingSkills = %d, want 2", got[0].MatchingSkills)
	}
}

func TestMatchFromMOS_StrengthBecomesScore(t *testing.T) {
	occs := &mockOccupationRepo{byCode: map[string]occupation.Occupation{
		"49-3031.00": {Code: "49-3031.00", Title: "Diesel Mechanic", Industry: "Transportation"},
	}}
	skills := &mockSkillRepo{byOccupation: map[string][]occupation.SkillRequirement{
		"49-3031.00": {
			{OccupationCode: "49-3031.00", SkillName: "diesel engines", Importance: 5},
			{OccupationCode: "49-3031.00", SkillName: "preventive maintenance", Importance: 4},
		},
	}}
	crosswalk := &mockCrosswalkRepo{rows: []repository.CrosswalkRow{
		{CrosswalkEntry: occupation.CrosswalkEntry{
			MOSCode: "91B", Branch: "Army", MilitaryTitle: "Wheeled Vehicle Mechanic",
			OccupationCode: "49-3031.00", MatchStrength: 4,
		}},
	}}
	u := newMatcher(skills, occs, crosswalk, nil)

	got, err := u.MatchFromMOS(context.Background(), "91B", "Army", nil, 10)
	if err != nil {
		t.Fatalf("MatchFromMOS: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("matches = %v", got)
	}
	if got[0].Score != 80.0 {
		t.Fatalf("Score = %v, want strength 4 * 20 = 80", got[0].Score)
	}
	if len(got[0].RequiredSkills) != 2 {
		t.Fatalf("RequiredSkills = %v", got[0].RequiredSkills)
	}
}

func TestMatchFromMOS_UnknownCodeIsEmptyNotError(t *testing.T) {
	u := newMatcher(&mockSkillRepo{}, nil, &mockCrosswalkRepo{}, nil)

	got, err := u.MatchFromMOS(context.Background(), "00Z", "", nil, 10)
	if err != nil {
		t.Fatalf("MatchFromMOS: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("matches = %v, want empty", got)
	}
}

func TestMatchFromMOS_AdditionalSkillsPadWithoutDuplicates(t *testing.T) {
	occs := &mockOccupationRepo{byCode: map[string]occupation.Occupation{
		"49-3031.00": {Code: "49-3031.00", Title: "Diesel Mechanic", MedianWage: intPtr(54360)},
	}}
	skills := &mockSkillRepo{
		byOccupation: map[string][]occupation.SkillRequirement{
			"49-3031.00": {{OccupationCode: "49-3031.00", SkillName: "diesel engines", Importance: 5}},
		},
		bySkills: []matching.Candidate{
			candidate("49-3031.00", "Diesel Mechanic", "Transportation", 54360, "hydraulics"),
			candidate("49-9071.00", "Maintenance Technician", "Manufacturing", 46700, "hydraulics"),
		},
	}
	crosswalk := &mockCrosswalkRepo{rows: []repository.CrosswalkRow{
		{CrosswalkEntry: occupation.CrosswalkEntry{
			MOSCode: "91B", OccupationCode: "49-3031.00", MatchStrength: 5,
		}},
	}}
	u := newMatcher(skills, occs, crosswalk, nil)

	got, err := u.MatchFromMOS(context.Background(), "91B", "", []string{"hydraulics"}, 10)
	if err != nil {
		t.Fatalf("MatchFromMOS: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("matches = %v, want crosswalk hit plus one padded match", got)
	}
	// Both score 100; the higher-wage crosswalk occupation sorts first.
	if got[0].Occupation.Code != "49-3031.00" || got[1].Occupation.Code != "49-9071.00" {
		t.Fatalf("order = [%s, %s]", got[0].Occupation.Code, got[1].Occupation.Code)
	}
}

func TestMatchFromMOS_MergedResultsSortedByScore(t *testing.T) {
	occs := &mockOccupationRepo{byCode: map[string]occupation.Occupation{
		"43-5061.00": {Code: "43-5061.00", Title: "Shipping Clerk", MedianWage: intPtr(39230)},
	}}
	skills := &mockSkillRepo{
		byOccupation: map[string][]occupation.SkillRequirement{
			"43-5061.00": {{OccupationCode: "43-5061.00", SkillName: "inventory management", Importance: 3}},
		},
		bySkills: []matching.Candidate{
			candidate("11-3071.00", "Logistics Manager", "logistics", 77520, "supply chain"),
		},
	}
	crosswalk := &mockCrosswalkRepo{rows: []repository.CrosswalkRow{
		{CrosswalkEntry: occupation.CrosswalkEntry{
			MOSCode: "92A", OccupationCode: "43-5061.00", MatchStrength: 1,
		}},
	}}
	u := newMatcher(skills, occs, crosswalk, nil)

	got, err := u.MatchFromMOS(context.Background(), "92A", "", []string{"supply chain"}, 10)
	if err != nil {
		t.Fatalf("MatchFromMOS: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("matches = %v, want 2", got)
	}
	// The 100-score skill match outranks the strength-1 crosswalk row.
	if got[0].Occupation.Code != "11-3071.00" || got[0].Score != 100.0 {
		t.Fatalf("got[0] = %s score %v, want the skill match first", got[0].Occupation.Code, got[0].Score)
	}
	if got[1].Occupation.Code != "43-5061.00" || got[1].Score != 20.0 {
		t.Fatalf("got[1] = %s score %v, want the crosswalk row last", got[1].Occupation.Code, got[1].Score)
	}
}
