package occupation

// Occupation is one entry in the O*NET-style catalog. Records are
// bulk-loaded by the seeder and treated as immutable afterwards.
type Occupation struct {
	Code              string
	Title             string
	Description       string
	MedianWage        *int
	JobOutlook        string
	GrowthRate        *float64
	Industry          string
	EducationRequired string
}

// SkillRequirement attaches a skill to exactly one occupation.
// Importance is an ordinal 1..5, 5 being most important.
type SkillRequirement struct {
	OccupationCode string
	SkillName      string
	Importance     int
}

// CrosswalkEntry maps a military occupational code to a civilian
// occupation. MatchStrength shares the 1..5 ordinal convention.
type CrosswalkEntry struct {
	MOSCode        string
	Branch         string
	MilitaryTitle  string
	OccupationCode string
	MatchStrength  int
}

// TrainingResource is the canonical training path for one skill name
// (case-insensitive, last write wins on ingestion).
type TrainingResource struct {
	SkillName     string
	Certification string
	Provider      string
	EstimatedTime string
	Cost          string
	VAEligible    bool
}

// WageOrZero is the sort key for wage tie-breaks; unknown wages rank last.
func (o Occupation) WageOrZero() int {
	if o.MedianWage == nil {
		return 0
	}
	return *o.MedianWage
}

// ClampImportance bounds an importance or match-strength ordinal to 1..5.
func ClampImportance(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
