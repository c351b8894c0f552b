package gap

// ReadinessReport blends the match percentage with an over-qualification
// bonus and maps the result to a qualitative level.
type ReadinessReport struct {
	ReadinessScore  float64
	Level           string
	Message         string
	MatchPercentage float64
	SkillsMatched   int
	SkillsRequired  int
	GapsCount       int
	EstimatedTime   string
	OccupationTitle string
}

const (
	LevelHighlyQualified    = "Highly Qualified"
	LevelQualified          = "Qualified"
	LevelPartiallyQualified = "Partially Qualified"
	LevelDevelopmentNeeded  = "Development Needed"
)

// Readiness builds the readiness view on top of an Analysis. The bonus only
// applies once more than half the required skills are covered, and tops out
// at 10 points.
func Readiness(analysis Analysis, requiredCount int, occupationTitle string) ReadinessReport {
	matched := requiredCount - len(analysis.Gaps)
	if matched < 0 {
		matched = 0
	}

	base := analysis.MatchPercentage
	bonus := 0.0
	half := requiredCount / 2
	if matched > half {
		bonus = float64((matched - half) * 2)
		if bonus > 10 {
			bonus = 10
		}
	}

	score := base + bonus
	if score > 100 {
		score = 100
	}

	level, message := readinessLevel(score)

	return ReadinessReport{
		ReadinessScore:  round1(score),
		Level:           level,
		Message:         message,
		MatchPercentage: analysis.MatchPercentage,
		SkillsMatched:   matched,
		SkillsRequired:  requiredCount,
		GapsCount:       len(analysis.Gaps),
		EstimatedTime:   analysis.EstimatedTimeToReady,
		OccupationTitle: occupationTitle,
	}
}

func readinessLevel(score float64) (level, message string) {
	switch {
	case score >= 85:
		return LevelHighlyQualified, "You're well-prepared for this role. Consider applying now."
	case score >= 70:
		return LevelQualified, "You meet most requirements. Minor upskilling would strengthen your application."
	case score >= 50:
		return LevelPartiallyQualified, "You have a foundation to build on. Focus on key skill gaps."
	default:
		return LevelDevelopmentNeeded, "This role requires significant skill development. Consider a stepping-stone position."
	}
}
