package dto

import "github.com/aravhawk/vetpath/internal/domain/gap"

type GapRequest struct {
	VeteranSkills        []string `json:"veteran_skills"`
	TargetOccupationCode string   `json:"target_occupation_code"`
}

type TrainingRecommendation struct {
	SkillGap      string `json:"skill_gap"`
	Certification string `json:"certification"`
	EstimatedTime string `json:"estimated_time"`
	Cost          string `json:"cost"`
	Provider      string `json:"provider,omitempty"`
	VAEligible    bool   `json:"va_eligible"`
}

type GapAnalysis struct {
	Gaps                 []string                 `json:"gaps"`
	Recommendations      []TrainingRecommendation `json:"recommendations"`
	EstimatedTimeToReady string                   `json:"estimated_time_to_ready"`
	MatchPercentage      float64                  `json:"match_percentage"`
	DevelopmentSummary   string                   `json:"development_summary,omitempty"`
	DevelopmentSteps     []string                 `json:"development_steps"`
	ResourceSuggestions  []string                 `json:"resource_suggestions"`
}

type GapResponse struct {
	Analysis GapAnalysis `json:"analysis"`
}

type ReadinessResponse struct {
	ReadinessScore  float64 `json:"readiness_score"`
	Level           string  `json:"level"`
	Message         string  `json:"message"`
	MatchPercentage float64 `json:"match_percentage"`
	SkillsMatched   int     `json:"skills_matched"`
	SkillsRequired  int     `json:"skills_required"`
	GapsCount       int     `json:"gaps_count"`
	EstimatedTime   string  `json:"estimated_time"`
	OccupationTitle string  `json:"occupation_title"`
}

type QuickWinsResponse struct {
	Recommendations []TrainingRecommendation `json:"recommendations"`
	Count           int                      `json:"count"`
}

func FromRecommendations(recs []gap.Recommendation) []TrainingRecommendation {
	out := make([]TrainingRecommendation, 0, len(recs))
	for _, r := range recs {
		out = append(out, TrainingRecommendation{
			SkillGap:      r.SkillGap,
			Certification: r.Certification,
			EstimatedTime: r.EstimatedTime,
			Cost:          r.Cost,
			Provider:      r.Provider,
			VAEligible:    r.VAEligible,
		})
	}
	return out
}

func FromAnalysis(a gap.Analysis) GapAnalysis {
	return GapAnalysis{
		Gaps:                 emptyIfNil(a.Gaps),
		Recommendations:      FromRecommendations(a.Recommendations),
		EstimatedTimeToReady: a.EstimatedTimeToReady,
		MatchPercentage:      a.MatchPercentage,
		DevelopmentSummary:   a.DevelopmentSummary,
		DevelopmentSteps:     emptyIfNil(a.DevelopmentSteps),
		ResourceSuggestions:  emptyIfNil(a.ResourceSuggestions),
	}
}

func FromReadiness(r gap.ReadinessReport) ReadinessResponse {
	return ReadinessResponse{
		ReadinessScore:  r.ReadinessScore,
		Level:           r.Level,
		Message:         r.Message,
		MatchPercentage: r.MatchPercentage,
		SkillsMatched:   r.SkillsMatched,
		SkillsRequired:  r.SkillsRequired,
		GapsCount:       r.GapsCount,
		EstimatedTime:   r.EstimatedTime,
		OccupationTitle: r.OccupationTitle,
	}
}
