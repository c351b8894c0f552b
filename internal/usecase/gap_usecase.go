package usecase

import (
	"context"
	"log"

	"github.com/aravhawk/vetpath/internal/domain/gap"
	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
	"github.com/aravhawk/vetpath/internal/repository"
)

type GapUsecase interface {
	AnalyzeGaps(ctx context.Context, knownSkills []string, targetCode string) (gap.Analysis, error)
	Readiness(ctx context.Context, knownSkills []string, targetCode string) (gap.ReadinessReport, error)
	QuickWins(ctx context.Context, knownSkills []string, targetCode string, max int) ([]gap.Recommendation, error)
}

type GapAnalyzer struct {
	occupations repository.OccupationRepository
	skills      repository.OccupationSkillRepository
	training    repository.TrainingRepository
	analyzer    *gap.Analyzer
	ai          AIClient
	logger      *log.Logger
}

func NewGapUsecase(
	occupations repository.OccupationRepository,
	skills repository.OccupationSkillRepository,
	training repository.TrainingRepository,
	analyzer *gap.Analyzer,
	ai AIClient,
	logger *log.Logger,
) *GapAnalyzer {
	if logger == nil {
		logger = log.Default()
	}
	return &GapAnalyzer{
		occupations: occupations,
		skills:      skills,
		training:    training,
		analyzer:    analyzer,
		ai:          ai,
		logger:      logger,
	}
}

// AnalyzeGaps returns ErrOccupationNotFound for an unknown code, which the
// delivery layer turns into a 404. The analyzer itself still produces
// the degenerate payload when an existing occupation has no requirements.
func (u *GapAnalyzer) AnalyzeGaps(ctx context.Context, knownSkills []string, targetCode string) (gap.Analysis, error) {
	occ, found, err := u.occupations.GetByCode(ctx, targetCode)
	if err != nil {
		return gap.Analysis{}, err
	}
	if !found {
		return gap.Analysis{}, ErrOccupationNotFound
	}

	analysis, _, err := u.analyze(ctx, knownSkills, targetCode)
	if err != nil {
		return gap.Analysis{}, err
	}

	if u.ai != nil && u.ai.Available() && len(analysis.Gaps) > 0 {
		plan, err := u.ai.DevelopmentPlan(ctx, occ.Title, analysis.Gaps)
		if err != nil {
			u.logger.Printf("[Gaps] development plan skipped: %v", err)
		} else {
			analysis.DevelopmentSummary = plan.Summary
			analysis.DevelopmentSteps = plan.Steps
			analysis.ResourceSuggestions = plan.Resources
		}
	}

	return analysis, nil
}

// Readiness never 404s: an unknown occupation produces the degenerate
// analysis with title "Unknown", matching the lookup-free original path.
func (u *GapAnalyzer) Readiness(ctx context.Context, knownSkills []string, targetCode string) (gap.ReadinessReport, error) {
	analysis, required, err := u.analyze(ctx, knownSkills, targetCode)
	if err != nil {
		return gap.ReadinessReport{}, err
	}

	title := "Unknown"
	if occ, found, err := u.occupations.GetByCode(ctx, targetCode); err != nil {
		return gap.ReadinessReport{}, err
	} else if found {
		title = occ.Title
	}

	// Count distinct required skills the same way the analyzer does.
	return gap.Readiness(analysis, len(matching.NormalizeSet(required)), title), nil
}

func (u *GapAnalyzer) QuickWins(ctx context.Context, knownSkills []string, targetCode string, max int) ([]gap.Recommendation, error) {
	analysis, _, err := u.analyze(ctx, knownSkills, targetCode)
	if err != nil {
		return nil, err
	}
	return gap.QuickWins(analysis, max), nil
}

func (u *GapAnalyzer) analyze(ctx context.Context, knownSkills []string, targetCode string) (gap.Analysis, []string, error) {
	reqs, err := u.skills.FindByOccupationCode(ctx, targetCode)
	if err != nil {
		return gap.Analysis{}, nil, err
	}

	required := make([]string, 0, len(reqs))
	for _, req := range reqs {
		required = append(required, req.SkillName)
	}

	lookup := func(skillName string) (occupation.TrainingResource, bool) {
		res, found, err := u.training.GetBySkillName(ctx, skillName)
		if err != nil {
			u.logger.Printf("[Gaps] training lookup failed for %q: %v", skillName, err)
			return occupation.TrainingResource{}, false
		}
		return res, found
	}

	return u.analyzer.Analyze(knownSkills, required, lookup), required, nil
}
