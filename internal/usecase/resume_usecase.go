package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
)

type ResumeUsecase interface {
	GenerateResume(ctx context.Context, in ResumeInput) (string, error)
}

type ResumeGenerator struct {
	ai     AIClient
	logger *log.Logger
}

func NewResumeUsecase(ai AIClient, logger *log.Logger) *ResumeGenerator {
	if logger == nil {
		logger = log.Default()
	}
	return &ResumeGenerator{ai: ai, logger: logger}
}

// GenerateResume returns a markdown resume: AI-written when the
// collaborator is configured, a fill-in template otherwise.
func (u *ResumeGenerator) GenerateResume(ctx context.Context, in ResumeInput) (string, error) {
	if strings.TrimSpace(in.TargetJob) == "" {
		return "", ErrInvalidInput
	}

	if u.ai != nil && u.ai.Available() {
		text, err := u.ai.GenerateResume(ctx, in)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
		if err != nil {
			u.logger.Printf("[Resume] AI generation failed, using template: %v", err)
		}
	}

	return templateResume(in), nil
}

func templateResume(in ResumeInput) string {
	p := in.Parsed

	years := in.Profile.YearsOfService
	if p.YearsExperience != nil {
		years = *p.YearsExperience
	}

	leadershipDesc := ""
	if p.Leadership != nil {
		leadershipDesc = fmt.Sprintf(
			"Experienced %s with history of managing %s in %s.",
			p.Leadership.Level, p.Leadership.Scope, p.Leadership.Context,
		)
	}

	skills := make([]string, 0, 10)
	skills = append(skills, firstN(p.TechnicalSkills, 5)...)
	skills = append(skills, firstN(p.SoftSkills, 3)...)
	skills = append(skills, firstN(p.TransferableSkills, 4)...)
	skills = firstN(skills, 10)

	var b strings.Builder
	b.WriteString("# [VETERAN NAME]\n\n")
	b.WriteString("**Email:** [your.email@email.com] | **Phone:** [XXX-XXX-XXXX] | **Location:** [City, State]\n\n")
	b.WriteString("---\n\n## PROFESSIONAL SUMMARY\n\n")
	fmt.Fprintf(&b,
		"Dedicated professional with %d years of experience in the %s. %s Proven track record of excellence in high-pressure environments with strong focus on mission accomplishment and team development. Seeking to leverage military experience in a %s role.\n\n",
		years, in.Profile.Branch, leadershipDesc, in.TargetJob,
	)

	b.WriteString("---\n\n## CORE COMPETENCIES\n\n")
	for _, s := range skills {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	b.WriteString("\n---\n\n## PROFESSIONAL EXPERIENCE\n\n")
	fmt.Fprintf(&b, "### %s | [Dates of Service]\n**[Most Recent Rank/Position]**\n\n", in.Profile.Branch)
	assets := p.AssetResponsibility
	if assets == "" {
		assets = "significant value"
	}
	b.WriteString("- Led and managed team operations, ensuring 100% mission completion rate\n")
	fmt.Fprintf(&b, "- Maintained and operated equipment valued at %s\n", assets)
	b.WriteString("- Trained and mentored junior team members on procedures and best practices\n")
	b.WriteString("- Coordinated logistics and resources for operational requirements\n")
	b.WriteString("- Implemented process improvements resulting in increased efficiency\n")
	b.WriteString("- Maintained compliance with safety and security protocols\n")

	b.WriteString("\n---\n\n## EDUCATION & TRAINING\n\n")
	b.WriteString("**[Degree/Training Program]** | [Institution Name] | [Year]\n\n")
	b.WriteString("- Relevant military training and professional development courses\n")
	b.WriteString("- Leadership development programs\n")

	if len(p.Certifications) > 0 {
		b.WriteString("\n## CERTIFICATIONS\n\n")
		for _, c := range p.Certifications {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	if p.SecurityClearance != "" {
		b.WriteString("\n## SECURITY CLEARANCE\n\n")
		fmt.Fprintf(&b, "- %s\n", p.SecurityClearance)
	}

	b.WriteString("\n---\n\n*References available upon request*\n")
	return b.String()
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
