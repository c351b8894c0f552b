package usecase

import (
	"context"

	"github.com/aravhawk/vetpath/internal/domain/profile"
)

// ResumeInput is everything the resume generator needs about the caller.
type ResumeInput struct {
	Profile       profile.MilitaryProfile
	Parsed        profile.ParsedSkills
	TargetJob     string
	TargetCompany string
}

// DevelopmentPlan is the AI-augmented addendum to a gap analysis.
type DevelopmentPlan struct {
	Summary   string
	Steps     []string
	Resources []string
}

// AIClient is the external text-generation collaborator. The core never
// depends on it being configured: every caller has a deterministic
// fallback for Available() == false or call failure.
type AIClient interface {
	Available() bool
	ParseExperience(ctx context.Context, description string) (profile.ParsedSkills, error)
	GenerateResume(ctx context.Context, in ResumeInput) (string, error)
	DevelopmentPlan(ctx context.Context, occupationTitle string, gaps []string) (DevelopmentPlan, error)
}
