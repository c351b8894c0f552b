package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/aravhawk/vetpath/internal/domain/profile"
)

type ParseUsecase interface {
	ParseExperience(ctx context.Context, description string) (profile.ParsedSkills, error)
}

type Parser struct {
	ai     AIClient
	logger *log.Logger
}

func NewParseUsecase(ai AIClient, logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{ai: ai, logger: logger}
}

// ParseExperience prefers the AI collaborator and degrades to the keyword
// parser when it is unconfigured or fails. The caller always gets a
// usable profile for a non-blank description.
func (u *Parser) ParseExperience(ctx context.Context, description string) (profile.ParsedSkills, error) {
	if strings.TrimSpace(description) == "" {
		return profile.ParsedSkills{}, ErrInvalidInput
	}

	if u.ai != nil && u.ai.Available() {
		parsed, err := u.ai.ParseExperience(ctx, description)
		if err == nil {
			return parsed, nil
		}
		u.logger.Printf("[Parse] AI parse failed, using keyword fallback: %v", err)
	}

	return profile.ParseFallback(description), nil
}
