package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/delivery/http/dto"
	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/pkg/response"
	"github.com/aravhawk/vetpath/internal/usecase"
)

type MatchHandler struct {
	matcher usecase.MatchUsecase
	parser  usecase.ParseUsecase
}

func NewMatchHandler(matcher usecase.MatchUsecase, parser usecase.ParseUsecase) *MatchHandler {
	return &MatchHandler{matcher: matcher, parser: parser}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
	r.Post("/match/profile", h.MatchProfile)
	r.Get("/match/mos/:mos_code", h.MatchMOS)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if len(req.Skills) == 0 {
		return response.Error(c, fiber.StatusBadRequest, "Please provide at least one skill to match", nil)
	}

	matches, err := h.matcher.Match(c.Context(), req.Skills, req.Preferences.ToUsecase(), limitOrDefault(req.Limit))
	if err != nil {
		return err
	}

	res := dto.FromMatches(matches)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchResponse{
		Matches:    res,
		TotalFound: len(res),
	})
}

// MatchProfile parses the experience description and matches careers in
// one round trip.
func (h *MatchHandler) MatchProfile(c fiber.Ctx) error {
	var req dto.ProfileMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	parsed, err := h.parser.ParseExperience(c.Context(), req.ExperienceDescription)
	if err != nil {
		return err
	}

	matches, err := h.matcher.MatchFromProfile(c.Context(), parsed, req.Preferences.ToUsecase(), matching.DefaultLimit)
	if err != nil {
		return err
	}

	res := dto.FromMatches(matches)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileMatchResponse{
		ParsedSkills: dto.FromParsedSkills(parsed),
		Matches:      res,
		TotalFound:   len(res),
	})
}

func (h *MatchHandler) MatchMOS(c fiber.Ctx) error {
	mosCode := c.Params("mos_code")
	branch := c.Query("branch")

	matches, err := h.matcher.MatchFromMOS(c.Context(), mosCode, branch, nil, matching.DefaultLimit)
	if err != nil {
		return err
	}

	res := dto.FromMatches(matches)
	out := dto.MatchResponse{Matches: res, TotalFound: len(res)}
	if len(res) == 0 {
		out.Message = fmt.Sprintf("No direct matches found for MOS %s. Try providing a detailed experience description.", mosCode)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func limitOrDefault(limit int) int {
	if limit <= 0 || limit > 50 {
		return matching.DefaultLimit
	}
	return limit
}
