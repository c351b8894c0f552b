package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/delivery/http/dto"
	"github.com/aravhawk/vetpath/internal/domain/gap"
	"github.com/aravhawk/vetpath/internal/pkg/response"
	"github.com/aravhawk/vetpath/internal/usecase"
)

type GapHandler struct {
	uc usecase.GapUsecase
}

func NewGapHandler(uc usecase.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/gaps", h.Analyze)
	r.Get("/gaps/readiness/:occupation_code", h.Readiness)
	r.Get("/gaps/quick-wins/:occupation_code", h.QuickWins)
}

func (h *GapHandler) Analyze(c fiber.Ctx) error {
	var req dto.GapRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if len(req.VeteranSkills) == 0 {
		return response.Error(c, fiber.StatusBadRequest, "Please provide veteran skills", nil)
	}

	analysis, err := h.uc.AnalyzeGaps(c.Context(), req.VeteranSkills, req.TargetOccupationCode)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GapResponse{
		Analysis: dto.FromAnalysis(analysis),
	})
}

func (h *GapHandler) Readiness(c fiber.Ctx) error {
	skills := splitSkillsParam(c.Query("skills"))
	if len(skills) == 0 {
		return response.Error(c, fiber.StatusBadRequest, "Please provide at least one skill", nil)
	}

	report, err := h.uc.Readiness(c.Context(), skills, c.Params("occupation_code"))
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromReadiness(report))
}

func (h *GapHandler) QuickWins(c fiber.Ctx) error {
	skills := splitSkillsParam(c.Query("skills"))

	wins, err := h.uc.QuickWins(c.Context(), skills, c.Params("occupation_code"), gap.DefaultQuickWins)
	if err != nil {
		return err
	}

	recs := dto.FromRecommendations(wins)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.QuickWinsResponse{
		Recommendations: recs,
		Count:           len(recs),
	})
}

func splitSkillsParam(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
