package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/delivery/http/dto"
	"github.com/aravhawk/vetpath/internal/pkg/response"
	"github.com/aravhawk/vetpath/internal/usecase"
)

type ParseHandler struct {
	uc usecase.ParseUsecase
}

func NewParseHandler(uc usecase.ParseUsecase) *ParseHandler {
	return &ParseHandler{uc: uc}
}

func (h *ParseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/parse", h.Parse)
}

func (h *ParseHandler) Parse(c fiber.Ctx) error {
	var req dto.ParseRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if len(strings.TrimSpace(req.Experience)) < 10 {
		return response.Error(c, fiber.StatusBadRequest, "Please provide a more detailed experience description", nil)
	}

	skills, err := h.uc.ParseExperience(c.Context(), req.Experience)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ParseResponse{
		Skills:  dto.FromParsedSkills(skills),
		RawText: req.Experience,
	})
}
