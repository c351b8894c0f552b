package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/delivery/http/dto"
	"github.com/aravhawk/vetpath/internal/pkg/response"
	"github.com/aravhawk/vetpath/internal/usecase"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/resume", h.Generate)
}

func (h *ResumeHandler) Generate(c fiber.Ctx) error {
	var req dto.ResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if strings.TrimSpace(req.TargetJob) == "" {
		return response.Error(c, fiber.StatusBadRequest, "Please specify a target job", nil)
	}

	text, err := h.uc.GenerateResume(c.Context(), usecase.ResumeInput{
		Profile:       req.Profile.ToDomain(),
		Parsed:        req.ParsedSkills.ToDomain(),
		TargetJob:     req.TargetJob,
		TargetCompany: req.TargetCompany,
	})
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ResumeResponse{
		ResumeText: text,
		Format:     "markdown",
	})
}
