package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/delivery/http/dto"
	"github.com/aravhawk/vetpath/internal/pkg/response"
	"github.com/aravhawk/vetpath/internal/usecase"
)

const defaultOccupationLimit = 20

type OccupationHandler struct {
	uc usecase.OccupationUsecase
}

func NewOccupationHandler(uc usecase.OccupationUsecase) *OccupationHandler {
	return &OccupationHandler{uc: uc}
}

func (h *OccupationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/career/:occupation_code", h.Career)
	r.Get("/occupations", h.List)
	r.Get("/industries", h.Industries)
	r.Get("/mos-codes", h.MOSCodes)
}

func (h *OccupationHandler) Career(c fiber.Ctx) error {
	detail, err := h.uc.GetCareer(c.Context(), c.Params("occupation_code"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.FromCareerDetail(detail.Occupation, detail.RequiredSkills))
}

func (h *OccupationHandler) List(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", defaultOccupationLimit)
	if limit <= 0 || limit > 100 {
		limit = defaultOccupationLimit
	}

	items, err := h.uc.ListOccupations(c.Context(), c.Query("industry"), limit)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromOccupations(items))
}

func (h *OccupationHandler) Industries(c fiber.Ctx) error {
	items, err := h.uc.ListIndustries(c.Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []string{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *OccupationHandler) MOSCodes(c fiber.Ctx) error {
	items, err := h.uc.ListMOSCodes(c.Context(), c.Query("branch"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMOSCodes(items))
}
