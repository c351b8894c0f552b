package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/delivery/http/dto"
	"github.com/aravhawk/vetpath/internal/pkg/response"
	"github.com/aravhawk/vetpath/internal/usecase"
)

type AdminHandler struct {
	auth  usecase.AuthUsecase
	admin usecase.AdminUsecase
}

func NewAdminHandler(auth usecase.AuthUsecase, admin usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{auth: auth, admin: admin}
}

// RegisterRoutes wires the public login route; RegisterProtected wires
// the routes behind the auth middleware.
func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/admin/login", h.Login)
}

func (h *AdminHandler) RegisterProtected(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/admin/reseed", h.Reseed)
}

func (h *AdminHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	token, err := h.auth.Login(c.Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

func (h *AdminHandler) Reseed(c fiber.Ctx) error {
	if err := h.admin.Reseed(c.Context()); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Reseed completed", nil)
}
