package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/database"
)

type HealthHandler struct {
	db database.DB
	ai interface{ Available() bool }
}

func NewHealthHandler(db database.DB, ai interface{ Available() bool }) *HealthHandler {
	return &HealthHandler{db: db, ai: ai}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "VetPath API",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	dbStatus := "connected"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "unavailable"
		}
	} else {
		dbStatus = "unavailable"
	}

	aiEnabled := h.ai != nil && h.ai.Available()

	return c.JSON(fiber.Map{
		"status":     "healthy",
		"ai_enabled": aiEnabled,
		"database":   dbStatus,
	})
}
