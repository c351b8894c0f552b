package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/config"
	"github.com/aravhawk/vetpath/internal/delivery/http/handler"
	"github.com/aravhawk/vetpath/internal/delivery/http/middleware"
	"github.com/aravhawk/vetpath/internal/delivery/http/routes"
	"github.com/aravhawk/vetpath/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	go c.Hub.Run()

	reg := &routes.Registry{
		Health:     handler.NewHealthHandler(c.DB, c.AI),
		Parse:      handler.NewParseHandler(c.Parse),
		Match:      handler.NewMatchHandler(c.Match, c.Parse),
		Gap:        handler.NewGapHandler(c.Gap),
		Resume:     handler.NewResumeHandler(c.Resume),
		Occupation: handler.NewOccupationHandler(c.Career),
		Admin:      handler.NewAdminHandler(c.Auth, c.Admin),
		Auth:       middleware.NewAuthMiddleware(c.JWT),
		WS:         ws.NewHandler(c.Hub, logger),
	}
	reg.Register(f)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
