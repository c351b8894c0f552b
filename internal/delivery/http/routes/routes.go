package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aravhawk/vetpath/internal/delivery/http/handler"
	"github.com/aravhawk/vetpath/internal/delivery/http/middleware"
	"github.com/aravhawk/vetpath/internal/ws"
)

type Registry struct {
	Health     *handler.HealthHandler
	Parse      *handler.ParseHandler
	Match      *handler.MatchHandler
	Gap        *handler.GapHandler
	Resume     *handler.ResumeHandler
	Occupation *handler.OccupationHandler
	Admin      *handler.AdminHandler

	Auth *middleware.AuthMiddleware
	WS   *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.Parse.RegisterRoutes(api)
	r.Match.RegisterRoutes(api)
	r.Gap.RegisterRoutes(api)
	r.Resume.RegisterRoutes(api)
	r.Occupation.RegisterRoutes(api)
	r.Admin.RegisterRoutes(api)

	protected := api.Group("", r.Auth.Middleware())
	r.Admin.RegisterProtected(protected)

	if r.WS != nil {
		app.Get("/ws/admin", r.WS.HandleAdminWS)
	}
}
