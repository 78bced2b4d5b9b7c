package routes

import (
	"talent-crm/internal/delivery/http/handler"
	"talent-crm/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health    *handler.HealthHandler
	Directory *handler.DirectoryHandler
	Match     *handler.MatchHandler
	Pipeline  *handler.PipelineHandler
	Tasks     *handler.TaskHandler
	Dashboard *handler.DashboardHandler
	WS        *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	if r.Directory != nil {
		r.Directory.RegisterRoutes(v1)
	}
	if r.Match != nil {
		r.Match.RegisterRoutes(v1)
	}
	if r.Pipeline != nil {
		r.Pipeline.RegisterRoutes(v1)
	}
	if r.Tasks != nil {
		r.Tasks.RegisterRoutes(v1)
	}
	if r.Dashboard != nil {
		r.Dashboard.RegisterRoutes(v1)
	}

	if r.WS != nil {
		app.Get("/ws/dashboard", r.WS.HandleDashboardWS)
	}
}
