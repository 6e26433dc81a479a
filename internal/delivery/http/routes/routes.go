package routes

import (
	"github.com/gofiber/fiber/v3"

	"talent-screen/internal/delivery/http/handler"
	v1 "talent-screen/internal/delivery/http/routes/v1"
	"talent-screen/internal/ws"
)

type Registry struct {
	deps   v1.Deps
	health *handler.HealthHandler
	wsh    *ws.Handler
}

func NewRegistry(deps v1.Deps) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(),
		wsh:    ws.NewHandler(deps.Hub, deps.Logger),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/ws", r.wsh.HandleScreeningsWS)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
