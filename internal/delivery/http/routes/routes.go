package routes

import (
	"jobhunt/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every HTTP handler onto the Fiber app.
type Registry struct {
	health  *handler.HealthHandler
	auth    *handler.AuthHandler
	jobs    *handler.JobsHandler
	profile *handler.ProfileHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	jobs *handler.JobsHandler,
	profile *handler.ProfileHandler,
) *Registry {
	return &Registry{health: health, auth: auth, jobs: jobs, profile: profile}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.auth.RegisterRoutes(v1.Group("/auth"))
	r.jobs.RegisterRoutes(v1)
	r.profile.RegisterRoutes(v1)
}
