package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-editor/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, enhance *handlers.EnhanceHandler, resumes *handlers.ResumesHandler) {
	app.Get("/", health.Root)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/ai-enhance", enhance.Enhance)

	app.Post("/save-resume", resumes.Save)
	app.Get("/resume/:id", resumes.Get)
	app.Get("/resumes", resumes.List)
	app.Post("/upload-resume", resumes.Upload)
}
