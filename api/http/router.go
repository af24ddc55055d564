package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmadblivin/studybuddy/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// Everything except /login and the probes sits behind the auth gate.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	profile *handlers.ProfileHandler,
	assignments *handlers.AssignmentHandler,
	chat *handlers.ChatHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	// Entry point that establishes identity; intentionally unauthenticated.
	api.Post("/login", auth.Login)

	protected := api.Group("", authMW)
	protected.Get("/profile", profile.Get)
	protected.Put("/profile", profile.Update)

	protected.Get("/assignments", assignments.List)
	protected.Post("/assignments", assignments.Create)
	protected.Delete("/assignments/:id", assignments.Delete)

	protected.Get("/chat", chat.List)
	protected.Post("/chat", chat.Post)
}
