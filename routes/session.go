package routes

import (
	"github.com/betterspace/better-space-api/controllers"
	"github.com/gofiber/fiber/v2"
)

// SetupSessionRoutes configures slot listing and booking routes
func SetupSessionRoutes(app *fiber.App) {
	sessions := app.Group("/api/sessions")

	sessions.Get("/slots", controllers.GetSlots)
	sessions.Post("/", controllers.BookSession)
}
