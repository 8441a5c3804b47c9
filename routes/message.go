package routes

import (
	"github.com/betterspace/better-space-api/controllers"
	"github.com/gofiber/fiber/v2"
)

// SetupMessageRoutes configures the student↔professional messaging routes
func SetupMessageRoutes(app *fiber.App) {
	messages := app.Group("/api/messages")

	messages.Get("/", controllers.GetConversation)
	messages.Post("/", controllers.SendMessage)
}
