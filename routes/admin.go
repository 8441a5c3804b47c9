package routes

import (
	"github.com/betterspace/better-space-api/controllers"
	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes configures the admin queue and inbox routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")

	admin.Get("/verifications", controllers.GetPendingVerifications)
	admin.Post("/verify-professional", controllers.VerifyProfessional)
	admin.Get("/users", controllers.GetAllUsers)
	admin.Get("/messages", controllers.GetAdminMessages)
	admin.Post("/messages", controllers.SendAdminMessage)
}
