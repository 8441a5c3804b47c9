package routes

import (
	"github.com/betterspace/better-space-api/controllers"
	"github.com/gofiber/fiber/v2"
)

// SetupProfessionalRoutes configures all professional view routes
func SetupProfessionalRoutes(app *fiber.App) {
	professional := app.Group("/api/professional")

	professional.Get("/profile", controllers.GetProfessionalProfile)
	professional.Get("/messages", controllers.GetProfessionalMessages)
	professional.Get("/sessions", controllers.GetProfessionalSessions)
	professional.Post("/submit-verification", controllers.SubmitVerification)
	professional.Get("/verification-status", controllers.GetVerificationStatus)
	professional.Get("/admin-messages", controllers.GetProfessionalAdminMessages)
	professional.Post("/admin-messages", controllers.SendProfessionalAdminMessage)

	app.Get("/api/professionals", controllers.ListProfessionals)
}
