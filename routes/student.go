package routes

import (
	"github.com/betterspace/better-space-api/controllers"
	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes configures all student view routes
func SetupStudentRoutes(app *fiber.App) {
	student := app.Group("/api/student")

	student.Get("/profile", controllers.GetStudentProfile)
	student.Get("/messages", controllers.GetStudentMessages)
	student.Get("/sessions", controllers.GetStudentSessions)
	student.Post("/reviews", controllers.AddReview)
	student.Get("/admin-messages", controllers.GetStudentAdminMessages)
	student.Post("/admin-messages", controllers.SendStudentAdminMessage)
}
