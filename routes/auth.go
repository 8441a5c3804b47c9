package routes

import (
	"github.com/betterspace/better-space-api/controllers"
	"github.com/betterspace/better-space-api/middleware"
	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes configures registration, login and OTP routes
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/register", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/verify-otp", controllers.VerifyOTP)
	api.Post("/resend-otp", controllers.ResendOTP)

	api.Get("/user", controllers.GetUser)
	api.Get("/me", middleware.Protected(), controllers.Me)
	api.Get("/test-db", controllers.TestDatabase)
}
