package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/betterspace/better-space-api/config"

	"github.com/betterspace/better-space-api/cron"

	"github.com/betterspace/better-space-api/db"

	"github.com/betterspace/better-space-api/otp"

	"github.com/betterspace/better-space-api/routes"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	app := fiber.New()
	db.Init()
	db.Migrate()
	db.EnsureAdmin()

	if err := otp.Init(); err != nil {
		log.Fatal("Failed to initialize OTP store: ", err)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Better Space API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupSessionRoutes(app)
	routes.SetupStudentRoutes(app)
	routes.SetupProfessionalRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupMessageRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":" + config.C.Port))
}
