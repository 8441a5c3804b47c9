package controllers

import (
	"github.com/betterspace/better-space-api/db"
	"github.com/gofiber/fiber/v2"
)

// TestDatabase probes the database connection.
func TestDatabase(c *fiber.Ctx) error {
	sqlDB, err := db.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": "Database connection failed",
		})
	}
	return c.JSON(fiber.Map{
		"status": "success", "message": "Database connected successfully!",
	})
}
