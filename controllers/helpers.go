package controllers

import (
	"errors"
	"strconv"

	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// queryID returns the first of the given query parameters that is present,
// parsed as an id.
func queryID(c *fiber.Ctx, keys ...string) (uint, bool) {
	for _, key := range keys {
		if raw := c.Query(key); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return 0, false
			}
			return uint(id), true
		}
	}
	return 0, false
}

// findAdminByUsername resolves an admin identity. Unknown usernames are an
// error; admin accounts are only created by the startup bootstrap.
func findAdminByUsername(username string) (*models.Admin, error) {
	if username == "" {
		username = "admin"
	}
	var admin models.Admin
	if err := db.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func errStatus(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// adminLookupFailed writes the response for a failed admin lookup: unknown
// usernames get a 404, storage errors surface as-is.
func adminLookupFailed(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "Admin not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status": "error", "message": err.Error(),
	})
}
