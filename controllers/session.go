package controllers

import (
	"errors"
	"time"

	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// GetSlots lists every fixed session time for a professional on a date,
// each flagged booked or open.
func GetSlots(c *fiber.Ctx) error {
	professionalID, ok := queryID(c, "professional")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing professional parameter",
		})
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid date format",
		})
	}

	var rows []models.ScheduleSlot
	if err := db.DB.Where("professional_id = ? AND available_date = ?", professionalID, date).Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"slots":  models.ProjectAvailability(rows),
	})
}

// BookSession converts an open slot into a booked appointment. Exactly one
// of two concurrent bookings for the same slot succeeds.
func BookSession(c *fiber.Ctx) error {
	type BookingInput struct {
		StudentID      uint   `json:"student_id"`
		ProfessionalID uint   `json:"professional_id"`
		Date           string `json:"date"`
		Time           string `json:"time"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}
	if input.StudentID == 0 || input.ProfessionalID == 0 || input.Date == "" || input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing required fields",
		})
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid date format",
		})
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid time format",
		})
	}

	err = models.BookSession(db.DB, input.StudentID, input.ProfessionalID, date, input.Time)
	if err != nil {
		if errors.Is(err, models.ErrSlotTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"status": "error", "message": "Slot already booked",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
