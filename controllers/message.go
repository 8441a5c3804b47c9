package controllers

import (
	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/gofiber/fiber/v2"
)

// GetConversation returns the student↔professional thread in sent order.
func GetConversation(c *fiber.Ctx) error {
	studentID, ok := queryID(c, "student_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing student_id parameter",
		})
	}
	professionalID, ok := queryID(c, "professional_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing professional_id parameter",
		})
	}

	var messages []models.Message
	err := db.DB.Where("student_id = ? AND professional_id = ?", studentID, professionalID).
		Order("sent_at ASC").
		Find(&messages).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": messages})
}

// SendMessage appends one message to a student↔professional conversation.
func SendMessage(c *fiber.Ctx) error {
	type MessageInput struct {
		StudentID      uint   `json:"student_id"`
		ProfessionalID uint   `json:"professional_id"`
		Sender         string `json:"sender"`
		MessageText    string `json:"message_text"`
	}

	input := new(MessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}
	if input.StudentID == 0 || input.ProfessionalID == 0 || input.Sender == "" || input.MessageText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing required fields",
		})
	}

	sender := models.SenderRole(input.Sender)
	if sender != models.SenderStudent && sender != models.SenderProfessional {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid sender",
		})
	}

	message := models.Message{
		StudentID:      input.StudentID,
		ProfessionalID: input.ProfessionalID,
		MessageText:    input.MessageText,
		Sender:         sender,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
