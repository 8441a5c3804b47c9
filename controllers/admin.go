package controllers

import (
	"errors"
	"strconv"

	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPendingVerifications lists professionals awaiting review together
// with their most recently uploaded verification document.
func GetPendingVerifications(c *fiber.Ctx) error {
	var professionals []models.Professional
	err := db.DB.Where("verification_status = ?", models.VerificationPending).
		Order("created_at DESC").
		Find(&professionals).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	entries := make([]fiber.Map, 0, len(professionals))
	for _, professional := range professionals {
		entry := fiber.Map{
			"professional_id":     professional.ID,
			"full_name":           professional.FullName,
			"email":               professional.Email,
			"category":            professional.Category,
			"verification_status": professional.VerificationStatus,
			"created_at":          professional.CreatedAt,
			"document":            nil,
		}

		var document models.VerificationDocument
		err := db.DB.Where("professional_id = ?", professional.ID).
			Order("created_at DESC").
			First(&document).Error
		if err == nil {
			entry["document"] = document
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error", "message": err.Error(),
			})
		}

		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{"status": "success", "data": entries})
}

// VerifyProfessional approves or rejects a pending professional.
func VerifyProfessional(c *fiber.Ctx) error {
	type VerifyInput struct {
		ProfessionalID uint   `json:"professional_id"`
		Status         string `json:"status"`
		Action         string `json:"action"`
	}

	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}

	decision := input.Status
	if decision == "" {
		decision = input.Action
	}
	if input.ProfessionalID == 0 || decision == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing required fields",
		})
	}

	var newStatus models.VerificationStatus
	switch decision {
	case "approved", "approve":
		newStatus = models.VerificationVerified
	case "rejected", "reject":
		newStatus = models.VerificationRejected
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid status",
		})
	}

	result := db.DB.Model(&models.Professional{}).
		Where("id = ?", input.ProfessionalID).
		Update("verification_status", newStatus)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error", "message": "Professional not found",
		})
	}

	verb := "approved"
	if newStatus == models.VerificationRejected {
		verb = "rejected"
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Professional " + verb + " successfully",
	})
}

// GetAllUsers combines students and professionals for the admin dashboard.
func GetAllUsers(c *fiber.Ctx) error {
	var students []models.Student
	if err := db.DB.Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}
	var professionals []models.Professional
	if err := db.DB.Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	users := make([]fiber.Map, 0, len(students)+len(professionals))
	for _, student := range students {
		users = append(users, fiber.Map{
			"id":         student.ID,
			"full_name":  student.FullName,
			"email":      student.Email,
			"user_type":  "Student",
			"created_at": student.CreatedAt,
		})
	}
	for _, professional := range professionals {
		users = append(users, fiber.Map{
			"id":                  professional.ID,
			"full_name":           professional.FullName,
			"email":               professional.Email,
			"user_type":           "Professional",
			"verification_status": professional.VerificationStatus,
			"created_at":          professional.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": users})
}

// GetAdminMessages returns the merged inbox for one admin, newest first,
// bounded by the limit parameter.
func GetAdminMessages(c *fiber.Ctx) error {
	admin, err := findAdminByUsername(c.Query("admin"))
	if err != nil {
		return adminLookupFailed(c, err)
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "Invalid limit",
			})
		}
		limit = parsed
	}

	var messages []models.AdminMessage
	err = db.DB.Preload("Student").Preload("Professional").
		Where("admin_id = ?", admin.ID).
		Order("sent_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	entries := make([]fiber.Map, 0, len(messages))
	for i := range messages {
		message := &messages[i]
		entry := fiber.Map{
			"student_id":      message.StudentID,
			"professional_id": message.ProfessionalID,
			"message_text":    message.MessageText,
			"sent_at":         message.SentAt,
			"sender":          message.Sender,
			"sender_label":    message.SenderLabel(),
		}
		if message.Student != nil {
			entry["student_name"] = message.Student.FullName
		}
		if message.Professional != nil {
			entry["professional_name"] = message.Professional.FullName
		}
		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{"status": "success", "data": entries})
}

// SendAdminMessage appends an admin-sent message to a student or
// professional thread.
func SendAdminMessage(c *fiber.Ctx) error {
	type MessageInput struct {
		AdminUsername string `json:"admin_username"`
		TargetType    string `json:"target_type"`
		TargetID      uint   `json:"target_id"`
		MessageText   string `json:"message_text"`
	}

	input := new(MessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}
	if input.TargetType == "" || input.TargetID == 0 || input.MessageText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing target_type, target_id, or message_text",
		})
	}

	admin, err := findAdminByUsername(input.AdminUsername)
	if err != nil {
		return adminLookupFailed(c, err)
	}

	message := models.AdminMessage{
		AdminID:     admin.ID,
		MessageText: input.MessageText,
		Sender:      models.SenderAdmin,
	}
	switch input.TargetType {
	case "student":
		message.StudentID = &input.TargetID
	case "professional":
		message.ProfessionalID = &input.TargetID
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid target_type",
		})
	}

	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
