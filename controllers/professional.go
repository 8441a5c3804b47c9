package controllers

import (
	"errors"
	"math"
	"strconv"

	"github.com/betterspace/better-space-api/config"
	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/betterspace/better-space-api/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProfessionalProfile returns the professional row with their students,
// reviews and average rating.
func GetProfessionalProfile(c *fiber.Ctx) error {
	professionalID, ok := queryID(c, "user_id", "professional_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing user_id parameter",
		})
	}

	var professional models.Professional
	if err := db.DB.First(&professional, professionalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error", "message": "Professional not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	type studentSummary struct {
		StudentID    uint   `json:"student_id"`
		FullName     string `json:"full_name"`
		Email        string `json:"email"`
		SessionCount int64  `json:"session_count"`
	}
	var students []studentSummary
	err := db.DB.Table("students").
		Select("students.id AS student_id, students.full_name, students.email, COUNT(appointments.id) AS session_count").
		Joins("JOIN appointments ON appointments.student_id = students.id").
		Where("appointments.professional_id = ?", professionalID).
		Group("students.id").
		Order("students.full_name").
		Scan(&students).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	type reviewSummary struct {
		FeedbackID   uint   `json:"feedback_id"`
		StudentID    uint   `json:"student_id"`
		StudentName  string `json:"student_name"`
		Rating       int    `json:"rating"`
		FeedbackText string `json:"feedback_text"`
	}
	var reviews []reviewSummary
	err = db.DB.Table("feedback_ratings").
		Select("feedback_ratings.id AS feedback_id, feedback_ratings.student_id, students.full_name AS student_name, feedback_ratings.rating, feedback_ratings.feedback_text").
		Joins("JOIN students ON students.id = feedback_ratings.student_id").
		Where("feedback_ratings.professional_id = ?", professionalID).
		Order("feedback_ratings.id DESC").
		Scan(&reviews).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	var averageRating float64
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		averageRating = math.Round(float64(sum)/float64(len(reviews))*100) / 100
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"profile":        professional,
			"students":       students,
			"reviews":        reviews,
			"average_rating": averageRating,
		},
	})
}

// GetProfessionalMessages lists the students a professional has a
// conversation with, most recent first.
func GetProfessionalMessages(c *fiber.Ctx) error {
	professionalID, ok := queryID(c, "user_id", "professional_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing user_id parameter",
		})
	}

	type conversation struct {
		StudentID       uint   `json:"student_id"`
		FullName        string `json:"full_name"`
		LastMessageTime string `json:"last_message_time"`
	}
	var conversations []conversation
	err := db.DB.Table("messages").
		Select("messages.student_id, students.full_name, MAX(messages.sent_at) AS last_message_time").
		Joins("JOIN students ON students.id = messages.student_id").
		Where("messages.professional_id = ?", professionalID).
		Group("messages.student_id, students.full_name").
		Order("last_message_time DESC").
		Scan(&conversations).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": conversations})
}

// GetProfessionalSessions lists a professional's appointments, newest first.
func GetProfessionalSessions(c *fiber.Ctx) error {
	professionalID, ok := queryID(c, "user_id", "professional_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing user_id parameter",
		})
	}

	type sessionSummary struct {
		AppointmentID uint   `json:"appointment_id"`
		SessionDate   string `json:"session_date"`
		StudentID     uint   `json:"student_id"`
		StudentName   string `json:"student_name"`
		TimeSlot      string `json:"time_slot"`
	}
	var sessions []sessionSummary
	err := db.DB.Table("appointments").
		Select("appointments.id AS appointment_id, appointments.session_date, students.id AS student_id, students.full_name AS student_name, schedule_slots.time_slot").
		Joins("JOIN students ON students.id = appointments.student_id").
		Joins("JOIN schedule_slots ON schedule_slots.id = appointments.schedule_slot_id").
		Where("appointments.professional_id = ?", professionalID).
		Order("appointments.session_date DESC").
		Scan(&sessions).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": sessions})
}

// SubmitVerification accepts a multipart credential upload: the file is
// stored under the upload root, a document row is inserted and the
// professional's category is updated, all in one transaction.
func SubmitVerification(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "No file uploaded",
		})
	}

	rawID := c.FormValue("user_id")
	if rawID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "User ID required",
		})
	}
	professionalID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid user ID",
		})
	}

	category := c.FormValue("specialization")
	if category == "" {
		category = models.DefaultCategory
	}

	var professional models.Professional
	if err := db.DB.First(&professional, professionalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error", "message": "Professional not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	if err := utils.EnsureUploadDir(config.C.UploadDir); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}
	path, err := utils.DocumentPath(config.C.UploadDir, professional.ID, file.Filename)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}
	if err := c.SaveFile(file, path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		document := models.VerificationDocument{
			ProfessionalID: professional.ID,
			FilePath:       path,
			OriginalName:   file.Filename,
		}
		if err := tx.Create(&document).Error; err != nil {
			return err
		}
		return tx.Model(&professional).Update("category", category).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Documents submitted successfully. Awaiting verification.",
	})
}

// GetVerificationStatus reports where a professional stands in the review
// queue.
func GetVerificationStatus(c *fiber.Ctx) error {
	professionalID, ok := queryID(c, "user_id", "professional_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing user_id parameter",
		})
	}

	var professional models.Professional
	if err := db.DB.First(&professional, professionalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error", "message": "Professional not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"verification_status": professional.VerificationStatus,
			"category":            professional.Category,
		},
	})
}

// ListProfessionals returns the public directory of verified professionals.
func ListProfessionals(c *fiber.Ctx) error {
	var professionals []models.Professional
	err := db.DB.Where("verification_status = ?", models.VerificationVerified).
		Order("full_name").
		Find(&professionals).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": professionals})
}

// GetProfessionalAdminMessages returns the professional↔admin thread in
// sent order.
func GetProfessionalAdminMessages(c *fiber.Ctx) error {
	professionalID, ok := queryID(c, "professional_id", "user_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing professional_id parameter",
		})
	}

	admin, err := findAdminByUsername(c.Query("admin"))
	if err != nil {
		return adminLookupFailed(c, err)
	}

	var messages []models.AdminMessage
	err = db.DB.Where("professional_id = ? AND admin_id = ?", professionalID, admin.ID).
		Order("sent_at ASC").
		Find(&messages).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	var lastMessageTime interface{}
	if len(messages) > 0 {
		lastMessageTime = messages[len(messages)-1].SentAt
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"messages":          messages,
			"last_message_time": lastMessageTime,
		},
	})
}

// SendProfessionalAdminMessage appends a professional-sent message to the
// thread.
func SendProfessionalAdminMessage(c *fiber.Ctx) error {
	type MessageInput struct {
		ProfessionalID uint   `json:"professional_id"`
		UserID         uint   `json:"user_id"`
		AdminUsername  string `json:"admin_username"`
		MessageText    string `json:"message_text"`
	}

	input := new(MessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}

	professionalID := input.ProfessionalID
	if professionalID == 0 {
		professionalID = input.UserID
	}
	if professionalID == 0 || input.MessageText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing professional_id or message_text",
		})
	}

	admin, err := findAdminByUsername(input.AdminUsername)
	if err != nil {
		return adminLookupFailed(c, err)
	}

	message := models.AdminMessage{
		AdminID:        admin.ID,
		ProfessionalID: &professionalID,
		MessageText:    input.MessageText,
		Sender:         models.SenderProfessional,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
