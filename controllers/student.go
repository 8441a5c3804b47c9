package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ratingValue accepts a rating sent either as a JSON number or as a
// numeric string.
type ratingValue struct {
	value int
	set   bool
}

func (r *ratingValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	r.value = n
	r.set = true
	return nil
}

// GetStudentProfile returns the student row together with the verified
// professionals (with per-student session counts) and the student's reviews.
func GetStudentProfile(c *fiber.Ctx) error {
	studentID, ok := queryID(c, "student_id", "user_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing student_id parameter",
		})
	}

	var student models.Student
	if err := db.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error", "message": "Student not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	// Only Verified professionals are listed publicly.
	type professionalSummary struct {
		ProfessionalID uint   `json:"professional_id"`
		FullName       string `json:"full_name"`
		Category       string `json:"category"`
		SessionCount   int64  `json:"session_count"`
	}
	var professionals []professionalSummary
	err := db.DB.Table("professionals").
		Select("professionals.id AS professional_id, professionals.full_name, professionals.category, COUNT(appointments.id) AS session_count").
		Joins("LEFT JOIN appointments ON appointments.professional_id = professionals.id AND appointments.student_id = ?", studentID).
		Where("professionals.verification_status = ?", models.VerificationVerified).
		Group("professionals.id").
		Order("professionals.full_name").
		Scan(&professionals).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	type reviewSummary struct {
		FeedbackID     uint   `json:"feedback_id"`
		ProfessionalID uint   `json:"professional_id"`
		FullName       string `json:"full_name"`
		Rating         int    `json:"rating"`
		FeedbackText   string `json:"feedback_text"`
	}
	var reviews []reviewSummary
	err = db.DB.Table("feedback_ratings").
		Select("feedback_ratings.id AS feedback_id, feedback_ratings.professional_id, professionals.full_name, feedback_ratings.rating, feedback_ratings.feedback_text").
		Joins("JOIN professionals ON professionals.id = feedback_ratings.professional_id").
		Where("feedback_ratings.student_id = ?", studentID).
		Order("feedback_ratings.id DESC").
		Scan(&reviews).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"profile":       student,
			"professionals": professionals,
			"reviews":       reviews,
		},
	})
}

// GetStudentMessages lists the professionals a student has a conversation
// with, most recent first.
func GetStudentMessages(c *fiber.Ctx) error {
	studentID, ok := queryID(c, "student_id", "user_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing student_id parameter",
		})
	}

	type conversation struct {
		ProfessionalID  uint   `json:"professional_id"`
		FullName        string `json:"full_name"`
		LastMessageTime string `json:"last_message_time"`
	}
	var conversations []conversation
	err := db.DB.Table("messages").
		Select("messages.professional_id, professionals.full_name, MAX(messages.sent_at) AS last_message_time").
		Joins("JOIN professionals ON professionals.id = messages.professional_id").
		Where("messages.student_id = ?", studentID).
		Group("messages.professional_id, professionals.full_name").
		Order("last_message_time DESC").
		Scan(&conversations).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": conversations})
}

// GetStudentSessions lists a student's appointments, newest first.
func GetStudentSessions(c *fiber.Ctx) error {
	studentID, ok := queryID(c, "student_id", "user_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing student_id parameter",
		})
	}

	type sessionSummary struct {
		AppointmentID  uint   `json:"appointment_id"`
		SessionDate    string `json:"session_date"`
		ProfessionalID uint   `json:"professional_id"`
		FullName       string `json:"full_name"`
		Category       string `json:"category"`
		TimeSlot       string `json:"time_slot"`
	}
	var sessions []sessionSummary
	err := db.DB.Table("appointments").
		Select("appointments.id AS appointment_id, appointments.session_date, professionals.id AS professional_id, professionals.full_name, professionals.category, schedule_slots.time_slot").
		Joins("JOIN professionals ON professionals.id = appointments.professional_id").
		Joins("JOIN schedule_slots ON schedule_slots.id = appointments.schedule_slot_id").
		Where("appointments.student_id = ?", studentID).
		Order("appointments.session_date DESC").
		Scan(&sessions).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": sessions})
}

// AddReview records a 1–5 rating, gated on prior session history with the
// professional.
func AddReview(c *fiber.Ctx) error {
	type ReviewInput struct {
		StudentID      uint        `json:"student_id"`
		UserID         uint        `json:"user_id"`
		ProfessionalID uint        `json:"professional_id"`
		Rating         ratingValue `json:"rating"`
		FeedbackText   string      `json:"feedback_text"`
	}

	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Invalid rating",
		})
	}

	studentID := input.StudentID
	if studentID == 0 {
		studentID = input.UserID
	}
	if studentID == 0 || input.ProfessionalID == 0 || !input.Rating.set {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing required fields",
		})
	}
	if input.Rating.value < 1 || input.Rating.value > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Rating must be between 1 and 5",
		})
	}

	review := models.FeedbackRating{
		StudentID:      studentID,
		ProfessionalID: input.ProfessionalID,
		Rating:         input.Rating.value,
		FeedbackText:   input.FeedbackText,
	}

	hasSession, err := review.HasPriorAppointment(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}
	if !hasSession {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error", "message": "You can only review professionals you have had sessions with",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// GetStudentAdminMessages returns the student↔admin thread in sent order.
func GetStudentAdminMessages(c *fiber.Ctx) error {
	studentID, ok := queryID(c, "student_id", "user_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing student_id parameter",
		})
	}

	admin, err := findAdminByUsername(c.Query("admin"))
	if err != nil {
		return adminLookupFailed(c, err)
	}

	var messages []models.AdminMessage
	err = db.DB.Where("student_id = ? AND admin_id = ?", studentID, admin.ID).
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

// SendStudentAdminMessage appends a student-sent message to the thread.
func SendStudentAdminMessage(c *fiber.Ctx) error {
	type MessageInput struct {
		StudentID     uint   `json:"student_id"`
		UserID        uint   `json:"user_id"`
		AdminUsername string `json:"admin_username"`
		MessageText   string `json:"message_text"`
	}

	input := new(MessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Cannot parse JSON",
		})
	}

	studentID := input.StudentID
	if studentID == 0 {
		studentID = input.UserID
	}
	if studentID == 0 || input.MessageText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error", "message": "Missing student_id or message_text",
		})
	}

	admin, err := findAdminByUsername(input.AdminUsername)
	if err != nil {
		return adminLookupFailed(c, err)
	}

	message := models.AdminMessage{
		AdminID:     admin.ID,
		StudentID:   &studentID,
		MessageText: input.MessageText,
		Sender:      models.SenderStudent,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}
