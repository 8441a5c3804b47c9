package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/betterspace/better-space-api/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for session reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for sessions in the next hour
	_, err := c.AddFunc("* * * * *", sendSessionReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for session reminders")
}

// sendSessionReminders checks for upcoming sessions and emails the students
func sendSessionReminders() {
	var appointments []models.Appointment
	now := time.Now()
	// Look for sessions starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Student").Preload("Professional").
		Where("session_date BETWEEN ? AND ?", startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Student.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := "Reminder: Upcoming Session - Better Space"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your session scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Professional:</strong> %s</li>
			<li><strong>Category:</strong> %s</li>
			<li><strong>Session Time:</strong> %s</li>
		</ul>
		<p>Please be on time. If you need to reschedule, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Better Space Team</p>
	`, appointment.Student.FullName, appointment.Professional.FullName,
		appointment.Professional.Category,
		appointment.SessionDate.Format("2006-01-02 15:04:05"))

	return utils.SendEmail(appointment.Student.Email, subject, body)
}
