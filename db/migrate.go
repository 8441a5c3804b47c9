package db

import (
	"fmt"
	"log"

	"github.com/betterspace/better-space-api/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.Student{},
		&models.Professional{},
		&models.Admin{},
		&models.VerificationDocument{},
		&models.ScheduleSlot{},
		&models.Appointment{},
		&models.Message{},
		&models.AdminMessage{},
		&models.FeedbackRating{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
