package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// FeedbackRating is a 1–5 review a student leaves for a professional. A
// student may review the same professional more than once, but only after
// at least one appointment together.
type FeedbackRating struct {
	ID             uint         `json:"feedback_id" gorm:"primaryKey"`
	StudentID      uint         `json:"student_id"`
	Student        Student      `json:"-" gorm:"foreignKey:StudentID"`
	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `json:"-" gorm:"foreignKey:ProfessionalID"`
	Rating         int          `json:"rating" gorm:"not null"`
	FeedbackText   string       `json:"feedback_text"`
	CreatedAt      time.Time    `json:"created_at"`
}

func (r *FeedbackRating) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", r.Rating)
	}
	return nil
}

// HasPriorAppointment reports whether the student has had at least one
// session with the professional.
func (r *FeedbackRating) HasPriorAppointment(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Appointment{}).
		Where("student_id = ? AND professional_id = ?", r.StudentID, r.ProfessionalID).
		Count(&count).Error
	return count > 0, err
}
