package models

import (
	"time"
)

type SenderRole string

const (
	SenderStudent      SenderRole = "Student"
	SenderProfessional SenderRole = "Professional"
	SenderAdmin        SenderRole = "Admin"
)

// Message is one entry of a student↔professional conversation, ordered by
// SentAt.
type Message struct {
	ID             uint         `json:"message_id" gorm:"primaryKey"`
	StudentID      uint         `json:"student_id"`
	Student        Student      `json:"-" gorm:"foreignKey:StudentID"`
	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `json:"-" gorm:"foreignKey:ProfessionalID"`
	MessageText    string       `json:"message_text" gorm:"not null"`
	Sender         SenderRole   `json:"sender"`
	SentAt         time.Time    `json:"sent_at" gorm:"autoCreateTime"`
}
