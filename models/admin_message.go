package models

import (
	"time"
)

// AdminMessage is one entry of an admin↔student or admin↔professional
// thread. Exactly one of StudentID/ProfessionalID is set.
type AdminMessage struct {
	ID             uint          `json:"admin_message_id" gorm:"primaryKey"`
	AdminID        uint          `json:"admin_id"`
	Admin          Admin         `json:"-" gorm:"foreignKey:AdminID"`
	StudentID      *uint         `json:"student_id,omitempty"`
	Student        *Student      `json:"-" gorm:"foreignKey:StudentID"`
	ProfessionalID *uint         `json:"professional_id,omitempty"`
	Professional   *Professional `json:"-" gorm:"foreignKey:ProfessionalID"`
	MessageText    string        `json:"message_text" gorm:"not null"`
	Sender         SenderRole    `json:"sender"`
	SentAt         time.Time     `json:"sent_at" gorm:"autoCreateTime"`
}

// SenderLabel derives the human-readable sender tag shown in the admin
// inbox.
func (m *AdminMessage) SenderLabel() string {
	switch m.Sender {
	case SenderStudent:
		if m.Student != nil {
			return "Student: " + m.Student.FullName
		}
		return "Student"
	case SenderProfessional:
		if m.Professional != nil {
			return "Professional: " + m.Professional.FullName
		}
		return "Professional"
	default:
		return "Admin"
	}
}
