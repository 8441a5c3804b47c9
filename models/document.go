package models

import (
	"time"
)

// VerificationDocument records one uploaded credential file. A professional
// may upload several; the latest by CreatedAt is the active one.
type VerificationDocument struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ProfessionalID uint      `json:"professional_id"`
	FilePath       string    `json:"file_path"`
	OriginalName   string    `json:"original_name"`
	CreatedAt      time.Time `json:"uploaded_at"`
}
