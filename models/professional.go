package models

import (
	"time"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationRejected VerificationStatus = "Rejected"
)

// DefaultCategory is assigned at registration until the professional
// submits a specialization with their verification documents.
const DefaultCategory = "General Mental Health"

// Professional is only bookable, reviewable and publicly listed once an
// admin has set VerificationStatus to Verified.
type Professional struct {
	ID                 uint                   `json:"id" gorm:"primaryKey"`
	FullName           string                 `json:"full_name"`
	Email              string                 `json:"email" gorm:"unique"`
	Password           string                 `json:"-"`
	Category           string                 `json:"category"`
	VerificationStatus VerificationStatus     `json:"verification_status" gorm:"default:Pending"`
	Documents          []VerificationDocument `json:"documents,omitempty" gorm:"foreignKey:ProfessionalID"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}
