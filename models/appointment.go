package models

import (
	"time"
)

// Appointment exists only for a slot whose status is Booked; exactly one
// appointment per booked slot.
type Appointment struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	ScheduleSlotID uint         `json:"schedule_slot_id"`
	ScheduleSlot   ScheduleSlot `json:"schedule_slot,omitempty" gorm:"foreignKey:ScheduleSlotID"`
	StudentID      uint         `json:"student_id"`
	Student        Student      `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	SessionDate    time.Time    `json:"session_date"`
	CreatedAt      time.Time    `json:"created_at"`
}
