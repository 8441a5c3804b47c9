package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlotStatus string

const (
	SlotOpen   SlotStatus = "Open"
	SlotBooked SlotStatus = "Booked"
)

// SessionTimes is the fixed set of daily bookable times. A date/time pair
// with no ScheduleSlot row is implicitly open.
var SessionTimes = []string{"09:00", "13:00", "16:00"}

// ErrSlotTaken is returned when a booking targets an already-booked slot.
var ErrSlotTaken = errors.New("slot already booked")

// ScheduleSlot is one bookable (professional, date, time) unit. The only
// transition is Open → Booked; there is no cancellation path.
type ScheduleSlot struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	ProfessionalID uint       `json:"professional_id" gorm:"uniqueIndex:idx_professional_date_time"`
	AvailableDate  time.Time  `json:"available_date" gorm:"type:date;uniqueIndex:idx_professional_date_time"`
	TimeSlot       string     `json:"time_slot" gorm:"uniqueIndex:idx_professional_date_time"`
	Status         SlotStatus `json:"status" gorm:"default:Open"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SlotAvailability is one entry of the public slot listing.
type SlotAvailability struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// ProjectAvailability reports every fixed session time, marked booked iff a
// matching Booked row exists.
func ProjectAvailability(rows []ScheduleSlot) []SlotAvailability {
	statusByTime := make(map[string]SlotStatus, len(rows))
	for _, row := range rows {
		statusByTime[row.TimeSlot] = row.Status
	}

	slots := make([]SlotAvailability, 0, len(SessionTimes))
	for _, t := range SessionTimes {
		slots = append(slots, SlotAvailability{
			Time:   t,
			Booked: statusByTime[t] == SlotBooked,
		})
	}
	return slots
}

// CombineDateTime merges a calendar date with an "HH:MM" time of day into
// the session timestamp stored on the appointment.
func CombineDateTime(date time.Time, timeSlot string) (time.Time, error) {
	t, err := time.Parse("15:04", timeSlot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// BookSession atomically converts an open slot into a booked appointment.
//
// The slot row is locked FOR UPDATE so concurrent bookings of the same
// (professional, date, time) serialize; when both callers race on a slot
// that does not exist yet, the unique index on the triple makes the loser's
// insert fail, which is reported as ErrSlotTaken. Everything runs in one
// transaction: any failure leaves the slot exactly as it was.
func BookSession(gdb *gorm.DB, studentID, professionalID uint, date time.Time, timeSlot string) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var slot ScheduleSlot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("professional_id = ? AND available_date = ? AND time_slot = ?", professionalID, date, timeSlot).
			Take(&slot).Error

		switch {
		case err == nil:
			if slot.Status == SlotBooked {
				return ErrSlotTaken
			}
			slot.Status = SlotBooked
			if err := tx.Save(&slot).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First booking opens and fills the slot in one step.
			slot = ScheduleSlot{
				ProfessionalID: professionalID,
				AvailableDate:  date,
				TimeSlot:       timeSlot,
				Status:         SlotBooked,
			}
			if err := tx.Create(&slot).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrSlotTaken
				}
				return err
			}
		default:
			return err
		}

		sessionDate, err := CombineDateTime(date, timeSlot)
		if err != nil {
			return err
		}

		appointment := Appointment{
			ScheduleSlotID: slot.ID,
			StudentID:      studentID,
			ProfessionalID: professionalID,
			SessionDate:    sessionDate,
		}
		return tx.Create(&appointment).Error
	})
}
