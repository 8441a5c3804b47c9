package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// UserKind tags which of the three account tables a row came from.
type UserKind string

const (
	KindStudent      UserKind = "student"
	KindProfessional UserKind = "professional"
	KindAdmin        UserKind = "admin"
)

// ParseUserKind normalizes a client-supplied user_type value.
func ParseUserKind(s string) (UserKind, bool) {
	switch UserKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindStudent:
		return KindStudent, true
	case KindProfessional:
		return KindProfessional, true
	case KindAdmin:
		return KindAdmin, true
	}
	return "", false
}

// Account is the role-tagged view of a user row, independent of which
// table it lives in.
type Account struct {
	Kind     UserKind `json:"user_type"`
	ID       uint     `json:"user_id"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	Password string   `json:"-"`

	// Only meaningful for professionals.
	VerificationStatus VerificationStatus `json:"verification_status,omitempty"`
}

// FirstName and LastName split FullName the way the original registration
// collected it.
func (a *Account) FirstName() string {
	name, _, _ := strings.Cut(a.FullName, " ")
	return name
}

func (a *Account) LastName() string {
	_, rest, _ := strings.Cut(a.FullName, " ")
	return rest
}

// FindAccountByEmail looks a user up across the student, professional and
// admin tables, in that priority order.
func FindAccountByEmail(gdb *gorm.DB, email string) (*Account, error) {
	var student Student
	err := gdb.Where("email = ?", email).First(&student).Error
	if err == nil {
		return &Account{Kind: KindStudent, ID: student.ID, FullName: student.FullName, Email: student.Email, Password: student.Password}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var professional Professional
	err = gdb.Where("email = ?", email).First(&professional).Error
	if err == nil {
		return &Account{
			Kind:               KindProfessional,
			ID:                 professional.ID,
			FullName:           professional.FullName,
			Email:              professional.Email,
			Password:           professional.Password,
			VerificationStatus: professional.VerificationStatus,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var admin Admin
	err = gdb.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return &Account{Kind: KindAdmin, ID: admin.ID, FullName: admin.Username, Email: admin.Email, Password: admin.Password}, nil
	}
	return nil, err
}

// FindAccountByID resolves one user by kind and id.
func FindAccountByID(gdb *gorm.DB, kind UserKind, id uint) (*Account, error) {
	switch kind {
	case KindStudent:
		var student Student
		if err := gdb.First(&student, id).Error; err != nil {
			return nil, err
		}
		return &Account{Kind: KindStudent, ID: student.ID, FullName: student.FullName, Email: student.Email, Password: student.Password}, nil
	case KindProfessional:
		var professional Professional
		if err := gdb.First(&professional, id).Error; err != nil {
			return nil, err
		}
		return &Account{
			Kind:               KindProfessional,
			ID:                 professional.ID,
			FullName:           professional.FullName,
			Email:              professional.Email,
			Password:           professional.Password,
			VerificationStatus: professional.VerificationStatus,
		}, nil
	case KindAdmin:
		var admin Admin
		if err := gdb.First(&admin, id).Error; err != nil {
			return nil, err
		}
		return &Account{Kind: KindAdmin, ID: admin.ID, FullName: admin.Username, Email: admin.Email, Password: admin.Password}, nil
	}
	return nil, gorm.ErrRecordNotFound
}
