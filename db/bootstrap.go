package db

import (
	"errors"
	"log"

	"github.com/betterspace/better-space-api/config"
	"github.com/betterspace/better-space-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin creates the configured admin account if it does not exist yet.
// Admin rows are only ever created here; message lookups never provision one.
func EnsureAdmin() {
	var admin models.Admin
	err := DB.Where("username = ?", config.C.AdminUsername).First(&admin).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal("Failed to look up admin account: ", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.C.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password: ", err)
	}

	admin = models.Admin{
		Username: config.C.AdminUsername,
		Email:    config.C.AdminEmail,
		Password: string(hashed),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin account: ", err)
	}
	log.Printf("Created admin account %q", admin.Username)
}
