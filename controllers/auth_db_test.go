package controllers

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/betterspace/better-space-api/db"
	"github.com/betterspace/better-space-api/models"
	"github.com/betterspace/better-space-api/otp"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupAuthTestDB points the package-global connection at the database
// named by TEST_DATABASE_URL. Tests that need it skip when it is unset.
func setupAuthTestDB(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Student{}, &models.Professional{}, &models.Admin{}))

	db.DB = gdb
	t.Cleanup(func() { db.DB = nil })
}

func TestLoginVerificationGate(t *testing.T) {
	setupAuthTestDB(t)
	otp.Codes = otp.NewMemoryStore(10 * time.Minute)

	const password = "Abc123!@"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	professional := models.Professional{
		FullName:           "Sam Lee",
		Email:              "sam.lee.gate@example.com",
		Password:           string(hashed),
		Category:           models.DefaultCategory,
		VerificationStatus: models.VerificationPending,
	}
	require.NoError(t, db.DB.Create(&professional).Error)
	t.Cleanup(func() {
		db.DB.Delete(&models.Professional{}, professional.ID)
	})

	app := fiber.New()
	app.Post("/api/login", Login)

	login := func(pw string) (int, map[string]any) {
		return performJSON(t, app, http.MethodPost, "/api/login", map[string]any{
			"email": professional.Email, "password": pw,
		})
	}

	t.Run("pending professional rejected with correct credentials", func(t *testing.T) {
		status, payload := login(password)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "error", payload["status"])
		assert.Equal(t, "Account verification is pending. Please wait for admin approval.", payload["message"])
	})

	t.Run("rejected professional stays locked out", func(t *testing.T) {
		require.NoError(t, db.DB.Model(&professional).
			Update("verification_status", models.VerificationRejected).Error)

		status, payload := login(password)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "Account verification is rejected. Please wait for admin approval.", payload["message"])
	})

	t.Run("verified professional logs in and receives an OTP", func(t *testing.T) {
		require.NoError(t, db.DB.Model(&professional).
			Update("verification_status", models.VerificationVerified).Error)

		status, payload := login(password)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "success", payload["status"])

		_, ok, err := otp.Codes.Get(context.Background(), "professional", professional.ID)
		require.NoError(t, err)
		assert.True(t, ok, "a login OTP should be stored")
	})

	t.Run("verified professional still needs the right password", func(t *testing.T) {
		status, payload := login("WrongPass1!")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid credentials", payload["message"])
	})
}
