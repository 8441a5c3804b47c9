package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/betterspace/better-space-api/otp"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/register", Register)

	tests := []struct {
		name        string
		body        map[string]any
		wantMessage string
	}{
		{
			"missing email",
			map[string]any{"password": "Abc123!@", "user_type": "student", "first_name": "Jane"},
			"Missing required fields",
		},
		{
			"bad email",
			map[string]any{"email": "not-an-email", "password": "Abc123!@", "user_type": "student", "first_name": "Jane"},
			"Missing required fields",
		},
		{
			"missing first name",
			map[string]any{"email": "jane@example.com", "password": "Abc123!@", "user_type": "student"},
			"Missing required fields",
		},
		{
			"password too short",
			map[string]any{"email": "jane@example.com", "password": "Ab1!", "user_type": "student", "first_name": "Jane"},
			"Password must be at least 8 characters long",
		},
		{
			"password missing uppercase",
			map[string]any{"email": "jane@example.com", "password": "abc12345", "user_type": "student", "first_name": "Jane"},
			"Password must contain at least one uppercase letter",
		},
		{
			"password missing symbol",
			map[string]any{"email": "jane@example.com", "password": "Abc12345", "user_type": "student", "first_name": "Jane"},
			"Password must contain at least one special character",
		},
		{
			"unknown user type",
			map[string]any{"email": "jane@example.com", "password": "Abc123!@", "user_type": "doctor", "first_name": "Jane"},
			"Invalid user type",
		},
		{
			"admin cannot self-register",
			map[string]any{"email": "jane@example.com", "password": "Abc123!@", "user_type": "admin", "first_name": "Jane"},
			"Invalid user type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := performJSON(t, app, http.MethodPost, "/api/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "error", payload["status"])
			assert.Equal(t, tt.wantMessage, payload["message"])
		})
	}
}

func TestLoginValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/login", Login)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"password": "Abc123!@"}},
		{"missing password", map[string]any{"email": "jane@example.com"}},
		{"empty body", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := performJSON(t, app, http.MethodPost, "/api/login", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "error", payload["status"])
			assert.Equal(t, "Email and password required", payload["message"])
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	store := otp.NewMemoryStore(10 * time.Minute)
	otp.Codes = store
	require.NoError(t, store.Set(context.Background(), "student", 1, otp.Entry{
		Code: "123456", Email: "jane@example.com", UserID: 1, UserType: "student",
	}))

	app := fiber.New()
	app.Post("/api/verify-otp", VerifyOTP)

	t.Run("wrong code rejected", func(t *testing.T) {
		status, payload := performJSON(t, app, http.MethodPost, "/api/verify-otp", map[string]any{
			"user_id": 1, "user_type": "student", "otp_code": "654321",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid OTP", payload["message"])
	})

	t.Run("correct code accepted once", func(t *testing.T) {
		status, payload := performJSON(t, app, http.MethodPost, "/api/verify-otp", map[string]any{
			"user_id": 1, "user_type": "student", "otp_code": "123456",
		})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "success", payload["status"])
		assert.NotEmpty(t, payload["token"])
	})

	t.Run("code cannot be replayed", func(t *testing.T) {
		status, payload := performJSON(t, app, http.MethodPost, "/api/verify-otp", map[string]any{
			"user_id": 1, "user_type": "student", "otp_code": "123456",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid OTP", payload["message"])
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		status, payload := performJSON(t, app, http.MethodPost, "/api/verify-otp", map[string]any{
			"user_id": 1, "user_type": "student",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Missing required fields", payload["message"])
	})

	t.Run("invalid user type rejected", func(t *testing.T) {
		status, payload := performJSON(t, app, http.MethodPost, "/api/verify-otp", map[string]any{
			"user_id": 1, "user_type": "doctor", "otp_code": "123456",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Invalid user type", payload["message"])
	})

	t.Run("wrong role cannot consume another role's code", func(t *testing.T) {
		require.NoError(t, store.Set(context.Background(), "student", 2, otp.Entry{
			Code: "111222", UserID: 2, UserType: "student",
		}))

		status, _ := performJSON(t, app, http.MethodPost, "/api/verify-otp", map[string]any{
			"user_id": 2, "user_type": "professional", "otp_code": "111222",
		})
		assert.Equal(t, http.StatusUnauthorized, status)

		// The student code is still valid.
		status, _ = performJSON(t, app, http.MethodPost, "/api/verify-otp", map[string]any{
			"user_id": 2, "user_type": "student", "otp_code": "111222",
		})
		assert.Equal(t, http.StatusOK, status)
	})
}
