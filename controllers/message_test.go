package controllers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetConversationValidation(t *testing.T) {
	app := fiber.New()
	app.Get("/api/messages/", GetConversation)

	tests := []struct {
		name        string
		target      string
		wantMessage string
	}{
		{"missing both", "/api/messages/", "Missing student_id parameter"},
		{"missing professional", "/api/messages/?student_id=1", "Missing professional_id parameter"},
		{"missing student", "/api/messages/?professional_id=1", "Missing student_id parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := performGet(t, app, tt.target)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "error", payload["status"])
			assert.Equal(t, tt.wantMessage, payload["message"])
		})
	}
}

func TestSendMessageValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/messages/", SendMessage)

	tests := []struct {
		name        string
		body        map[string]any
		wantMessage string
	}{
		{
			"missing message text",
			map[string]any{"student_id": 1, "professional_id": 1, "sender": "Student"},
			"Missing required fields",
		},
		{
			"missing sender",
			map[string]any{"student_id": 1, "professional_id": 1, "message_text": "hello"},
			"Missing required fields",
		},
		{
			"admin cannot use conversation endpoint",
			map[string]any{"student_id": 1, "professional_id": 1, "sender": "Admin", "message_text": "hello"},
			"Invalid sender",
		},
		{
			"unknown sender",
			map[string]any{"student_id": 1, "professional_id": 1, "sender": "counselor", "message_text": "hello"},
			"Invalid sender",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := performJSON(t, app, http.MethodPost, "/api/messages/", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "error", payload["status"])
			assert.Equal(t, tt.wantMessage, payload["message"])
		})
	}
}
