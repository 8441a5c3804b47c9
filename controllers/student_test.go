package controllers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAddReviewValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/student/reviews", AddReview)

	tests := []struct {
		name        string
		body        map[string]any
		wantMessage string
	}{
		{
			"missing student",
			map[string]any{"professional_id": 1, "rating": 4},
			"Missing required fields",
		},
		{
			"missing professional",
			map[string]any{"student_id": 1, "rating": 4},
			"Missing required fields",
		},
		{
			"missing rating",
			map[string]any{"student_id": 1, "professional_id": 1, "feedback_text": "great"},
			"Missing required fields",
		},
		{
			"rating too low",
			map[string]any{"student_id": 1, "professional_id": 1, "rating": 0},
			"Rating must be between 1 and 5",
		},
		{
			"rating too high",
			map[string]any{"student_id": 1, "professional_id": 1, "rating": 6},
			"Rating must be between 1 and 5",
		},
		{
			"negative rating",
			map[string]any{"student_id": 1, "professional_id": 1, "rating": -1},
			"Rating must be between 1 and 5",
		},
		{
			"numeric string rating parsed",
			map[string]any{"student_id": 1, "professional_id": 1, "rating": "0"},
			"Rating must be between 1 and 5",
		},
		{
			"non-numeric rating",
			map[string]any{"student_id": 1, "professional_id": 1, "rating": "five"},
			"Invalid rating",
		},
		{
			"null rating",
			map[string]any{"student_id": 1, "professional_id": 1, "rating": nil},
			"Missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := performJSON(t, app, http.MethodPost, "/api/student/reviews", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "error", payload["status"])
			assert.Equal(t, tt.wantMessage, payload["message"])
		})
	}
}
