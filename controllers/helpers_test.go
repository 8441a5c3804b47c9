package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// performJSON sends a JSON request through the fiber test pipeline and
// decodes the response envelope.
func performJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func performGet(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	return performJSON(t, app, http.MethodGet, target, nil)
}

func TestAdminLookupFailed(t *testing.T) {
	app := fiber.New()
	app.Get("/unknown", func(c *fiber.Ctx) error {
		return adminLookupFailed(c, gorm.ErrRecordNotFound)
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return adminLookupFailed(c, errors.New("connection refused"))
	})

	status, payload := performGet(t, app, "/unknown")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Admin not found", payload["message"])

	// Storage errors keep their own message.
	status, payload = performGet(t, app, "/broken")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "connection refused", payload["message"])
}
