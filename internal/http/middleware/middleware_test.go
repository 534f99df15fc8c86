package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"docfs/internal/logging"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/exists", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/exists", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		// Check if it's readable in handler (from response body)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/exists", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})
}

func TestRequestID_ReplacesUnusableHeader(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/exists", func(c *fiber.Ctx) error {
		return c.SendString(logging.RequestIDFromContext(c.UserContext()))
	})

	req := httptest.NewRequest("GET", "/exists", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	resp, _ := app.Test(req)

	rid := resp.Header.Get(RequestIDHeader)
	assert.Len(t, rid, 36)

	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	assert.Equal(t, rid, buf.String())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	// Logger usually depends on RequestID for request_id field
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/exists", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/exists", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	// Verify log output
	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/exists", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
	assert.Equal(t, "http_request", logData["msg"])
}

func TestLogger_OneLinePerRequest(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, nil))
	app.Get("/entries", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/entries", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 3)
}

type conflictErr struct{}

func (conflictErr) Error() string   { return "conflict" }
func (conflictErr) StatusCode() int { return fiber.StatusConflict }

func TestLogger_StatusFromHandlerError(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "unmatched route", target: "/nope", want: fiber.StatusNotFound},
		{name: "fiber error", target: "/bad", want: fiber.StatusBadRequest},
		{name: "error with status code", target: "/conflict", want: fiber.StatusConflict},
		{name: "plain error", target: "/boom", want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := fiber.New(fiber.Config{
				ErrorHandler: func(c *fiber.Ctx, err error) error {
					return c.SendStatus(responseStatus(c, err))
				},
			})
			app.Use(LoggerWithWriter(&buf, nil))
			app.Get("/bad", func(c *fiber.Ctx) error {
				return fiber.ErrBadRequest
			})
			app.Get("/conflict", func(c *fiber.Ctx) error {
				return conflictErr{}
			})
			app.Get("/boom", func(c *fiber.Ctx) error {
				return errors.New("boom")
			})

			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			var logData map[string]any
			assert.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
			assert.Equal(t, float64(tt.want), logData["status"])
		})
	}
}
