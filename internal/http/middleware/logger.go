package middleware

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger is a middleware that logs each HTTP request in JSON format to stdout.
// Fields:
// - ts (RFC3339Nano in UTC)
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status (as rendered by the global error handler when the chain fails)
// - latency (in milliseconds, as float)
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, time.UTC)
}

// LoggerWithWriter is Logger with an explicit destination and timestamp location.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}
	enc := json.NewEncoder(w)
	var mu sync.Mutex

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		entry := map[string]any{
			"ts":         start.In(loc).Format(time.RFC3339Nano),
			"level":      "info",
			"msg":        "http_request",
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     responseStatus(c, err),
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}

		mu.Lock()
		_ = enc.Encode(entry)
		mu.Unlock()

		return err
	}
}
