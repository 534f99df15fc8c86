package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusCoder is implemented by handler errors that know their HTTP status.
type statusCoder interface {
	StatusCode() int
}

// responseStatus returns the status the client receives once the global error
// handler has rendered err. Middleware runs before that handler, so the
// response status alone is stale whenever err is non-nil.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return fiber.StatusInternalServerError
}
