package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docfs/internal/http/middleware"
	"docfs/internal/model"
)

// Machine-readable codes carried in the error envelope.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeInvalidPath        = "INVALID_PATH"
	CodeWriteRejected      = "WRITE_REJECTED"
	CodeDocumentNotFound   = "DOCUMENT_NOT_FOUND"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// apiError is a handler failure that ErrorHandler renders into the envelope.
type apiError struct {
	status  int
	code    string
	message string
	details []string
}

func (e *apiError) Error() string { return e.code + ": " + e.message }

// StatusCode lets middleware report the status before the envelope is written.
func (e *apiError) StatusCode() int { return e.status }

var (
	errInvalidPath = &apiError{
		status:  fiber.StatusBadRequest,
		code:    CodeInvalidPath,
		message: "path must be absolute and stay inside the document root",
	}
	errDocumentNotFound = &apiError{
		status:  fiber.StatusNotFound,
		code:    CodeDocumentNotFound,
		message: "document not found",
	}
	errBackendUnavailable = &apiError{
		status:  fiber.StatusServiceUnavailable,
		code:    CodeServiceUnavailable,
		message: "dependency unavailable",
	}
)

// writeRejected carries every message of a failed Write; the first one is the headline.
func writeRejected(res model.WriteFileResult) *apiError {
	return &apiError{
		status:  fiber.StatusUnprocessableEntity,
		code:    CodeWriteRejected,
		message: res.ErrorMessages[0],
		details: res.ErrorMessages,
	}
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes the JSON envelope. Messages must be safe to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string, details ...string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that renders apiErrors as
// they are and maps framework errors onto generic codes.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			return writeError(c, apiErr.status, apiErr.code, apiErr.message, apiErr.details...)
		}

		status := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, CodeBadRequest, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, CodeNotFound, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, CodeMethodNotAllowed, "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, CodePayloadTooLarge, "request body too large")
		default:
			return writeError(c, status, CodeInternal, "internal server error")
		}
	}
}
