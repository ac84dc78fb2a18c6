package handler

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"agrimart/internal/http/middleware"
	"agrimart/internal/repository"
	"agrimart/internal/service"
	"agrimart/internal/validation"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
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

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

func writeValidation(c *fiber.Ctx, fields validation.Errors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_FAILED",
			Message: "request validation failed",
			Fields:  fields,
		},
	})
}

type errorMapping struct {
	target error
	status int
	code   string
}

var serviceErrors = []errorMapping{
	{service.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{sql.ErrNoRows, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{service.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{service.ErrPhoneTaken, fiber.StatusConflict, "PHONE_TAKEN"},
	{service.ErrOwnProduct, fiber.StatusBadRequest, "OWN_PRODUCT"},
	{service.ErrUnavailable, fiber.StatusConflict, "PRODUCT_UNAVAILABLE"},
	{service.ErrInvalidTransition, fiber.StatusConflict, "INVALID_STATUS_TRANSITION"},
	{service.ErrImagesDisabled, fiber.StatusServiceUnavailable, "IMAGES_DISABLED"},
	{service.ErrNoImage, fiber.StatusNotFound, "NO_IMAGE"},
	{service.ErrReaderNil, fiber.StatusBadRequest, "FILE_REQUIRED"},
	{repository.ErrEmptyCart, fiber.StatusBadRequest, "EMPTY_CART"},
	{repository.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{repository.ErrNothingToUpdate, fiber.StatusBadRequest, "NOTHING_TO_UPDATE"},
	{repository.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{repository.ErrReferenceNotFound, fiber.StatusBadRequest, "INVALID_REFERENCE"},
	{repository.ErrConstraint, fiber.StatusBadRequest, "CONSTRAINT_VIOLATION"},
}

// fromError maps a service error onto a response. Unknown errors become a
// 500 and are kept in locals for the request log.
func fromError(c *fiber.Ctx, err error) error {
	var fields validation.Errors
	if errors.As(err, &fields) {
		return writeValidation(c, fields)
	}
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			return writeError(c, m.status, m.code, publicMessage(err, m.target))
		}
	}
	c.Locals(middleware.ErrorLocalKey, err)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// publicMessage prefers the detail wrapped after the sentinel, as in
// "record already exists: A user with this Phone already exists".
func publicMessage(err, target error) string {
	if _, detail, ok := strings.Cut(err.Error(), target.Error()+": "); ok && detail != "" {
		return detail
	}
	return target.Error()
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", message)
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", message)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusTooManyRequests:
			return writeError(c, status, "RATE_LIMITED", "too many requests")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
