// Package apierr renders API failures as a uniform JSON body.
package apierr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Error is a client facing failure with a stable machine readable code.
type Error struct {
	Status  int
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Body is the JSON shape written for every failed request.
type Body struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// New builds an Error whose message is cause's text.
func New(status int, code string, cause error) *Error {
	return &Error{Status: status, Code: code, Message: cause.Error(), cause: cause}
}

// Internal hides cause from the client; it is still available to the error
// handler for logging.
func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "internal error", cause: cause}
}

// Handler is a fiber.ErrorHandler writing Body for *Error, *fiber.Error and
// anything else (as a 500).
func Handler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			apiErr   *Error
			fiberErr *fiber.Error
			body     Body
			status   int
		)
		switch {
		case errors.As(err, &apiErr):
			status, body = apiErr.Status, Body{Code: apiErr.Code, Error: apiErr.Message}
		case errors.As(err, &fiberErr):
			status, body = fiberErr.Code, Body{Code: codeForStatus(fiberErr.Code), Error: fiberErr.Message}
		default:
			status, body = http.StatusInternalServerError, Body{Code: "INTERNAL_ERROR", Error: "internal error"}
		}
		if status >= http.StatusInternalServerError && logger != nil {
			logger.Error("request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.Any("error", err),
			)
		}
		return c.Status(status).JSON(body)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}
