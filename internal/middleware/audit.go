package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clothes-shop/clothes/internal/auth"
	"github.com/clothes-shop/clothes/internal/metrics"
)

// Audit emits structured logs and request metrics for each request/response
// lifecycle event. Handler errors are rendered here through the app's error
// handler so the logged status matches the response.
func Audit(logger *slog.Logger, rec metrics.Recorder) fiber.Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		duration := time.Since(start)
		requestID := RequestIDFrom(c)
		rec.RecordRequest(c.Method(), status, duration)

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		}
		if requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
		if user, ok := auth.IdentityFrom(c.UserContext()); ok {
			attrs = append(attrs, slog.Int64("user_id", user.ID))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
			if status >= fiber.StatusInternalServerError {
				logger.Error("request completed", attrs...)
			} else {
				logger.Warn("request completed", attrs...)
			}
			return nil
		}

		logger.Info("request completed", attrs...)
		return nil
	}
}
