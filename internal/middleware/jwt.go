package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clothes-shop/clothes/internal/apierr"
	"github.com/clothes-shop/clothes/internal/auth"
	"github.com/clothes-shop/clothes/internal/identity"
	"github.com/clothes-shop/clothes/internal/metrics"
)

// TokenVerifier validates a session token and returns the identity id it was issued for.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// JWTAuth guards a route with a bearer session token. On success the
// resolved identity is attached to the request's user context (see
// auth.IdentityFrom); every failure ends the request with 401.
func JWTAuth(tokens TokenVerifier, repo identity.Repository, rec metrics.Recorder, logger *slog.Logger) fiber.Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *fiber.Ctx) error {
		raw, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			rec.RecordAuth(metrics.AuthMissingCredentials)
			return apierr.New(http.StatusUnauthorized, "MISSING_CREDENTIALS", err)
		}

		id, err := tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				rec.RecordAuth(metrics.AuthExpiredToken)
				return apierr.New(http.StatusUnauthorized, "EXPIRED_TOKEN", auth.ErrExpiredToken)
			}
			rec.RecordAuth(metrics.AuthInvalidToken)
			logger.Debug("token rejected", slog.Any("error", err))
			return apierr.New(http.StatusUnauthorized, "INVALID_TOKEN", auth.ErrInvalidToken)
		}

		user, err := repo.FindByID(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, identity.ErrNotFound) {
				// Deleted accounts are indistinguishable from forged tokens to the client.
				rec.RecordAuth(metrics.AuthInvalidToken)
				logger.Info("token subject not found", slog.Int64("user_id", id))
				return apierr.New(http.StatusUnauthorized, "INVALID_TOKEN", auth.ErrInvalidToken)
			}
			rec.RecordAuth(metrics.AuthLookupFailed)
			return apierr.Internal(err)
		}

		rec.RecordAuth(metrics.AuthVerified)
		c.SetUserContext(auth.WithIdentity(c.UserContext(), user))
		return c.Next()
	}
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", auth.ErrMissingCredentials
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", auth.ErrMissingCredentials
	}
	return token, nil
}
