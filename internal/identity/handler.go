package identity

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/clothes-shop/clothes/internal/apierr"
	"github.com/clothes-shop/clothes/internal/metrics"
)

// Handler exposes identity endpoints.
type Handler struct {
	service *Service
	rec     metrics.Recorder
}

// NewHandler constructs an identity HTTP handler. rec may be nil.
func NewHandler(service *Service, rec metrics.Recorder) *Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Handler{service: service, rec: rec}
}

type registerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type registerResponse struct {
	Identity
	Token string `json:"token"`
}

// Register handles account creation and returns the identity with a session token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed request body")
	}
	created, token, err := h.service.Register(c.UserContext(), Registration{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Phone:    req.Phone,
	})
	h.rec.RecordRegistration(registrationOutcome(err))
	if err != nil {
		return ToAPIError(err)
	}
	return c.Status(http.StatusOK).JSON(registerResponse{Identity: created, Token: token})
}

func registrationOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrDuplicateEmail):
		return "duplicate"
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrInvalidPassword):
		return "invalid"
	default:
		return "error"
	}
}

// ToAPIError maps identity errors to client facing errors.
func ToAPIError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return apierr.New(http.StatusBadRequest, "INVALID_EMAIL", err)
	case errors.Is(err, ErrInvalidName):
		return apierr.New(http.StatusBadRequest, "INVALID_NAME", err)
	case errors.Is(err, ErrInvalidPhone):
		return apierr.New(http.StatusBadRequest, "INVALID_PHONE", err)
	case errors.Is(err, ErrInvalidPassword):
		return apierr.New(http.StatusBadRequest, "INVALID_PASSWORD", err)
	case errors.Is(err, ErrDuplicateEmail):
		return apierr.New(http.StatusConflict, "DUPLICATE_EMAIL", err)
	case errors.Is(err, ErrInvalidCredentials):
		return apierr.New(http.StatusUnauthorized, "INVALID_CREDENTIALS", err)
	default:
		return apierr.Internal(err)
	}
}
