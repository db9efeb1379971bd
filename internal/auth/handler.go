package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clothes-shop/clothes/internal/identity"
)

// Handler exposes the login endpoint.
type Handler struct {
	ids    *identity.Service
	tokens *Tokens
}

func NewHandler(ids *identity.Service, tokens *Tokens) *Handler {
	return &Handler{ids: ids, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Login validates credentials and returns a session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "malformed request body")
	}
	user, err := h.ids.Authenticate(c.UserContext(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return identity.ToAPIError(err)
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return identity.ToAPIError(err)
	}
	return c.Status(http.StatusOK).JSON(loginResponse{Token: token, ExpiresIn: int64(h.tokens.TTL().Seconds())})
}
