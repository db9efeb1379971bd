package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clothes-shop/clothes/internal/auth"
)

// RegisterAuthRoutes wires authentication endpoints.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler) {
	r.Post("/login/user/", h.Login)
}
