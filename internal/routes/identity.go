package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clothes-shop/clothes/internal/identity"
)

// RegisterIdentityRoutes wires account registration. idempotency may be nil.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler, idempotency fiber.Handler) {
	if idempotency != nil {
		r.Post("/register/user/", idempotency, h.Register)
		return
	}
	r.Post("/register/user/", h.Register)
}
