package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clothes-shop/clothes/internal/catalog"
)

// RegisterCatalogRoutes wires the catalog behind the auth gate.
func RegisterCatalogRoutes(r fiber.Router, h *catalog.Handler, gate fiber.Handler) {
	r.Get("/clothes/", gate, h.List)
}
