package catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clothes-shop/clothes/internal/apierr"
)

// Handler exposes catalog endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a catalog HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type listResponse struct {
	Items []Garment `json:"items"`
}

// List returns the catalog, optionally filtered by ?color= and ?size=.
func (h *Handler) List(c *fiber.Ctx) error {
	filter := Filter{
		Color: Color(strings.ToLower(c.Query("color"))),
		Size:  Size(strings.ToLower(c.Query("size"))),
	}
	items, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			return apierr.New(http.StatusBadRequest, "INVALID_FILTER", err)
		}
		return apierr.Internal(err)
	}
	if items == nil {
		items = []Garment{}
	}
	return c.Status(http.StatusOK).JSON(listResponse{Items: items})
}
