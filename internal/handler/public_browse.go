package handler

// Public browse endpoint: active properties with their active units,
// sanitized for guests.  Served behind the Redis response cache.

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/upkyp/visit-booking-service/internal/repository"
)

// PublicHandler exposes unauthenticated browse endpoints.
type PublicHandler struct {
	PropertyRepo *repository.PropertyRepo
}

// NewPublicHandler constructs the handler.
func NewPublicHandler(propertyRepo *repository.PropertyRepo) *PublicHandler {
	if propertyRepo == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{PropertyRepo: propertyRepo}
}

// GetPublicProperties handles GET /api/properties.  It lists all
// active properties with their active units so tenants can browse
// before registering or requesting a visit.
func (h *PublicHandler) GetPublicProperties(c echo.Context) error {
	items, err := h.PropertyRepo.ListActiveWithUnits(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load properties"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
