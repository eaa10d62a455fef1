package router

import (
	"github.com/labstack/echo/v4"

	"github.com/upkyp/visit-booking-service/internal/handler"
	"github.com/upkyp/visit-booking-service/internal/middleware"
)

// RegisterTenant registers tenant-scoped endpoints under /api/tenant.
// All routes require a valid JWT and the TENANT role.  Tenants can
// request a visit to a unit and list their own visit requests; the
// approval workflow itself is landlord-only.
func RegisterTenant(e *echo.Echo, h *handler.TenantVisitHandler, jwtSecret string) {
	g := e.Group(
		"/api/tenant",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("TENANT"),
	)
	g.POST("/visits", h.RequestVisit)
	g.GET("/visits", h.ListMyVisits)
}
