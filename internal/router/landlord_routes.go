package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/upkyp/visit-booking-service/internal/handler"
	"github.com/upkyp/visit-booking-service/internal/middleware"
)

// RegisterLandlord registers LANDLORD-scoped property and unit
// management endpoints under /api/landlord.  All routes require a
// valid JWT and the LANDLORD role.
func RegisterLandlord(e *echo.Echo, h *handler.LandlordPropertyHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/api/landlord",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("LANDLORD"),
	)

	// ---- Properties ----
	g.POST("/properties", h.CreateProperty)
	g.GET("/properties", h.ListMyProperties)
	g.PUT("/properties/:id", h.UpdateProperty)
	g.PATCH("/properties/:id", h.UpdateProperty) // allow partial/semantic updates via PATCH as well
	// Deactivation keeps the row so historical visits stay intact.
	g.DELETE("/properties/:id", h.DeactivateProperty)

	// ---- Units ----
	g.POST("/units", h.CreateUnit)
	g.GET("/properties/:id/units", h.ListUnits)
	g.PUT("/units/:id", h.UpdateUnit)
	g.PATCH("/units/:id", h.UpdateUnit)
}
