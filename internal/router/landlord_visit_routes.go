package router

// This file registers the landlord-facing routes of the visit
// approval workflow.  They are separate from the generic landlord
// routes to keep concerns isolated: these endpoints read and mutate
// visit requests across all of the landlord's properties.

import (
	"github.com/labstack/echo/v4"

	"github.com/upkyp/visit-booking-service/internal/handler"
	"github.com/upkyp/visit-booking-service/internal/middleware"
)

// RegisterLandlordVisits registers the visit workflow endpoints under
// /api/landlord/properties.  All routes require a JWT token as well as
// the LANDLORD role.  The handler supplies the business logic for
// listing visits, transitioning a visit's status and the aggregated
// calendar view.
func RegisterLandlordVisits(e *echo.Echo, h *handler.LandlordVisitHandler, jwtSecret string) {
	g := e.Group(
		"/api/landlord/properties",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("LANDLORD"),
	)
	// Every visit across the landlord's properties, annotated with
	// tenant and unit display data.
	g.GET("/getAllBookingVisits", h.GetAllBookingVisits)
	// Approve, disapprove or cancel a single visit.
	g.PUT("/updateBookingStatus", h.UpdateBookingStatus)
	// By-date and by-status aggregation plus the month grid.
	g.GET("/getVisitCalendar", h.GetVisitCalendar)
}
