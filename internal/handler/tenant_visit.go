package handler

// This file defines the tenant-facing visit endpoints: requesting a
// visit to a unit and listing the tenant's own requests.  A new
// request always starts in the pending state; the approval workflow
// is landlord-only.

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/upkyp/visit-booking-service/internal/model"
	"github.com/upkyp/visit-booking-service/internal/repository"
)

// TenantVisitHandler bundles the repositories used by tenant visit
// endpoints.
type TenantVisitHandler struct {
	VisitRepo *repository.VisitRepo
	UnitRepo  *repository.UnitRepo
}

// NewTenantVisitHandler constructs the handler and panics if any
// dependency is nil.
func NewTenantVisitHandler(visitRepo *repository.VisitRepo, unitRepo *repository.UnitRepo) *TenantVisitHandler {
	if visitRepo == nil || unitRepo == nil {
		panic("nil repository passed to NewTenantVisitHandler")
	}
	return &TenantVisitHandler{VisitRepo: visitRepo, UnitRepo: unitRepo}
}

type requestVisitReq struct {
	PropertyID uint64 `json:"property_id" validate:"required"`
	UnitID     uint64 `json:"unit_id" validate:"required"`
	VisitDate  string `json:"visit_date" validate:"required,datetime=2006-01-02"`
	VisitTime  string `json:"visit_time" validate:"required,datetime=15:04"`
}

// RequestVisit handles POST /api/tenant/visits.  The unit must belong
// to the property and both must be active; the request date must not
// be in the past.
func (h *TenantVisitHandler) RequestVisit(c echo.Context) error {
	tenantID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req requestVisitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	day, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid visit_date"})
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "visit_date is in the past"})
	}

	ctx := c.Request().Context()
	if _, err := h.UnitRepo.GetActiveForBooking(ctx, req.UnitID, req.PropertyID); err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unit not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to verify unit"})
	}

	v := model.Visit{
		Reference:  uuid.NewString(),
		TenantID:   tenantID,
		PropertyID: req.PropertyID,
		UnitID:     req.UnitID,
		VisitDate:  req.VisitDate,
		VisitTime:  req.VisitTime,
	}
	if err := h.VisitRepo.Create(ctx, &v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create visit"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": v})
}

// ListMyVisits handles GET /api/tenant/visits.  Visits are returned
// newest first; an empty array when the tenant has none.
func (h *TenantVisitHandler) ListMyVisits(c echo.Context) error {
	tenantID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.VisitRepo.ListByTenant(c.Request().Context(), tenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load visits"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}
