package handler

// This file defines HTTP handlers for landlords to manage their
// properties and units.  Ownership is enforced in the repository
// layer; handlers translate the sentinel errors into HTTP statuses.

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/upkyp/visit-booking-service/internal/model"
	"github.com/upkyp/visit-booking-service/internal/repository"
)

// LandlordPropertyHandler bundles repositories for property and unit
// management.
type LandlordPropertyHandler struct {
	PropertyRepo *repository.PropertyRepo
	UnitRepo     *repository.UnitRepo
}

// NewLandlordPropertyHandler constructs the handler and panics if any
// dependency is nil.
func NewLandlordPropertyHandler(propertyRepo *repository.PropertyRepo, unitRepo *repository.UnitRepo) *LandlordPropertyHandler {
	if propertyRepo == nil || unitRepo == nil {
		panic("nil repository passed to NewLandlordPropertyHandler")
	}
	return &LandlordPropertyHandler{PropertyRepo: propertyRepo, UnitRepo: unitRepo}
}

type propertyReq struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	City        string  `json:"city" validate:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type unitReq struct {
	PropertyID   uint64 `json:"property_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Bedrooms     uint32 `json:"bedrooms"`
	MonthlyCents uint32 `json:"monthly_rent_cents"`
	IsActive     *bool  `json:"is_active"`
}

// CreateProperty handles POST /api/landlord/properties.
func (h *LandlordPropertyHandler) CreateProperty(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	p := model.Property{
		LandlordID:  landlordID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
	}
	if err := h.PropertyRepo.Create(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create property"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": p})
}

// ListMyProperties handles GET /api/landlord/properties.
func (h *LandlordPropertyHandler) ListMyProperties(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.PropertyRepo.ListByLandlord(c.Request().Context(), landlordID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load properties"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// UpdateProperty handles PUT /api/landlord/properties/:id.
func (h *LandlordPropertyHandler) UpdateProperty(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	p := model.Property{
		ID:          id,
		LandlordID:  landlordID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
		IsActive:    active,
	}
	if err := h.PropertyRepo.Update(c.Request().Context(), &p); err != nil {
		return propertyErrToJSON(c, err, "failed to update property")
	}
	return c.JSON(http.StatusOK, echo.Map{"item": p})
}

// DeactivateProperty handles DELETE /api/landlord/properties/:id.  The
// row is kept so historical visits stay intact; the listing simply
// disappears from tenant browsing.
func (h *LandlordPropertyHandler) DeactivateProperty(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}
	if err := h.PropertyRepo.Deactivate(c.Request().Context(), id, landlordID); err != nil {
		return propertyErrToJSON(c, err, "failed to deactivate property")
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateUnit handles POST /api/landlord/units.
func (h *LandlordPropertyHandler) CreateUnit(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req unitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	u := model.Unit{
		PropertyID:   req.PropertyID,
		Name:         req.Name,
		Bedrooms:     req.Bedrooms,
		MonthlyCents: req.MonthlyCents,
	}
	if err := h.UnitRepo.Create(c.Request().Context(), landlordID, &u); err != nil {
		return propertyErrToJSON(c, err, "failed to create unit")
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": u})
}

// ListUnits handles GET /api/landlord/properties/:id/units.
func (h *LandlordPropertyHandler) ListUnits(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property id"})
	}
	items, err := h.UnitRepo.ListByProperty(c.Request().Context(), id, landlordID)
	if err != nil {
		return propertyErrToJSON(c, err, "failed to load units")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// UpdateUnit handles PUT /api/landlord/units/:id.
func (h *LandlordPropertyHandler) UpdateUnit(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid unit id"})
	}
	var req unitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	u := model.Unit{
		ID:           id,
		Name:         req.Name,
		Bedrooms:     req.Bedrooms,
		MonthlyCents: req.MonthlyCents,
		IsActive:     active,
	}
	if err := h.UnitRepo.Update(c.Request().Context(), landlordID, &u); err != nil {
		return propertyErrToJSON(c, err, "failed to update unit")
	}
	return c.JSON(http.StatusOK, echo.Map{"item": u})
}

// propertyErrToJSON maps repository sentinels to HTTP responses for
// the property/unit endpoints.
func propertyErrToJSON(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrPropertyNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
	case errors.Is(err, repository.ErrUnitNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unit not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
}
