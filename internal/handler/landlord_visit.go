package handler

// This file defines the landlord-facing endpoints of the visit
// approval workflow: listing all booking visits across the landlord's
// properties, transitioning a visit's status and the aggregated
// calendar view.  Status transitions run inside a transaction with
// the visit row locked, and the final UPDATE is guarded by the
// expected prior status so two racing sessions produce a 409 instead
// of a silent overwrite.

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/upkyp/visit-booking-service/internal/booking"
	"github.com/upkyp/visit-booking-service/internal/queue"
	"github.com/upkyp/visit-booking-service/internal/repository"
	queue_publisher "github.com/upkyp/visit-booking-service/internal/service"
)

// VisitStore is the persistence surface the workflow handler needs.
// *repository.VisitRepo satisfies it in production.
type VisitStore interface {
	ListByLandlord(ctx context.Context, landlordID uint64) ([]repository.VisitDetail, error)
	TransitionStatus(ctx context.Context, visitID, landlordID uint64, target booking.Status, reason string) (booking.Status, string, error)
	GetDetailByID(ctx context.Context, visitID uint64) (*repository.VisitDetail, error)
}

// LandlordVisitHandler groups the dependencies of the approval
// workflow.
type LandlordVisitHandler struct {
	Visits VisitStore
	Log    *zap.Logger
}

// NewLandlordVisitHandler constructs the handler.  Dependencies must
// be non-nil.
func NewLandlordVisitHandler(visits VisitStore, log *zap.Logger) *LandlordVisitHandler {
	if visits == nil || log == nil {
		panic("nil dependency passed to NewLandlordVisitHandler")
	}
	return &LandlordVisitHandler{Visits: visits, Log: log}
}

// GetAllBookingVisits handles
// GET /api/landlord/properties/getAllBookingVisits.  It returns every
// visit across the authenticated landlord's properties, annotated
// with decrypted tenant names and property/unit display names.  A
// landlord with zero properties or zero visits receives an empty
// array.  The optional landlord_id query parameter is accepted for
// compatibility but must match the token's subject.
func (h *LandlordVisitHandler) GetAllBookingVisits(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if q := c.QueryParam("landlord_id"); q != "" {
		qid, err := strconv.ParseUint(q, 10, 64)
		if err != nil || qid != landlordID {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
	}

	details, err := h.Visits.ListByLandlord(c.Request().Context(), landlordID)
	if err != nil {
		h.Log.Error("list booking visits failed", zap.Uint64("landlord_id", landlordID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load visits"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": details,
		"count": len(details),
	})
}

// updateStatusReq is the mutation payload: the visit, the target
// status and, for disapproval, the reason.
type updateStatusReq struct {
	VisitID uint64 `json:"visit_id" validate:"required"`
	Status  string `json:"status" validate:"required"`
	Reason  string `json:"reason"`
}

// UpdateBookingStatus handles
// PUT /api/landlord/properties/updateBookingStatus.  Legal
// transitions are pending→approved, pending→disapproved (reason
// required) and approved→cancelled.  The response distinctly signals
// success or failure so clients can roll back optimistic state: a 200
// is only returned when the guarded UPDATE affected exactly one row.
func (h *LandlordVisitHandler) UpdateBookingStatus(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	target, err := booking.ParseStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	current, reason, err := h.Visits.TransitionStatus(c.Request().Context(), req.VisitID, landlordID, target, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVisitNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "visit not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		case errors.Is(err, booking.ErrIllegalTransition):
			return c.JSON(http.StatusConflict, echo.Map{
				"error":          "illegal status transition",
				"current_status": string(current),
			})
		case errors.Is(err, booking.ErrReasonRequired):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "disapproval requires a reason"})
		case errors.Is(err, booking.ErrReasonNotAllowed):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "reason is only accepted on disapproval"})
		case errors.Is(err, repository.ErrStaleStatus):
			return c.JSON(http.StatusConflict, echo.Map{"error": "visit was changed by another session"})
		}
		h.Log.Error("status transition failed", zap.Uint64("visit_id", req.VisitID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update visit"})
	}

	h.publishStatusChanged(req.VisitID, landlordID, current, target, reason)

	resp := echo.Map{
		"success":  true,
		"visit_id": req.VisitID,
		"status":   string(target),
	}
	if target == booking.StatusDisapproved {
		resp["disapproval_reason"] = reason
	}
	return c.JSON(http.StatusOK, resp)
}

// GetVisitCalendar handles
// GET /api/landlord/properties/getVisitCalendar?month=YYYY-MM.  It
// returns the by-date index, the by-status counts and the Monday-first
// grid of the requested month (defaults to the current month in UTC).
func (h *LandlordVisitHandler) GetVisitCalendar(c echo.Context) error {
	landlordID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	month := c.QueryParam("month")
	var ref time.Time
	if month == "" {
		ref = time.Now().UTC()
	} else {
		ref, err = time.Parse("2006-01", month)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month, want YYYY-MM"})
		}
	}

	details, err := h.Visits.ListByLandlord(c.Request().Context(), landlordID)
	if err != nil {
		h.Log.Error("load visits for calendar failed", zap.Uint64("landlord_id", landlordID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load visits"})
	}

	summaries := make([]booking.CalendarVisit, 0, len(details))
	for _, d := range details {
		summaries = append(summaries, booking.CalendarVisit{
			ID:     d.ID,
			Date:   d.VisitDate,
			Time:   d.VisitTime,
			Status: booking.Status(d.Status),
		})
	}
	agg := booking.Aggregate(summaries)
	grid := booking.BuildMonthGrid(ref.Year(), ref.Month())

	return c.JSON(http.StatusOK, echo.Map{
		"month":     ref.Format("2006-01"),
		"grid":      grid,
		"by_date":   agg.ByDate,
		"by_status": agg.ByStatus,
	})
}

// publishStatusChanged emits the audit event for a committed
// transition.  Publishing is best effort and runs detached from the
// request so broker latency never delays the response.
func (h *LandlordVisitHandler) publishStatusChanged(visitID, landlordID uint64, from, to booking.Status, reason string) {
	detail, err := h.Visits.GetDetailByID(context.Background(), visitID)
	if err != nil {
		h.Log.Warn("load visit for event failed", zap.Uint64("visit_id", visitID), zap.Error(err))
		return
	}
	ev := queue.VisitStatusChangedEvent{
		VisitID:      detail.ID,
		Reference:    detail.Reference,
		TenantID:     detail.TenantID,
		LandlordID:   landlordID,
		PropertyID:   detail.PropertyID,
		PropertyName: detail.PropertyName,
		UnitID:       detail.UnitID,
		UnitName:     detail.UnitName,
		VisitDate:    detail.VisitDate,
		VisitTime:    detail.VisitTime,
		FromStatus:   string(from),
		ToStatus:     string(to),
		Reason:       reason,
		ChangedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishVisitStatusChanged(ctx, ev)
	}()
}
