package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/upkyp/visit-booking-service/internal/booking"
	"github.com/upkyp/visit-booking-service/internal/repository"
	"github.com/upkyp/visit-booking-service/internal/validation"
)

// fakeVisitStore scripts the store's answers so handler behavior can
// be exercised without a database.
type fakeVisitStore struct {
	current       booking.Status
	transitionErr error

	gotVisitID    uint64
	gotLandlordID uint64
	gotTarget     booking.Status
	gotReason     string
}

func (f *fakeVisitStore) ListByLandlord(ctx context.Context, landlordID uint64) ([]repository.VisitDetail, error) {
	return []repository.VisitDetail{}, nil
}

func (f *fakeVisitStore) TransitionStatus(ctx context.Context, visitID, landlordID uint64, target booking.Status, reason string) (booking.Status, string, error) {
	f.gotVisitID = visitID
	f.gotLandlordID = landlordID
	f.gotTarget = target
	f.gotReason = reason
	if f.transitionErr != nil {
		return f.current, "", f.transitionErr
	}
	return f.current, strings.TrimSpace(reason), nil
}

func (f *fakeVisitStore) GetDetailByID(ctx context.Context, visitID uint64) (*repository.VisitDetail, error) {
	return nil, repository.ErrVisitNotFound
}

func updateStatus(t *testing.T, store *fakeVisitStore, landlordID uint64, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(http.MethodPut, "/api/landlord/properties/updateBookingStatus", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", landlordID)

	h := NewLandlordVisitHandler(store, zap.NewNop())
	require.NoError(t, h.UpdateBookingStatus(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// A second session committing its own transition between this
// session's read and write leaves the guarded UPDATE matching zero
// rows.  The mutation must surface as a conflict, never as success.
func TestUpdateBookingStatusConcurrentChangeConflicts(t *testing.T) {
	store := &fakeVisitStore{current: booking.StatusPending, transitionErr: repository.ErrStaleStatus}
	rec := updateStatus(t, store, 7, `{"visit_id":42,"status":"disapproved","reason":"double booked"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "visit was changed by another session", body["error"])
	assert.NotContains(t, body, "success")
}

func TestUpdateBookingStatusOtherLandlordForbidden(t *testing.T) {
	store := &fakeVisitStore{transitionErr: repository.ErrForbidden}
	rec := updateStatus(t, store, 7, `{"visit_id":42,"status":"approved"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, uint64(7), store.gotLandlordID)
}

func TestUpdateBookingStatusUnknownVisit(t *testing.T) {
	store := &fakeVisitStore{transitionErr: repository.ErrVisitNotFound}
	rec := updateStatus(t, store, 7, `{"visit_id":999,"status":"approved"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBookingStatusIllegalTransitionReportsCurrent(t *testing.T) {
	store := &fakeVisitStore{current: booking.StatusApproved, transitionErr: booking.ErrIllegalTransition}
	rec := updateStatus(t, store, 7, `{"visit_id":42,"status":"approved"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "approved", body["current_status"])
}

func TestUpdateBookingStatusMissingReasonRejected(t *testing.T) {
	store := &fakeVisitStore{current: booking.StatusPending, transitionErr: booking.ErrReasonRequired}
	rec := updateStatus(t, store, 7, `{"visit_id":42,"status":"disapproved"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBookingStatusUnknownStatusRejectedBeforeStore(t *testing.T) {
	store := &fakeVisitStore{}
	rec := updateStatus(t, store, 7, `{"visit_id":42,"status":"archived"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.gotVisitID)
}

func TestUpdateBookingStatusSuccess(t *testing.T) {
	store := &fakeVisitStore{current: booking.StatusPending}
	rec := updateStatus(t, store, 7, `{"visit_id":42,"status":"approved"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "approved", body["status"])
	assert.Equal(t, uint64(42), store.gotVisitID)
	assert.Equal(t, booking.StatusApproved, store.gotTarget)
}
