package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/upkyp/visit-booking-service/internal/booking"
	"github.com/upkyp/visit-booking-service/internal/fieldcrypt"
	"github.com/upkyp/visit-booking-service/internal/model"
)

// VisitRepo provides persistence for tenant visit requests and the
// landlord approval workflow.  Read paths join through units,
// properties and users so that a single query yields the display
// projection; the tenant name is decrypted at read time.  Write
// paths for status transitions are guarded by the expected prior
// status so concurrent transitions surface as conflicts instead of
// silent overwrites.
type VisitRepo struct {
	db     *sql.DB
	cipher *fieldcrypt.Cipher
}

// NewVisitRepo returns a VisitRepo bound to the given database and
// field cipher.
func NewVisitRepo(db *sql.DB, cipher *fieldcrypt.Cipher) *VisitRepo {
	return &VisitRepo{db: db, cipher: cipher}
}

// TransitionStatus runs one status transition end to end: it opens a
// transaction, locks the visit row, checks ownership, validates the
// transition against the current status and applies the guarded
// UPDATE.  The returned Status is the status the visit had before the
// write; on an illegal-transition error it is still populated so
// callers can report what the visit currently is.  The returned
// string is the trimmed reason actually stored.  Possible errors:
// ErrVisitNotFound, ErrForbidden, the booking validation errors and
// ErrStaleStatus when another session changed the row first.
func (r *VisitRepo) TransitionStatus(ctx context.Context, visitID, landlordID uint64, target booking.Status, reason string) (booking.Status, string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", "", err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	current, err := r.GetStatusForLandlordTx(ctx, tx, visitID, landlordID)
	if err != nil {
		return "", "", err
	}
	trimmed, err := booking.ValidateTransition(current, target, reason)
	if err != nil {
		return current, "", err
	}
	if err := r.UpdateStatusTx(ctx, tx, visitID, current, target, trimmed); err != nil {
		return current, "", err
	}
	if err := tx.Commit(); err != nil {
		return current, "", err
	}
	committed = true
	return current, trimmed, nil
}

// VisitDetail is the annotated projection of a visit returned to
// landlords: the row's own fields plus display names joined from the
// tenant, property and unit.  TenantName carries the decrypted value
// or "N/A" when the ciphertext cannot be opened.
type VisitDetail struct {
	ID                uint64  `json:"visit_id"`
	Reference         string  `json:"reference"`
	TenantID          uint64  `json:"tenant_id"`
	TenantName        string  `json:"tenant_name"`
	PropertyID        uint64  `json:"property_id"`
	PropertyName      string  `json:"property_name"`
	UnitID            uint64  `json:"unit_id"`
	UnitName          string  `json:"unit_name"`
	VisitDate         string  `json:"visit_date"`
	VisitTime         string  `json:"visit_time"`
	Status            string  `json:"status"`
	DisapprovalReason *string `json:"disapproval_reason,omitempty"`
}

const visitDetailColumns = `v.id, v.reference, v.tenant_id, t.full_name_enc,
                      v.property_id, p.name, v.unit_id, u.name,
                      DATE_FORMAT(v.visit_date, '%Y-%m-%d'), TIME_FORMAT(v.visit_time, '%H:%i'),
                      v.status, v.disapproval_reason`

// scanDetail reads one joined row and decrypts the tenant name.  A
// per-field decryption failure degrades to "N/A" rather than failing
// the whole request; the cipher's typed error keeps that decision in
// this caller instead of inside the crypto helper.
func (r *VisitRepo) scanDetail(rows interface{ Scan(...interface{}) error }) (VisitDetail, error) {
	var (
		d       VisitDetail
		nameEnc string
		reason  sql.NullString
	)
	if err := rows.Scan(
		&d.ID, &d.Reference, &d.TenantID, &nameEnc,
		&d.PropertyID, &d.PropertyName, &d.UnitID, &d.UnitName,
		&d.VisitDate, &d.VisitTime,
		&d.Status, &reason,
	); err != nil {
		return VisitDetail{}, err
	}
	if name, err := r.cipher.DecryptString(nameEnc); err == nil {
		d.TenantName = name
	} else {
		d.TenantName = "N/A"
	}
	if reason.Valid {
		v := reason.String
		d.DisapprovalReason = &v
	}
	return d, nil
}

// ListByLandlord returns every visit across the landlord's
// properties, newest request first.  A landlord with zero properties
// or zero visits gets an empty slice, not an error.
func (r *VisitRepo) ListByLandlord(ctx context.Context, landlordID uint64) ([]VisitDetail, error) {
	const q = `SELECT ` + visitDetailColumns + `
               FROM visits v
               JOIN units u ON u.id = v.unit_id
               JOIN properties p ON p.id = v.property_id
               JOIN users t ON t.id = v.tenant_id
               WHERE p.landlord_id = ?
               ORDER BY v.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]VisitDetail, 0)
	for rows.Next() {
		d, err := r.scanDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ListByTenant returns the tenant's own visit requests, newest first.
func (r *VisitRepo) ListByTenant(ctx context.Context, tenantID uint64) ([]VisitDetail, error) {
	const q = `SELECT ` + visitDetailColumns + `
               FROM visits v
               JOIN units u ON u.id = v.unit_id
               JOIN properties p ON p.id = v.property_id
               JOIN users t ON t.id = v.tenant_id
               WHERE v.tenant_id = ?
               ORDER BY v.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]VisitDetail, 0)
	for rows.Next() {
		d, err := r.scanDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Create inserts a new visit request in the pending state.  On
// success the generated ID and the default columns are populated on
// the provided record.  The caller is responsible for validating the
// unit/property pair beforehand (see UnitRepo.GetActiveForBooking).
func (r *VisitRepo) Create(ctx context.Context, v *model.Visit) error {
	const qInsert = `INSERT INTO visits (reference, tenant_id, property_id, unit_id, visit_date, visit_time, status)
                     VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		v.Reference, v.TenantID, v.PropertyID, v.UnitID, v.VisitDate, v.VisitTime, string(booking.StatusPending))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	v.Status = string(booking.StatusPending)

	const qSelect = "SELECT created_at, updated_at FROM visits WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, v.ID).Scan(&v.CreatedAt, &v.UpdatedAt)
}

// GetStatusForLandlordTx loads a visit's current status within a
// transaction, validating that the visit's property belongs to the
// landlord.  It returns ErrVisitNotFound when the visit does not
// exist and ErrForbidden when it targets another landlord's property.
// The row is locked FOR UPDATE so the subsequent guarded write sees a
// stable status.
func (r *VisitRepo) GetStatusForLandlordTx(ctx context.Context, tx *sql.Tx, visitID, landlordID uint64) (booking.Status, error) {
	const q = `SELECT v.status, p.landlord_id
               FROM visits v
               JOIN properties p ON p.id = v.property_id
               WHERE v.id = ?
               FOR UPDATE`
	var (
		status         string
		actualLandlord uint64
	)
	if err := tx.QueryRowContext(ctx, q, visitID).Scan(&status, &actualLandlord); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrVisitNotFound
		}
		return "", err
	}
	if actualLandlord != landlordID {
		return "", ErrForbidden
	}
	return booking.Status(status), nil
}

// UpdateStatusTx transitions a visit's status within a transaction.
// The UPDATE is guarded by the expected prior status: when zero rows
// match, another session changed the visit between read and write and
// ErrStaleStatus is returned so the caller can roll back and report a
// conflict.  The disapproval reason is written on disapproval and
// cleared on every other transition, keeping the reason/status
// invariant in one place.
func (r *VisitRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, visitID uint64, from, to booking.Status, reason string) error {
	var reasonArg *string
	if to == booking.StatusDisapproved {
		reasonArg = &reason
	}
	const q = `UPDATE visits SET status = ?, disapproval_reason = ? WHERE id = ? AND status = ?`
	res, err := tx.ExecContext(ctx, q, string(to), reasonArg, visitID, string(from))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStaleStatus
	}
	return nil
}

// GetDetailByID loads the annotated projection of a single visit.
// Used to build the status-changed event after a transition commits.
func (r *VisitRepo) GetDetailByID(ctx context.Context, visitID uint64) (*VisitDetail, error) {
	const q = `SELECT ` + visitDetailColumns + `
               FROM visits v
               JOIN units u ON u.id = v.unit_id
               JOIN properties p ON p.id = v.property_id
               JOIN users t ON t.id = v.tenant_id
               WHERE v.id = ?`
	row := r.db.QueryRowContext(ctx, q, visitID)
	d, err := r.scanDetail(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}
	return &d, nil
}
