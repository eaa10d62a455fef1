// This file defines repository methods for units.  Units are the
// rentable rooms/apartments inside a property; a visit request always
// targets one unit.  Ownership checks go through the parent property.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/upkyp/visit-booking-service/internal/model"
)

// UnitRepo encapsulates all database queries related to units.
type UnitRepo struct {
	db *sql.DB
}

// NewUnitRepo constructs a UnitRepo with the provided DB handle.
func NewUnitRepo(db *sql.DB) *UnitRepo {
	return &UnitRepo{db: db}
}

// Create inserts a new unit under a property the landlord owns.  The
// ownership check joins through properties; ErrPropertyNotFound and
// ErrForbidden are surfaced the same way as in PropertyRepo.
func (r *UnitRepo) Create(ctx context.Context, landlordID uint64, u *model.Unit) error {
	const qOwner = "SELECT landlord_id FROM properties WHERE id = ?"
	var actual uint64
	if err := r.db.QueryRowContext(ctx, qOwner, u.PropertyID).Scan(&actual); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPropertyNotFound
		}
		return err
	}
	if actual != landlordID {
		return ErrForbidden
	}
	const qInsert = "INSERT INTO units (property_id, name, bedrooms, monthly_rent_cents) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, u.PropertyID, u.Name, u.Bedrooms, u.MonthlyCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)

	const qSelect = "SELECT is_active, created_at, updated_at FROM units WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, u.ID).Scan(&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
}

// GetActiveForBooking verifies that a unit exists, is active, belongs
// to the given property and that the property itself is active.  It
// is called when a tenant submits a visit request so that requests
// against hidden listings are rejected before any row is written.
func (r *UnitRepo) GetActiveForBooking(ctx context.Context, unitID, propertyID uint64) (*model.Unit, error) {
	const q = `SELECT u.id, u.property_id, u.name, u.bedrooms, u.monthly_rent_cents, u.is_active, u.created_at, u.updated_at
               FROM units u
               JOIN properties p ON p.id = u.property_id
               WHERE u.id = ? AND u.property_id = ? AND u.is_active = 1 AND p.is_active = 1`
	var u model.Unit
	if err := r.db.QueryRowContext(ctx, q, unitID, propertyID).Scan(
		&u.ID, &u.PropertyID, &u.Name, &u.Bedrooms, &u.MonthlyCents, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListByProperty returns all units of a property owned by the
// landlord, ordered by name.  Returns an empty slice when the
// property has no units.
func (r *UnitRepo) ListByProperty(ctx context.Context, propertyID, landlordID uint64) ([]model.Unit, error) {
	const qOwner = "SELECT landlord_id FROM properties WHERE id = ?"
	var actual uint64
	if err := r.db.QueryRowContext(ctx, qOwner, propertyID).Scan(&actual); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if actual != landlordID {
		return nil, ErrForbidden
	}
	const q = `SELECT id, property_id, name, bedrooms, monthly_rent_cents, is_active, created_at, updated_at
               FROM units WHERE property_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Unit, 0)
	for rows.Next() {
		var u model.Unit
		if err := rows.Scan(&u.ID, &u.PropertyID, &u.Name, &u.Bedrooms, &u.MonthlyCents, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update modifies a unit's mutable fields after verifying ownership
// through the parent property.
func (r *UnitRepo) Update(ctx context.Context, landlordID uint64, u *model.Unit) error {
	const qOwner = `SELECT p.landlord_id FROM units un JOIN properties p ON p.id = un.property_id WHERE un.id = ?`
	var actual uint64
	if err := r.db.QueryRowContext(ctx, qOwner, u.ID).Scan(&actual); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUnitNotFound
		}
		return err
	}
	if actual != landlordID {
		return ErrForbidden
	}
	const q = "UPDATE units SET name = ?, bedrooms = ?, monthly_rent_cents = ?, is_active = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, u.Name, u.Bedrooms, u.MonthlyCents, u.IsActive, u.ID)
	return err
}
