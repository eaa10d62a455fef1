// This file defines repository methods for landlord properties.  A
// Property is the top-level listing object; it contains units and is
// the ownership anchor for the visit approval workflow (a landlord
// may only act on visits that target one of their properties).
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons

	"github.com/upkyp/visit-booking-service/internal/model"
)

// PropertyRepo encapsulates all database queries related to
// properties.  It depends on a sql.DB connection configured at
// startup.
type PropertyRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewPropertyRepo constructs a PropertyRepo with the provided DB
// handle.  This allows dependency injection of the database in tests
// and at startup.
func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{db: db}
}

// Create inserts a new property.  On success the property's ID field
// is populated with the auto-generated value and a follow-up SELECT
// fills the default timestamp columns so callers receive a fully
// populated record.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	const qInsert = "INSERT INTO properties (landlord_id, name, address, city, description) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, p.LandlordID, p.Name, p.Address, p.City, p.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const qSelect = "SELECT is_active, created_at, updated_at FROM properties WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, p.ID).Scan(&p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

// GetByIDAndLandlord fetches a property by id but only if it belongs
// to the specified landlord.  It returns ErrPropertyNotFound when the
// property does not exist and ErrForbidden when it is owned by
// someone else, so handlers can distinguish 404 from 403.
func (r *PropertyRepo) GetByIDAndLandlord(ctx context.Context, id, landlordID uint64) (*model.Property, error) {
	const q = "SELECT id, landlord_id, name, address, city, description, is_active, created_at, updated_at FROM properties WHERE id = ?"
	var p model.Property
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.City, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if p.LandlordID != landlordID {
		return nil, ErrForbidden
	}
	return &p, nil
}

// ListByLandlord returns all properties owned by the landlord,
// newest first.  An empty slice (never nil) is returned when the
// landlord has no properties.
func (r *PropertyRepo) ListByLandlord(ctx context.Context, landlordID uint64) ([]model.Property, error) {
	const q = `SELECT id, landlord_id, name, address, city, description, is_active, created_at, updated_at
               FROM properties WHERE landlord_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Property, 0)
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.City, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update modifies the mutable fields of a property after verifying
// ownership.  Identity fields (id, landlord_id) are never changed.
func (r *PropertyRepo) Update(ctx context.Context, p *model.Property) error {
	if _, err := r.GetByIDAndLandlord(ctx, p.ID, p.LandlordID); err != nil {
		return err
	}
	const q = "UPDATE properties SET name = ?, address = ?, city = ?, description = ?, is_active = ? WHERE id = ? AND landlord_id = ?"
	_, err := r.db.ExecContext(ctx, q, p.Name, p.Address, p.City, p.Description, p.IsActive, p.ID, p.LandlordID)
	return err
}

// Deactivate hides a property (and implicitly its units) from tenant
// browsing without deleting historical visits that reference it.
func (r *PropertyRepo) Deactivate(ctx context.Context, id, landlordID uint64) error {
	if _, err := r.GetByIDAndLandlord(ctx, id, landlordID); err != nil {
		return err
	}
	const q = "UPDATE properties SET is_active = 0 WHERE id = ? AND landlord_id = ?"
	_, err := r.db.ExecContext(ctx, q, id, landlordID)
	return err
}

// PublicProperty is the sanitized projection served to browsing
// tenants.  Landlord identity and inactive listings are not exposed.
type PublicProperty struct {
	ID      uint64       `json:"id"`
	Name    string       `json:"name"`
	Address string       `json:"address"`
	City    string       `json:"city"`
	Units   []PublicUnit `json:"units"`
}

// PublicUnit is the unit projection embedded in PublicProperty.
type PublicUnit struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Bedrooms     uint32 `json:"bedrooms"`
	MonthlyCents uint32 `json:"monthly_rent_cents"`
}

// ListActiveWithUnits returns every active property together with its
// active units for the public browse endpoint.  Properties without
// active units are still listed with an empty units array.
func (r *PropertyRepo) ListActiveWithUnits(ctx context.Context) ([]PublicProperty, error) {
	const q = `SELECT p.id, p.name, p.address, p.city, u.id, u.name, u.bedrooms, u.monthly_rent_cents
               FROM properties p
               LEFT JOIN units u ON u.property_id = p.id AND u.is_active = 1
               WHERE p.is_active = 1
               ORDER BY p.city, p.name, u.name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]PublicProperty, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var (
			pid          uint64
			name         string
			address      string
			city         string
			unitID       sql.NullInt64
			unitName     sql.NullString
			bedrooms     sql.NullInt64
			monthlyCents sql.NullInt64
		)
		if err := rows.Scan(&pid, &name, &address, &city, &unitID, &unitName, &bedrooms, &monthlyCents); err != nil {
			return nil, err
		}
		idx, ok := index[pid]
		if !ok {
			idx = len(out)
			index[pid] = idx
			out = append(out, PublicProperty{ID: pid, Name: name, Address: address, City: city, Units: []PublicUnit{}})
		}
		if unitID.Valid {
			out[idx].Units = append(out[idx].Units, PublicUnit{
				ID:           uint64(unitID.Int64),
				Name:         unitName.String,
				Bedrooms:     uint32(bedrooms.Int64),
				MonthlyCents: uint32(monthlyCents.Int64),
			})
		}
	}
	return out, rows.Err()
}
