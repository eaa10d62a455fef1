package model

import "time"

// Unit describes an individual rentable unit within a property.
// Units are uniquely named per property.  A visit request always
// targets a specific unit.
//
// Fields:
//  ID           – primary key identifier.
//  PropertyID   – property to which this unit belongs.
//  Name         – unit name or number (e.g. "2B"), unique per property.
//  Bedrooms     – number of bedrooms.
//  MonthlyCents – advertised monthly rent in cents.
//  IsActive     – whether the unit is available for viewing requests.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Unit struct {
    ID           uint64    // units.id
    PropertyID   uint64    // units.property_id
    Name         string    // units.name
    Bedrooms     uint32    // units.bedrooms
    MonthlyCents uint32    // units.monthly_rent_cents
    IsActive     bool      // units.is_active
    CreatedAt    time.Time // units.created_at
    UpdatedAt    time.Time // units.updated_at
}
