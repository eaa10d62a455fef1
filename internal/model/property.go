package model

import "time"

// Property represents a rental property listed by a landlord.  A
// property can contain multiple units.  Each property belongs to
// exactly one landlord.  This struct corresponds to a row in the
// `properties` table.
//
// Fields:
//  ID          – primary key identifier.
//  LandlordID  – user ID of the landlord who owns the property.
//  Name        – property name, unique per landlord.
//  Address     – street address of the property.
//  City        – city where the property is located.
//  Description – optional free-text description.
//  IsActive    – whether the property is visible to tenants.
//  CreatedAt   – timestamp when the property was created.
//  UpdatedAt   – timestamp of last update.
type Property struct {
    ID          uint64    // properties.id
    LandlordID  uint64    // properties.landlord_id
    Name        string    // properties.name
    Address     string    // properties.address
    City        string    // properties.city
    Description *string   // properties.description (nullable)
    IsActive    bool      // properties.is_active
    CreatedAt   time.Time // properties.created_at
    UpdatedAt   time.Time // properties.updated_at
}
