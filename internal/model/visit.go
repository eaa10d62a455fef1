package model

import "time"

// Visit records a tenant's request to physically inspect a unit on
// a given date and time.  The identity and scheduling fields are
// immutable after creation; the approval workflow mutates only the
// status and, on disapproval, the reason.
//
// Fields:
//  ID                – primary key identifier.
//  Reference         – public UUID returned to clients.
//  TenantID          – tenant who requested the visit.
//  PropertyID        – property being visited.
//  UnitID            – unit being visited.
//  VisitDate         – calendar date of the visit (YYYY-MM-DD).
//  VisitTime         – time of day of the visit (HH:MM).
//  Status            – lifecycle state (pending, approved,
//                      disapproved, cancelled).
//  DisapprovalReason – landlord's reason, set only when the status
//                      is disapproved; null otherwise.
//  CreatedAt         – creation timestamp.
//  UpdatedAt         – last update timestamp.
type Visit struct {
    ID                uint64    // visits.id
    Reference         string    // visits.reference
    TenantID          uint64    // visits.tenant_id
    PropertyID        uint64    // visits.property_id
    UnitID            uint64    // visits.unit_id
    VisitDate         string    // visits.visit_date
    VisitTime         string    // visits.visit_time
    Status            string    // visits.status
    DisapprovalReason *string   // visits.disapproval_reason (nullable)
    CreatedAt         time.Time // visits.created_at
    UpdatedAt         time.Time // visits.updated_at
}
