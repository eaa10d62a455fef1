// Package queue defines message payloads exchanged over the message broker.
package queue

// VisitStatusChangedEvent is published after a visit status
// transition commits.  It carries enough information for downstream
// consumers to audit, notify, or feed analytics without querying the
// primary database.
type VisitStatusChangedEvent struct {
    VisitID      uint64 `json:"visit_id"`
    Reference    string `json:"reference"`
    TenantID     uint64 `json:"tenant_id"`
    LandlordID   uint64 `json:"landlord_id"`
    PropertyID   uint64 `json:"property_id"`
    PropertyName string `json:"property_name"`
    UnitID       uint64 `json:"unit_id"`
    UnitName     string `json:"unit_name"`
    VisitDate    string `json:"visit_date"`
    VisitTime    string `json:"visit_time"`
    FromStatus   string `json:"from_status"`
    ToStatus     string `json:"to_status"`
    Reason       string `json:"reason,omitempty"`
    ChangedAt    string `json:"changed_at"`
}
