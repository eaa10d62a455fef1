// Package booking contains the pure domain logic of the visit
// approval workflow: the status state machine and the calendar
// aggregation.  Nothing in this package touches the network or the
// database, which keeps the workflow rules testable in isolation.
package booking

import (
    "errors"
    "strings"
)

// Status is the lifecycle state of a visit.  A visit starts as
// StatusPending and is moved exactly once by the landlord into an
// active or terminal state.  StatusDisapproved and StatusCancelled
// are terminal; no transition leaves them.
type Status string

const (
    StatusPending     Status = "pending"
    StatusApproved    Status = "approved"
    StatusDisapproved Status = "disapproved"
    StatusCancelled   Status = "cancelled"
)

// Sentinel errors returned by ValidateTransition.  Handlers translate
// ErrIllegalTransition into HTTP 409 and the reason errors into 400.
var (
    ErrUnknownStatus     = errors.New("unknown status")
    ErrIllegalTransition = errors.New("illegal status transition")
    ErrReasonRequired    = errors.New("disapproval requires a non-empty reason")
    ErrReasonNotAllowed  = errors.New("reason is only accepted on disapproval")
)

// ParseStatus normalizes and validates a status string received over
// the wire.  It returns ErrUnknownStatus for anything outside the
// four lifecycle states.
func ParseStatus(raw string) (Status, error) {
    s := Status(strings.ToLower(strings.TrimSpace(raw)))
    switch s {
    case StatusPending, StatusApproved, StatusDisapproved, StatusCancelled:
        return s, nil
    }
    return "", ErrUnknownStatus
}

// Terminal reports whether no transition may leave the status.
func (s Status) Terminal() bool {
    return s == StatusDisapproved || s == StatusCancelled
}

// CanTransition reports whether the workflow permits moving a visit
// from one status to another.  The legal moves are:
//
//  pending  → approved     (landlord approves)
//  pending  → disapproved  (landlord declines, reason required)
//  approved → cancelled    (landlord cancels a confirmed visit)
//
// Every other pair is rejected, including any move out of a terminal
// state and any move back to pending.
func CanTransition(from, to Status) bool {
    switch from {
    case StatusPending:
        return to == StatusApproved || to == StatusDisapproved
    case StatusApproved:
        return to == StatusCancelled
    }
    return false
}

// ValidateTransition checks both the legality of the move and the
// reason contract: a disapproval must carry a non-empty,
// non-whitespace reason, and no other transition may carry one.
// The returned reason is trimmed and safe to persist.
func ValidateTransition(from, to Status, reason string) (string, error) {
    if !CanTransition(from, to) {
        return "", ErrIllegalTransition
    }
    trimmed := strings.TrimSpace(reason)
    if to == StatusDisapproved {
        if trimmed == "" {
            return "", ErrReasonRequired
        }
        return trimmed, nil
    }
    if trimmed != "" {
        return "", ErrReasonNotAllowed
    }
    return "", nil
}
