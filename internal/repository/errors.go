// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current landlord is not
// authorized to act on a visit targeting a property owned by someone
// else, while ErrStaleStatus signals that a guarded status update
// matched no row because another session changed the visit first.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrStaleStatus is returned when a status update guarded by the
// expected prior status affects zero rows even though the visit
// exists. It means a concurrent session already transitioned the
// visit. Handlers should translate this into an HTTP 409 response.
var ErrStaleStatus = errors.New("visit status changed concurrently")

// ErrVisitNotFound is returned when a visit cannot be found.
var ErrVisitNotFound = errors.New("visit not found")

// ErrPropertyNotFound is returned when a property cannot be found.
var ErrPropertyNotFound = errors.New("property not found")

// ErrUnitNotFound is returned when a unit cannot be found or does
// not belong to the property named in a visit request.
var ErrUnitNotFound = errors.New("unit not found")

// ErrEmailExists is returned by UserRepo.Create when the email
// address is already registered.
var ErrEmailExists = errors.New("email already exists")
