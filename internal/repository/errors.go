// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrRoomUnavailable indicates that a requested date range
// collides with an existing booking, while ErrReferenceExhausted
// signals that the bounded reference retry loop gave up and the
// uniqueness constraint should be inspected.
package repository

import "errors"

// ErrRoomNotFound is returned when a room lookup by id or slug matches
// no row. Handlers should translate this into an HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomUnavailable is returned when the in-transaction overlap check
// finds an existing booking occupying a night of the requested range.
// Handlers should translate this into an HTTP 409 response.
var ErrRoomUnavailable = errors.New("room unavailable for requested dates")

// ErrCapacityExceeded is returned when the requested guest count is
// larger than the room's capacity. Handlers should translate this into
// an HTTP 400 response.
var ErrCapacityExceeded = errors.New("guest count exceeds room capacity")

// ErrInvalidDateRange is returned when check-out is not strictly after
// check-in. A violated precondition is an error, never a silent empty
// result.
var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// ErrReferenceExhausted is returned when the booking writer could not
// find an unused reference within its bounded retry budget. This should
// be treated as an alerting condition, not a user-facing retry.
var ErrReferenceExhausted = errors.New("booking reference space exhausted")

// ErrReferenceExists is returned by SetReference when the candidate
// reference is already taken; the backfill utility retries on it.
var ErrReferenceExists = errors.New("reference already exists")
