package types

import (
	"errors"
	"fmt"
)

// Error taxonomy for the record core. Callers match with errors.Is; every
// wrapped instance carries the failing field or operation in its message.
var (
	// ErrValidation is returned when a field value fails its format rule.
	// Always recoverable by re-collecting the value.
	ErrValidation = errors.New("validation failed")

	// ErrReferenceNotFound is returned when a foreign key does not resolve
	// to an existing entity in its collection.
	ErrReferenceNotFound = errors.New("referenced entity not found")

	// ErrIntegrity is returned when deleting a person or car that still has
	// future rental orders referencing it.
	ErrIntegrity = errors.New("entity has open orders")

	// ErrAvailabilityConflict is returned when a candidate rental interval
	// overlaps an existing order for the same car.
	ErrAvailabilityConflict = errors.New("car is already taken in that time frame")

	// ErrDataAccess is returned by a Store on I/O failure: missing file or
	// table, malformed row, broken connection, corrupt counter state.
	ErrDataAccess = errors.New("data access failed")

	// ErrNotFound is returned when a row lookup by primary key finds nothing.
	ErrNotFound = errors.New("record not found")
)

// Store lifecycle errors.
var (
	ErrAlreadyAttached   = errors.New("store is already attached")
	ErrStoreDetached     = errors.New("store is detached")
	ErrCollectionUnknown = errors.New("unknown collection")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// rowLengthError reports a stored row whose field count does not match the
// collection's declared field order. Malformed rows are an I/O-boundary
// failure, not a validation failure.
func rowLengthError(collection string, want, got int) error {
	return fmt.Errorf("%w: malformed %s row: want %d fields, got %d", ErrDataAccess, collection, want, got)
}

// rowFieldError reports a stored field value that does not parse in its
// declared format.
func rowFieldError(collection, field, value string) error {
	return fmt.Errorf("%w: malformed %s row: bad %s value %q", ErrDataAccess, collection, field, value)
}
