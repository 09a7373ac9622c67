package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no ticket exists with the requested id.
	ErrNotFound = errors.New("ticket not found")

	// ErrVersionConflict is returned by a store when a conditional write
	// observes a version other than the expected one. It stays internal
	// to the purchase loop; callers see ErrConflict once retries run out.
	ErrVersionConflict = errors.New("version conflict")

	// ErrConflict means the purchase retry budget was exhausted under
	// contention. The caller may retry the whole purchase.
	ErrConflict = errors.New("purchase conflict, retry budget exhausted")

	// ErrStorageUnavailable wraps transport or store failures so callers
	// can tell "try later" apart from business rejections.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError rejects a malformed purchase request before any state
// is touched. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError is a terminal business rejection carrying the
// numbers the caller needs to adjust or abort.
type InsufficientStockError struct {
	TicketID  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for ticket %s: available %d, requested %d",
		e.TicketID, e.Available, e.Requested)
}

// StorageError wraps a backend failure with ErrStorageUnavailable so
// errors.Is(err, ErrStorageUnavailable) holds wherever it propagates.
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}
