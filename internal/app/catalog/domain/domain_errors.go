package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxStoreErrorDetail bounds how much of an underlying store error is
// carried outward; raw driver errors are never surfaced in full.
const maxStoreErrorDetail = 50

// Error kinds for catalog operations
var (
	// ErrStoreUnavailable indicates the store handle is absent.
	// Reads degrade to empty results; writes fail with this error.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreOperation indicates the store handle exists but an
	// individual call (find/distinct/count/insert) failed.
	ErrStoreOperation = errors.New("store operation failed")

	// ErrDataIntegrity indicates a stored document could not be
	// normalized into the public product shape.
	ErrDataIntegrity = errors.New("data integrity error")

	// ErrValidation indicates input to a write operation failed
	// required-field constraints.
	ErrValidation = errors.New("validation failed")
)

// StoreOpError wraps a store-layer failure as ErrStoreOperation,
// keeping at most maxStoreErrorDetail characters of the cause.
func StoreOpError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %s", ErrStoreOperation, op, Truncate(cause.Error(), maxStoreErrorDetail))
}

// ValidationError wraps ErrValidation with the failing constraint.
func ValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// Truncate cuts s to at most n characters, never splitting a rune.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
