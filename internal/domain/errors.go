package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the airline inventory core.
// Callers use errors.Is to classify failures; the HTTP layer maps each
// sentinel to a status code.
var (
	// ErrValidation indicates malformed or inconsistent input: broken leg
	// continuity, negative window seats, a price multiplier below 1, or a
	// seat-sum/capacity mismatch.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a referenced entity (airplane, airport, city,
	// country, flight, rotation) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOverlap indicates a candidate rotation time-conflicts with an
	// active rotation on the same airplane.
	ErrOverlap = errors.New("rotation overlap")

	// ErrInsufficientInventory indicates a seat decrement that no single
	// window of the requested class can satisfy.
	ErrInsufficientInventory = errors.New("insufficient seat inventory")

	// ErrConflict indicates a concurrent modification was detected while
	// persisting a seat snapshot; the operation may be retried.
	ErrConflict = errors.New("conflict")
)

// NewValidationError wraps ErrValidation with a formatted detail message.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewNotFoundError wraps ErrNotFound with the entity kind and identifier.
func NewNotFoundError(entity string, id uint64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// NewOverlapError wraps ErrOverlap with the conflicting detail: the instant
// through which the airplane's existing rotations occupy time.
func NewOverlapError(airplaneID uint64, occupiedUntil string) error {
	return fmt.Errorf("%w: airplane %d is occupied through %s", ErrOverlap, airplaneID, occupiedUntil)
}
