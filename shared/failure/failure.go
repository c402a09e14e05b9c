package failure

import (
	"errors"
)

// Kind classifies a Failure so callers can choose how to react without
// parsing messages.
type Kind string

const (
	// KindValidation covers malformed or out-of-range input: negative
	// amounts, checkout before checkin, advance exceeding total, booking
	// a non-vacant room, missing required guest fields.
	KindValidation Kind = "validation"
	// KindState covers illegal transitions: double checkout, payment
	// against an already checked-out booking.
	KindState Kind = "state"
	// KindNotFound covers references to unknown customer/room/booking ids.
	KindNotFound Kind = "not_found"
	// KindConflict covers soft-unique collisions, e.g. registering a
	// customer whose phone number is already on file.
	KindConflict Kind = "conflict"
	// KindPersistence covers storage write failures. The in-memory state
	// is kept; the system continues in-memory-only until the next
	// successful save.
	KindPersistence Kind = "persistence"
)

// Failure is a wrapper for error messages carrying a machine-readable kind.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a new Failure for bad input or violated preconditions.
func Validation(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Message: msg,
	}
}

// ValidationFromError returns a new validation Failure with the message
// derived from an error interface.
func ValidationFromError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// State returns a new Failure for an illegal state transition.
func State(msg string) error {
	return &Failure{
		Kind:    KindState,
		Message: msg,
	}
}

// NotFound returns a new Failure for an unknown entity reference.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: entityName + " not found",
	}
}

// Conflict returns a new Failure for soft-unique key collisions.
func Conflict(message string) error {
	return &Failure{
		Kind:    KindConflict,
		Message: message,
	}
}

// Persistence returns a new Failure for a storage error.
func Persistence(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindPersistence,
			Message: err.Error(),
		}
	}

	return nil
}

// GetKind returns the kind of an error interface. Errors that are not
// Failures are reported as persistence failures, the only kind that can
// originate outside the core.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindPersistence
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind == kind
	}

	return false
}
