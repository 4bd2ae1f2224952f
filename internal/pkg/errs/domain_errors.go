package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Code is the stable identifier handed to callers alongside the human-readable reason.
type Code string

const (
	CodeInvalidTimeSlot        Code = "INVALID_TIME_SLOT"
	CodeClientNotFound         Code = "CLIENT_NOT_FOUND"
	CodeServiceNotFound        Code = "SERVICE_NOT_FOUND"
	CodeServiceNotActive       Code = "SERVICE_NOT_ACTIVE"
	CodeResourceNotFound       Code = "RESOURCE_NOT_FOUND"
	CodeResourceNotAvailable   Code = "RESOURCE_NOT_AVAILABLE"
	CodeInvalidStateTransition Code = "INVALID_STATE_TRANSITION"
	CodeRescheduleTooLate      Code = "RESCHEDULE_TOO_LATE"
	CodePersistenceFailure     Code = "PERSISTENCE_FAILURE"
	CodeBookingNotFound        Code = "BOOKING_NOT_FOUND"
	CodeIdempotencyConflict    Code = "IDEMPOTENCY_CONFLICT"
	CodeIdempotencyInProgress  Code = "IDEMPOTENCY_IN_PROGRESS"
	CodeValidationFailed       Code = "VALIDATION_FAILED"
	CodeInternal               Code = "INTERNAL"
)

type codedError struct {
	code Code
	msg  string
}

func (e *codedError) Error() string { return e.msg }

func (e *codedError) Code() Code { return e.code }

var registry []*codedError

// messages must stay unique: cockroachdb marks compare by type and message
func newCoded(code Code, msg string) error {
	e := &codedError{code: code, msg: msg}
	registry = append(registry, e)
	return e
}

// Scheduling failure taxonomy
var (
	ErrInvalidTimeSlot        = newCoded(CodeInvalidTimeSlot, "invalid time slot")
	ErrClientNotFound         = newCoded(CodeClientNotFound, "client not found")
	ErrServiceNotFound        = newCoded(CodeServiceNotFound, "service not found")
	ErrServiceNotActive       = newCoded(CodeServiceNotActive, "service not active")
	ErrResourceNotFound       = newCoded(CodeResourceNotFound, "resource not found")
	ErrResourceNotAvailable   = newCoded(CodeResourceNotAvailable, "resource not available")
	ErrInvalidStateTransition = newCoded(CodeInvalidStateTransition, "invalid state transition")
	ErrRescheduleTooLate      = newCoded(CodeRescheduleTooLate, "reschedule too late")
	ErrPersistenceFailure     = newCoded(CodePersistenceFailure, "persistence failure")
	ErrBookingNotFound        = newCoded(CodeBookingNotFound, "booking not found")

	// Idempotency errors
	ErrIdempotencyConflict   = newCoded(CodeIdempotencyConflict, "idempotency key reused with different request")
	ErrIdempotencyInProgress = newCoded(CodeIdempotencyInProgress, "idempotency in progress")

	ErrValidation = newCoded(CodeValidationFailed, "validation failed")
)

// Is reports whether err carries target, including cockroachdb marks.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	for _, sentinel := range registry {
		if cr.Is(err, sentinel) {
			return sentinel.code
		}
	}
	return CodeInternal
}

// IsRetryable is true only for transient infrastructure failures; validation and
// availability outcomes cannot change without new input.
func IsRetryable(err error) bool {
	return CodeOf(err) == CodePersistenceFailure
}
