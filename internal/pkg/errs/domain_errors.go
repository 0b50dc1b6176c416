package errs

import "errors"

// Domain-specific sentinel errors shared by the domain, usecase and handler layers
var (
	// Pricing errors
	ErrRateCardNotFound   = errors.New("rate card not found")
	ErrRateCardInactive   = errors.New("rate card inactive")
	ErrRateNotConfigured  = errors.New("rate not configured")
	ErrCapacityOutOfRange = errors.New("capacity out of range")
	ErrInvalidTimeRange   = errors.New("invalid time range")
	ErrInvalidRateCard    = errors.New("invalid rate card")

	// Lifecycle errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrStaleState          = errors.New("stale state")

	// Deposit errors
	ErrDepositHoldFailed    = errors.New("deposit hold failed")
	ErrDepositCaptureFailed = errors.New("deposit capture failed")
	ErrDepositReleaseFailed = errors.New("deposit release failed")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyConflict    = errors.New("idempotency key reused with a different request")

	// Request errors
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
