package errs

// Kind is the machine readable classification carried by every error returned
// to callers.
type Kind string

const (
	KindRateCardNotFound     Kind = "RATE_CARD_NOT_FOUND"
	KindRateCardInactive     Kind = "RATE_CARD_INACTIVE"
	KindRateNotConfigured    Kind = "RATE_NOT_CONFIGURED"
	KindCapacityOutOfRange   Kind = "CAPACITY_OUT_OF_RANGE"
	KindInvalidTimeRange     Kind = "INVALID_TIME_RANGE"
	KindReservationNotFound  Kind = "RESERVATION_NOT_FOUND"
	KindInvalidTransition    Kind = "INVALID_TRANSITION"
	KindStaleState           Kind = "STALE_STATE"
	KindDepositHoldFailed    Kind = "DEPOSIT_HOLD_FAILED"
	KindDepositCaptureFailed Kind = "DEPOSIT_CAPTURE_FAILED"
	KindDepositReleaseFailed Kind = "DEPOSIT_RELEASE_FAILED"
	KindIdempotencyConflict  Kind = "IDEMPOTENCY_CONFLICT"
	KindInvalidRequest       Kind = "INVALID_REQUEST"
	KindUnauthenticated      Kind = "UNAUTHENTICATED"
	KindForbidden            Kind = "FORBIDDEN"
	KindInternal             Kind = "INTERNAL"
)

// order matters: the first sentinel matched wins
var kindTable = []struct {
	sentinel error
	kind     Kind
}{
	// a malformed stored rate card is a server fault whatever caused it
	{ErrInvalidRateCard, KindInternal},
	{ErrRateCardNotFound, KindRateCardNotFound},
	{ErrRateCardInactive, KindRateCardInactive},
	{ErrRateNotConfigured, KindRateNotConfigured},
	{ErrCapacityOutOfRange, KindCapacityOutOfRange},
	{ErrInvalidTimeRange, KindInvalidTimeRange},
	{ErrReservationNotFound, KindReservationNotFound},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrStaleState, KindStaleState},
	{ErrDepositHoldFailed, KindDepositHoldFailed},
	{ErrDepositCaptureFailed, KindDepositCaptureFailed},
	{ErrDepositReleaseFailed, KindDepositReleaseFailed},
	{ErrIdempotencyConflict, KindIdempotencyConflict},
	{ErrIdempotencyInProgress, KindIdempotencyConflict},
	{ErrIdempotencyKeyRequired, KindInvalidRequest},
	{ErrInvalidRequest, KindInvalidRequest},
	{ErrUnauthenticated, KindUnauthenticated},
	{ErrForbidden, KindForbidden},
}

// KindOf classifies err. Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindTable {
		if Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}

// IsRetryable reports whether a caller may retry the whole operation after
// re-reading the reservation.
func IsRetryable(err error) bool {
	if Is(err, ErrIdempotencyInProgress) {
		return true
	}
	switch KindOf(err) {
	case KindStaleState,
		KindDepositHoldFailed,
		KindDepositCaptureFailed,
		KindDepositReleaseFailed,
		KindInternal:
		return true
	default:
		return false
	}
}
