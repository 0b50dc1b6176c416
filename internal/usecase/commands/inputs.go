package commands

import (
	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/usecase/queries"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositPolicy sizes the authorization placed when a reservation is created.
type DepositPolicy struct {
	Amount decimal.Decimal
}

type CreateReservationInput struct {
	Actor shared.Actor
	// OnBehalfOf books for another user. Admin only; such bookings carry no deposit.
	OnBehalfOf     *uuid.UUID
	Request        pricing.Request
	Note           string
	IdempotencyKey uuid.UUID
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type TransitionInput struct {
	Actor         shared.Actor
	ReservationID uuid.UUID
	Action        reservation.Action
	Reason        string
	SkipCapture   bool
	// ExpectedVersion, when set, rejects the call if the caller's copy is outdated.
	ExpectedVersion *int
}
