package reservation

import (
	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/clock"
	"coworking-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

type Draft struct {
	UserID         uuid.UUID
	Request        pricing.Request
	Note           Note
	IsAdminBooking bool
}

type Factory struct {
	Clock      clock.Clock
	Calculator pricing.Calculator
}

func NewFactory(clock clock.Clock, calculator pricing.Calculator) *Factory {
	return &Factory{
		Clock:      clock,
		Calculator: calculator,
	}
}

// CreateReservation prices the draft and returns a pending reservation with
// no deposit attached yet, together with the quote it was priced from.
func (f *Factory) CreateReservation(card *ratecard.RateCard, d Draft) (*Reservation, *pricing.Quote, error) {
	if d.UserID == uuid.Nil {
		return nil, nil, errs.Reasonf(errs.ErrInvalidRequest, "reservation requires a user")
	}
	q, err := f.Calculator.Quote(card, d.Request)
	if err != nil {
		return nil, nil, err
	}

	now := f.Clock.Now()
	return &Reservation{
		id:              uuid.New(),
		userID:          d.UserID,
		spaceType:       q.SpaceType(),
		period:          d.Request.Period,
		numberOfPeople:  d.Request.NumberOfPeople,
		status:          StatusPending,
		reservationType: q.ReservationType(),
		totalPrice:      q.TotalPrice(),
		deposit:         NoDeposit(),
		isAdminBooking:  d.IsAdminBooking,
		note:            d.Note,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, q, nil
}
