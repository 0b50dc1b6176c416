package reservation

import (
	"time"

	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/errs"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Reservation struct {
	id              uuid.UUID
	userID          uuid.UUID
	spaceType       ratecard.SpaceType
	period          pricing.Period
	numberOfPeople  int
	status          Status
	outcome         *PresenceOutcome
	reservationType pricing.ReservationType
	totalPrice      decimal.Decimal
	deposit         Deposit
	cancelReason    string
	isAdminBooking  bool
	note            Note
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// Snapshot is the persisted form of a Reservation.
type Snapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SpaceType       ratecard.SpaceType
	Period          pricing.Period
	NumberOfPeople  int
	Status          Status
	Outcome         *PresenceOutcome
	ReservationType pricing.ReservationType
	TotalPrice      decimal.Decimal
	Deposit         Deposit
	CancelReason    string
	IsAdminBooking  bool
	Note            Note
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructReservation(s Snapshot) *Reservation {
	return &Reservation{
		id:              s.ID,
		userID:          s.UserID,
		spaceType:       s.SpaceType,
		period:          s.Period,
		numberOfPeople:  s.NumberOfPeople,
		status:          s.Status,
		outcome:         s.Outcome,
		reservationType: s.ReservationType,
		totalPrice:      s.TotalPrice,
		deposit:         s.Deposit,
		cancelReason:    s.CancelReason,
		isAdminBooking:  s.IsAdminBooking,
		note:            s.Note,
		version:         s.Version,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

// AttachDeposit records the hold placed for a freshly created reservation.
func (r *Reservation) AttachDeposit(authorizationID string, amount decimal.Decimal) error {
	if r.isAdminBooking {
		return errs.Reasonf(errs.ErrInvalidTransition, "admin bookings carry no deposit")
	}
	if r.status != StatusPending || r.deposit.status != DepositNone {
		return errs.Reasonf(errs.ErrInvalidTransition, "deposit already attached to reservation %s", r.id)
	}
	if authorizationID == "" {
		return errs.Reasonf(errs.ErrInvalidRequest, "deposit authorization id is required")
	}
	r.deposit = Deposit{authorizationID: authorizationID, amount: amount, status: DepositHeld}
	return nil
}

func (r *Reservation) IsTerminal() bool {
	return r.status.IsTerminal()
}

func (r *Reservation) ID() uuid.UUID                            { return r.id }
func (r *Reservation) UserID() uuid.UUID                        { return r.userID }
func (r *Reservation) SpaceType() ratecard.SpaceType            { return r.spaceType }
func (r *Reservation) Period() pricing.Period                   { return r.period }
func (r *Reservation) StartDate() civil.Date                    { return r.period.StartDate }
func (r *Reservation) EndDate() civil.Date                      { return r.period.EndDate }
func (r *Reservation) StartTime() *civil.Time                   { return r.period.StartTime() }
func (r *Reservation) EndTime() *civil.Time                     { return r.period.EndTime() }
func (r *Reservation) NumberOfPeople() int                      { return r.numberOfPeople }
func (r *Reservation) Status() Status                           { return r.status }
func (r *Reservation) Outcome() *PresenceOutcome                { return r.outcome }
func (r *Reservation) ReservationType() pricing.ReservationType { return r.reservationType }
func (r *Reservation) TotalPrice() decimal.Decimal              { return r.totalPrice }
func (r *Reservation) Deposit() Deposit                         { return r.deposit }
func (r *Reservation) CancelReason() string                     { return r.cancelReason }
func (r *Reservation) IsAdminBooking() bool                     { return r.isAdminBooking }
func (r *Reservation) Note() Note                               { return r.note }
func (r *Reservation) Version() int                             { return r.version }
func (r *Reservation) CreatedAt() time.Time                     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time                     { return r.updatedAt }
