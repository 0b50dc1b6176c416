package shared

import (
	"time"

	"coworking-reservations/internal/domain/reservation"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

type DepositOperationState string

const (
	DepositOpPending DepositOperationState = "pending"
	DepositOpApplied DepositOperationState = "applied"
	DepositOpFailed  DepositOperationState = "failed"
)

// DepositOperation is one entry of the deposit saga ledger.
type DepositOperation struct {
	ID              uuid.UUID
	ReservationID   uuid.UUID
	Intent          reservation.DepositIntent
	IdempotencyKey  string
	ExpectedVersion int
	State           DepositOperationState
	FailureReason   *string
	CreatedAt       time.Time
}

// DepositKey is the idempotency key sent to the deposit service.
func DepositKey(reservationID uuid.UUID, intent reservation.DepositIntent) string {
	return reservationID.String() + ":" + intent.String()
}

type Notification struct {
	Event          reservation.Event `json:"event"`
	ReservationID  uuid.UUID         `json:"reservation_id"`
	UserID         uuid.UUID         `json:"user_id"`
	SpaceType      string            `json:"space_type"`
	Status         string            `json:"status"`
	StartDate      civil.Date        `json:"start_date"`
	EndDate        civil.Date        `json:"end_date"`
	Reason         string            `json:"reason,omitempty"`
	IsAdminBooking bool              `json:"is_admin_booking"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

func NewNotification(event reservation.Event, r *reservation.Reservation, at time.Time) Notification {
	return Notification{
		Event:          event,
		ReservationID:  r.ID(),
		UserID:         r.UserID(),
		SpaceType:      r.SpaceType().String(),
		Status:         r.Status().String(),
		StartDate:      r.StartDate(),
		EndDate:        r.EndDate(),
		Reason:         r.CancelReason(),
		IsAdminBooking: r.IsAdminBooking(),
		OccurredAt:     at,
	}
}

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleStaff || r == RoleAdmin
}

func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Actor is the authenticated caller of a usecase.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}
