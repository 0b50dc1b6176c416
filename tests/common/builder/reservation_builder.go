//go:build unit || integration || e2e

package builder

import (
	"time"

	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/domain/reservation"
	reqdto "coworking-reservations/internal/handler/dto/request"
	"coworking-reservations/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	SpaceType      string
	StartDate      string
	EndDate        string
	StartTime      *string
	EndTime        *string
	NumberOfPeople int
	Status         reservation.Status
	Outcome        *reservation.PresenceOutcome
	Type           pricing.ReservationType
	TotalPrice     string
	AuthID         string
	DepositAmount  string
	DepositStatus  reservation.DepositStatus
	CancelReason   string
	IsAdminBooking bool
	Version        int
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		SpaceType:      "meeting-room",
		StartDate:      "2025-03-10",
		EndDate:        "2025-03-10",
		StartTime:      StrPtr("09:00"),
		EndTime:        StrPtr("11:00"),
		NumberOfPeople: 4,
		Status:         reservation.StatusPending,
		Type:           pricing.TypeHourly,
		TotalPrice:     "40",
		AuthID:         "auth_test",
		DepositAmount:  "50",
		DepositStatus:  reservation.DepositHeld,
		Version:        1,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildSnapshot() reservation.Snapshot {
	p := pricing.Period{
		StartDate: mustDate(b.StartDate),
		EndDate:   mustDate(b.EndDate),
	}
	if b.StartTime != nil && b.EndTime != nil {
		tr := pricing.NewTimeRange(mustClock(*b.StartTime), mustClock(*b.EndTime))
		p.Times = &tr
	}
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return reservation.Snapshot{
		ID:              b.ID,
		UserID:          b.UserID,
		SpaceType:       ratecard.SpaceType(b.SpaceType),
		Period:          p,
		NumberOfPeople:  b.NumberOfPeople,
		Status:          b.Status,
		Outcome:         b.Outcome,
		ReservationType: b.Type,
		TotalPrice:      decimal.RequireFromString(b.TotalPrice),
		Deposit:         reservation.ReconstructDeposit(b.AuthID, decimal.RequireFromString(b.DepositAmount), b.DepositStatus),
		CancelReason:    b.CancelReason,
		IsAdminBooking:  b.IsAdminBooking,
		Version:         b.Version,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(b.BuildSnapshot())
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	s := b.BuildSnapshot()
	v := &queries.ReservationView{
		ID:              s.ID,
		UserID:          s.UserID,
		SpaceType:       b.SpaceType,
		StartDate:       s.Period.StartDate,
		EndDate:         s.Period.EndDate,
		StartTime:       s.Period.StartTime(),
		EndTime:         s.Period.EndTime(),
		NumberOfPeople:  s.NumberOfPeople,
		Status:          s.Status.String(),
		ReservationType: s.ReservationType.String(),
		TotalPrice:      s.TotalPrice,
		DepositAmount:   s.Deposit.Amount(),
		DepositStatus:   string(s.Deposit.Status()),
		IsAdminBooking:  s.IsAdminBooking,
		Version:         s.Version,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if b.AuthID != "" {
		auth := b.AuthID
		v.DepositAuthorizationID = &auth
	}
	if b.CancelReason != "" {
		reason := b.CancelReason
		v.CancelReason = &reason
	}
	if b.Outcome != nil {
		o := string(*b.Outcome)
		v.PresenceOutcome = &o
	}
	return v
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	v := b.BuildView()
	return &queries.ReservationListItem{
		ID:              v.ID,
		SpaceType:       v.SpaceType,
		StartDate:       v.StartDate,
		EndDate:         v.EndDate,
		StartTime:       v.StartTime,
		EndTime:         v.EndTime,
		NumberOfPeople:  v.NumberOfPeople,
		Status:          v.Status,
		ReservationType: v.ReservationType,
		TotalPrice:      v.TotalPrice,
		CreatedAt:       v.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildRequest() pricing.Request {
	return pricing.Request{
		SpaceType:      ratecard.SpaceType(b.SpaceType),
		Period:         b.BuildSnapshot().Period,
		NumberOfPeople: b.NumberOfPeople,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		QuoteRequest: reqdto.QuoteRequest{
			SpaceType:      b.SpaceType,
			StartDate:      b.StartDate,
			EndDate:        b.EndDate,
			StartTime:      b.StartTime,
			EndTime:        b.EndTime,
			NumberOfPeople: b.NumberOfPeople,
		},
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithSchedule(date string, start *string) *ReservationBuilder {
	b.StartDate = date
	b.EndDate = date
	b.StartTime = start
	b.EndTime = nil
	if start != nil {
		b.EndTime = StrPtr("23:00")
	}
	return b
}

func (b *ReservationBuilder) AsAdminBooking() *ReservationBuilder {
	b.IsAdminBooking = true
	b.AuthID = ""
	b.DepositAmount = "0"
	b.DepositStatus = reservation.DepositNone
	return b
}

func (b *ReservationBuilder) WithUser(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithVersion(v int) *ReservationBuilder {
	b.Version = v
	return b
}

func mustDate(v string) civil.Date {
	d, err := civil.ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

func mustClock(v string) civil.Time {
	t, err := pricing.ParseClock(v)
	if err != nil {
		panic(err)
	}
	return t
}
