package converter

import (
	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationColumns is the select list matching ReservationRow.Targets.
const ReservationColumns = `
	r.id, r.user_id, r.space_type, r.start_date, r.end_date, r.start_time, r.end_time,
	r.number_of_people, r.status, r.presence_outcome, r.reservation_type, r.total_price::text,
	r.deposit_authorization_id, r.deposit_amount::text, r.deposit_status, r.cancel_reason,
	r.is_admin_booking, r.note, r.version, r.created_at, r.updated_at`

type ReservationRow struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	SpaceType              string
	StartDate              pgtype.Date
	EndDate                pgtype.Date
	StartTime              pgtype.Time
	EndTime                pgtype.Time
	NumberOfPeople         int32
	Status                 string
	PresenceOutcome        pgtype.Text
	ReservationType        string
	TotalPrice             string
	DepositAuthorizationID pgtype.Text
	DepositAmount          string
	DepositStatus          string
	CancelReason           pgtype.Text
	IsAdminBooking         bool
	Note                   pgtype.Text
	Version                int32
	CreatedAt              pgtype.Timestamptz
	UpdatedAt              pgtype.Timestamptz
}

func (r *ReservationRow) Targets() []any {
	return []any{
		&r.ID, &r.UserID, &r.SpaceType, &r.StartDate, &r.EndDate, &r.StartTime, &r.EndTime,
		&r.NumberOfPeople, &r.Status, &r.PresenceOutcome, &r.ReservationType, &r.TotalPrice,
		&r.DepositAuthorizationID, &r.DepositAmount, &r.DepositStatus, &r.CancelReason,
		&r.IsAdminBooking, &r.Note, &r.Version, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r *ReservationRow) Period() pricing.Period {
	p := pricing.Period{
		StartDate: pgconv.DateFromPgtype(r.StartDate),
		EndDate:   pgconv.DateFromPgtype(r.EndDate),
	}
	start := pgconv.ClockPtrFromPgtype(r.StartTime)
	end := pgconv.ClockPtrFromPgtype(r.EndTime)
	if start != nil && end != nil {
		tr := pricing.NewTimeRange(*start, *end)
		p.Times = &tr
	}
	return p
}

func ReservationToDomain(r ReservationRow) (*reservation.Reservation, error) {
	total, err := pgconv.DecimalFromText(r.TotalPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s: total_price", r.ID)
	}
	depositAmount, err := pgconv.DecimalFromText(r.DepositAmount)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s: deposit_amount", r.ID)
	}

	var outcome *reservation.PresenceOutcome
	if r.PresenceOutcome.Valid {
		o := reservation.PresenceOutcome(r.PresenceOutcome.String)
		outcome = &o
	}

	note, err := reservation.NewNote(pgconv.StringFromPgtype(r.Note))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s: note", r.ID)
	}

	return reservation.ReconstructReservation(reservation.Snapshot{
		ID:              r.ID,
		UserID:          r.UserID,
		SpaceType:       ratecard.SpaceType(r.SpaceType),
		Period:          r.Period(),
		NumberOfPeople:  int(r.NumberOfPeople),
		Status:          reservation.Status(r.Status),
		Outcome:         outcome,
		ReservationType: pricing.ReservationType(r.ReservationType),
		TotalPrice:      total,
		Deposit: reservation.ReconstructDeposit(
			pgconv.StringFromPgtype(r.DepositAuthorizationID),
			depositAmount,
			reservation.DepositStatus(r.DepositStatus),
		),
		CancelReason:   pgconv.StringFromPgtype(r.CancelReason),
		IsAdminBooking: r.IsAdminBooking,
		Note:           note,
		Version:        int(r.Version),
		CreatedAt:      pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(r.UpdatedAt),
	}), nil
}

// ReservationParams are the bind arguments of an insert or full-row update.
type ReservationParams struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	SpaceType              string
	StartDate              pgtype.Date
	EndDate                pgtype.Date
	StartTime              pgtype.Time
	EndTime                pgtype.Time
	NumberOfPeople         int32
	Status                 string
	PresenceOutcome        pgtype.Text
	ReservationType        string
	TotalPrice             string
	DepositAuthorizationID pgtype.Text
	DepositAmount          string
	DepositStatus          string
	CancelReason           pgtype.Text
	IsAdminBooking         bool
	Note                   pgtype.Text
	Version                int32
	CreatedAt              pgtype.Timestamptz
	UpdatedAt              pgtype.Timestamptz
}

func ReservationToInfra(res *reservation.Reservation) ReservationParams {
	var outcome pgtype.Text
	if o := res.Outcome(); o != nil {
		outcome = pgconv.StringToPgtype(string(*o))
	}
	dep := res.Deposit()

	return ReservationParams{
		ID:                     res.ID(),
		UserID:                 res.UserID(),
		SpaceType:              res.SpaceType().String(),
		StartDate:              pgconv.DateToPgtype(res.StartDate()),
		EndDate:                pgconv.DateToPgtype(res.EndDate()),
		StartTime:              pgconv.ClockPtrToPgtype(res.StartTime()),
		EndTime:                pgconv.ClockPtrToPgtype(res.EndTime()),
		NumberOfPeople:         int32(res.NumberOfPeople()), // #nosec G115 -- bounded by rate card capacity
		Status:                 res.Status().String(),
		PresenceOutcome:        outcome,
		ReservationType:        res.ReservationType().String(),
		TotalPrice:             pgconv.DecimalToText(res.TotalPrice()),
		DepositAuthorizationID: pgconv.StringToPgtype(dep.AuthorizationID()),
		DepositAmount:          pgconv.DecimalToText(dep.Amount()),
		DepositStatus:          string(dep.Status()),
		CancelReason:           pgconv.StringToPgtype(res.CancelReason()),
		IsAdminBooking:         res.IsAdminBooking(),
		Note:                   pgconv.StringToPgtype(res.Note().String()),
		Version:                int32(res.Version()), // #nosec G115
		CreatedAt:              pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:              pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}
