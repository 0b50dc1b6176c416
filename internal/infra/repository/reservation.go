package repository

import (
	"context"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/infra/converter"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/pkg/pgconv"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertReservationSQL = `
INSERT INTO reservations (
	id, user_id, space_type, start_date, end_date, start_time, end_time,
	number_of_people, status, presence_outcome, reservation_type, total_price,
	deposit_authorization_id, deposit_amount, deposit_status, cancel_reason,
	is_admin_booking, note, version, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7,
	$8, $9, $10, $11, $12::numeric,
	$13, $14::numeric, $15, $16,
	$17, $18, $19, $20, $21
)`

	lockReservationSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r
WHERE r.id = $1
FOR UPDATE`

	// conditionalSaveSQL only touches mutable lifecycle columns.
	conditionalSaveSQL = `
UPDATE reservations SET
	status = $3,
	presence_outcome = $4,
	deposit_status = $5,
	cancel_reason = $6,
	version = $7,
	updated_at = $8
WHERE id = $1 AND version = $2`
)

type ReservationRepository struct {
	db shared.DBTX
}

func NewReservationRepository(db shared.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	p := converter.ReservationToInfra(res)

	_, err := r.db.Exec(ctx, insertReservationSQL,
		p.ID, p.UserID, p.SpaceType, p.StartDate, p.EndDate, p.StartTime, p.EndTime,
		p.NumberOfPeople, p.Status, p.PresenceOutcome, p.ReservationType, p.TotalPrice,
		p.DepositAuthorizationID, p.DepositAmount, p.DepositStatus, p.CancelReason,
		p.IsAdminBooking, p.Note, p.Version, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var row converter.ReservationRow
	if err := r.db.QueryRow(ctx, lockReservationSQL, id).Scan(row.Targets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err)
	}
	return res, nil
}

// ConditionalSave reports errs.ErrStaleState when no row matched expectedVersion.
func (r *ReservationRepository) ConditionalSave(ctx context.Context, res *reservation.Reservation, expectedVersion int) error {
	p := converter.ReservationToInfra(res)

	tag, err := r.db.Exec(ctx, conditionalSaveSQL,
		p.ID, expectedVersion,
		p.Status, p.PresenceOutcome, p.DepositStatus, p.CancelReason,
		p.Version, p.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Reasonf(errs.ErrStaleState, "reservation %s is no longer at version %d", res.ID(), expectedVersion)
	}
	return nil
}
