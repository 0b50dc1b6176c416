package readstore

import (
	"context"
	"time"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/infra/converter"
	"coworking-reservations/internal/pkg/pgconv"
	"coworking-reservations/internal/usecase/queries"
	"coworking-reservations/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	reservationByIDSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r
WHERE r.id = $1`

	reservationsByUserFirstPageSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

	reservationsByUserKeysetSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r
WHERE r.user_id = $1 AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

	reservationsStartingFromSQL = `SELECT ` + converter.ReservationColumns + `
FROM reservations r
WHERE $1::date IS NULL OR r.start_date >= $1
ORDER BY r.start_date, r.start_time NULLS LAST, r.id`
)

type ReservationReadStore struct {
	db shared.DBTX
}

func NewReservationReadStore(db shared.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var row converter.ReservationRow
	if err := r.db.QueryRow(ctx, reservationByIDSQL, id).Scan(row.Targets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view, err := rowToReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err)
	}
	return view, nil
}

// FindAggregateByID loads the reservation for command-side validation without locking it.
func (r *ReservationReadStore) FindAggregateByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var row converter.ReservationRow
	if err := r.db.QueryRow(ctx, reservationByIDSQL, id).Scan(row.Targets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err)
	}
	return res, nil
}

func (r *ReservationReadStore) FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsByUserFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}
	return collectListItems(rows)
}

func (r *ReservationReadStore) FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsByUserKeysetSQL, userID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}
	return collectListItems(rows)
}

func (r *ReservationReadStore) FindStartingFrom(ctx context.Context, from civil.Date) ([]*queries.ReservationView, error) {
	var since pgtype.Date
	if from.IsValid() {
		since = pgconv.DateToPgtype(from)
	}
	rows, err := r.db.Query(ctx, reservationsStartingFromSQL, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by start date", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		var row converter.ReservationRow
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		view, err := rowToReservationView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

func collectListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var row converter.ReservationRow
		if err := rows.Scan(row.Targets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		item, err := rowToReservationListItem(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

func rowToReservationView(row converter.ReservationRow) (*queries.ReservationView, error) {
	total, err := pgconv.DecimalFromText(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	depositAmount, err := pgconv.DecimalFromText(row.DepositAmount)
	if err != nil {
		return nil, err
	}
	p := row.Period()

	return &queries.ReservationView{
		ID:                     row.ID,
		UserID:                 row.UserID,
		SpaceType:              row.SpaceType,
		StartDate:              p.StartDate,
		EndDate:                p.EndDate,
		StartTime:              p.StartTime(),
		EndTime:                p.EndTime(),
		NumberOfPeople:         int(row.NumberOfPeople),
		Status:                 row.Status,
		PresenceOutcome:        pgconv.StringPtrFromPgtype(row.PresenceOutcome),
		ReservationType:        row.ReservationType,
		TotalPrice:             total,
		DepositAuthorizationID: pgconv.StringPtrFromPgtype(row.DepositAuthorizationID),
		DepositAmount:          depositAmount,
		DepositStatus:          row.DepositStatus,
		CancelReason:           pgconv.StringPtrFromPgtype(row.CancelReason),
		IsAdminBooking:         row.IsAdminBooking,
		Note:                   pgconv.StringPtrFromPgtype(row.Note),
		Version:                int(row.Version),
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func rowToReservationListItem(row converter.ReservationRow) (*queries.ReservationListItem, error) {
	total, err := pgconv.DecimalFromText(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	p := row.Period()

	return &queries.ReservationListItem{
		ID:              row.ID,
		SpaceType:       row.SpaceType,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		StartTime:       p.StartTime(),
		EndTime:         p.EndTime(),
		NumberOfPeople:  int(row.NumberOfPeople),
		Status:          row.Status,
		ReservationType: row.ReservationType,
		TotalPrice:      total,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
