package readstore

import (
	"context"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/pkg/pgconv"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const pendingDepositOperationSQL = `
SELECT id, reservation_id, intent, idempotency_key, expected_version, state, failure_reason, created_at
FROM deposit_operations
WHERE reservation_id = $1 AND state = 'pending'`

type DepositOperationReadStore struct {
	db shared.DBTX
}

func NewDepositOperationReadStore(db shared.DBTX) *DepositOperationReadStore {
	return &DepositOperationReadStore{db: db}
}

// FindPending returns nil without error when nothing is in flight.
func (r *DepositOperationReadStore) FindPending(ctx context.Context, reservationID uuid.UUID) (*shared.DepositOperation, error) {
	var (
		op              shared.DepositOperation
		intent, state   string
		expectedVersion int32
		failureReason   pgtype.Text
		createdAt       pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, pendingDepositOperationSQL, reservationID).Scan(
		&op.ID, &op.ReservationID, &intent, &op.IdempotencyKey, &expectedVersion, &state, &failureReason, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find pending deposit operation", err)
	}

	op.Intent = reservation.DepositIntent(intent)
	op.State = shared.DepositOperationState(state)
	op.ExpectedVersion = int(expectedVersion)
	op.FailureReason = pgconv.StringPtrFromPgtype(failureReason)
	op.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &op, nil
}
