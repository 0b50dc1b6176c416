package repository

import (
	"context"

	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/pkg/pgconv"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	// claimDepositOperationSQL relies on the partial unique index over
	// pending operations; a conflict returns no row.
	claimDepositOperationSQL = `
INSERT INTO deposit_operations (id, reservation_id, intent, idempotency_key, expected_version, state)
VALUES ($1, $2, $3, $4, $5, 'pending')
ON CONFLICT (reservation_id) WHERE state = 'pending' DO NOTHING
RETURNING id`

	recordDepositOperationSQL = `
INSERT INTO deposit_operations (id, reservation_id, intent, idempotency_key, expected_version, state, failure_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	markDepositOperationAppliedSQL = `
UPDATE deposit_operations SET state = 'applied', updated_at = now()
WHERE id = $1 AND state = 'pending'`

	markDepositOperationFailedSQL = `
UPDATE deposit_operations SET state = 'failed', failure_reason = $2, updated_at = now()
WHERE id = $1 AND state = 'pending'`
)

type DepositOperationRepository struct {
	db shared.DBTX
}

func NewDepositOperationRepository(db shared.DBTX) *DepositOperationRepository {
	return &DepositOperationRepository{db: db}
}

func (r *DepositOperationRepository) Claim(ctx context.Context, op shared.DepositOperation) (bool, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, claimDepositOperationSQL,
		op.ID, op.ReservationID, op.Intent.String(), op.IdempotencyKey, op.ExpectedVersion,
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to claim deposit operation", err)
	}
	return true, nil
}

func (r *DepositOperationRepository) Record(ctx context.Context, op shared.DepositOperation) error {
	_, err := r.db.Exec(ctx, recordDepositOperationSQL,
		op.ID, op.ReservationID, op.Intent.String(), op.IdempotencyKey, op.ExpectedVersion,
		string(op.State), pgconv.StringPtrToPgtype(op.FailureReason),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record deposit operation", err)
	}
	return nil
}

func (r *DepositOperationRepository) MarkApplied(ctx context.Context, id uuid.UUID) error {
	return r.settle(ctx, "applied", markDepositOperationAppliedSQL, id)
}

func (r *DepositOperationRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return r.settle(ctx, "failed", markDepositOperationFailedSQL, id, reason)
}

func (r *DepositOperationRepository) settle(ctx context.Context, state, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to mark deposit operation "+state, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no pending deposit operation to mark "+state, nil, infra.KindNotFound)
	}
	return nil
}
