package repository

import (
	"context"
	"time"

	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/pkg/pgconv"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	// tryInsertIdempotencyKeySQL takes over an expired key and leaves a live
	// one untouched, in which case no row is returned.
	tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO UPDATE SET
	endpoint = EXCLUDED.endpoint,
	request_hash = EXCLUDED.request_hash,
	status = 'processing',
	response_body_hash = NULL,
	result_reservation_id = NULL,
	expires_at = EXCLUDED.expires_at,
	created_at = now()
WHERE idempotency_keys.expires_at < now()
RETURNING key`

	updateIdempotencyKeyCompletedSQL = `
UPDATE idempotency_keys
SET status = 'completed', response_body_hash = $3, result_reservation_id = $4
WHERE key = $1 AND user_id = $2`

	deleteIdempotencyKeySQL = `DELETE FROM idempotency_keys WHERE key = $1 AND user_id = $2`

	deleteExpiredIdempotencyKeysSQL = `DELETE FROM idempotency_keys WHERE expires_at < now()`
)

type IdempotencyRepository struct {
	db shared.DBTX
}

func NewIdempotencyRepository(db shared.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	var claimed uuid.UUID
	err := r.db.QueryRow(ctx, tryInsertIdempotencyKeySQL,
		key, userID, endpoint, requestHash, pgconv.TimeToPgtype(expiresAt),
	).Scan(&claimed)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return true, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, key uuid.UUID, userID uuid.UUID, responseBodyHash string, resultReservationID uuid.UUID) error {
	_, err := r.db.Exec(ctx, updateIdempotencyKeyCompletedSQL,
		key, userID, pgconv.StringToPgtype(responseBodyHash), pgconv.UUIDToPgtype(resultReservationID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

func (r *IdempotencyRepository) Delete(ctx context.Context, key uuid.UUID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, deleteIdempotencyKeySQL, key, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysSQL)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
