package readstore

import (
	"context"
	"time"

	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/pkg/pgconv"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const idempotencyKeySQL = `
SELECT key, user_id, status, request_hash, result_reservation_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

type IdempotencyReadStore struct {
	db  shared.DBTX
	now func() time.Time
}

func NewIdempotencyReadStore(db shared.DBTX, now func() time.Time) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: db, now: now}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var (
		record    shared.IdempotencyRecord
		resultID  pgtype.UUID
		expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, idempotencyKeySQL, key, userID).Scan(
		&record.Key, &record.UserID, &record.Status, &record.RequestHash, &resultID, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	record.ResultReservationID = pgconv.UUIDPtrFromPgtype(resultID)
	record.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)

	if r.now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return &record, nil
}
