//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/infra/repository"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()
	res := builder.NewReservationBuilder().BuildDomain()

	t.Run("success: 全カラムを渡す", func(t *testing.T) {
		db := &stubDB{execTag: pgconn.NewCommandTag("INSERT 0 1")}

		err := repository.NewReservationRepository(db).Create(ctx, res)

		require.NoError(t, err)
		assert.Contains(t, db.lastSQL, "INSERT INTO reservations")
		require.Len(t, db.lastArgs, 21)
		assert.Equal(t, res.ID(), db.lastArgs[0])
	})

	t.Run("error: 一意制約違反", func(t *testing.T) {
		db := &stubDB{execErr: &pgconn.PgError{Code: "23505"}}

		err := repository.NewReservationRepository(db).Create(ctx, res)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestReservationRepository_ConditionalSave(t *testing.T) {
	ctx := context.Background()
	res := builder.NewReservationBuilder().WithVersion(3).BuildDomain()

	t.Run("success: バージョン一致", func(t *testing.T) {
		db := &stubDB{execTag: pgconn.NewCommandTag("UPDATE 1")}

		err := repository.NewReservationRepository(db).ConditionalSave(ctx, res, 2)

		require.NoError(t, err)
		assert.Contains(t, db.lastSQL, "WHERE id = $1 AND version = $2")
		assert.Equal(t, 2, db.lastArgs[1])
	})

	t.Run("error: 更新0件はSTALE_STATE", func(t *testing.T) {
		db := &stubDB{execTag: pgconn.NewCommandTag("UPDATE 0")}

		err := repository.NewReservationRepository(db).ConditionalSave(ctx, res, 2)

		assert.Equal(t, errs.KindStaleState, errs.KindOf(err))
	})

	t.Run("error: DB障害", func(t *testing.T) {
		db := &stubDB{execErr: errors.New("connection reset")}

		err := repository.NewReservationRepository(db).ConditionalSave(ctx, res, 2)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationRepository_LockByID(t *testing.T) {
	t.Run("error: 存在しない", func(t *testing.T) {
		db := &stubDB{rowErr: pgx.ErrNoRows}

		_, err := repository.NewReservationRepository(db).LockByID(context.Background(), uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Contains(t, db.lastSQL, "FOR UPDATE")
	})
}

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	expires := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rowErr   error
		want     bool
		wantKind infra.RepositoryErrorKind
	}{
		{"success: 新規に確保", nil, true, ""},
		{"success: 有効なキーが既に存在", pgx.ErrNoRows, false, ""},
		{"error: DB障害", errors.New("connection reset"), false, infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &stubDB{rowErr: tt.rowErr}

			got, err := repository.NewIdempotencyRepository(db).TryInsert(ctx, uuid.New(), uuid.New(), "POST /reservations", "hash", expires)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, db.lastSQL, "ON CONFLICT (key, user_id)")
		})
	}
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("success: 削除件数を返す", func(t *testing.T) {
		db := &stubDB{execTag: pgconn.NewCommandTag("DELETE 3")}

		n, err := repository.NewIdempotencyRepository(db).DeleteExpired(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.Contains(t, db.lastSQL, "expires_at < now()")
		assert.Empty(t, db.lastArgs)
	})

	t.Run("error: DB障害", func(t *testing.T) {
		db := &stubDB{execErr: errors.New("connection reset")}

		n, err := repository.NewIdempotencyRepository(db).DeleteExpired(ctx)

		assert.Zero(t, n)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
