package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/infra/readstore"
	"coworking-reservations/internal/infra/repository"
	"coworking-reservations/internal/pkg/clock"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxTxAttempts = 4
	backoffBase   = 100 * time.Millisecond
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetriesExhausted  = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewPostgresUoW(pool *pgxpool.Pool, clock clock.Clock) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, clock: clock}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil || !infra.IsTransient(err) {
			return err
		}
		if attempt == maxTxAttempts {
			break
		}

		wait := backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt, "wait_ms", wait.Milliseconds(), "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.Error("transaction failed after max retries", "attempts", maxTxAttempts, "error", err.Error())
	return errs.Mark(err, errRetriesExhausted)
}

// attempt owns one transaction so rollback never piles up across retries.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err := pgxTx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", err.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, now: u.clock.Now}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool, now: u.clock.Now}
}

// backoff doubles per attempt with up to 20% jitter.
func backoff(attempt int) time.Duration {
	wait := backoffBase << (attempt - 1)
	return wait + rand.N(wait/5+1)
}

type pgTx struct {
	dbtx shared.DBTX
	now  func() time.Time

	reservations      shared.ReservationRepository
	depositOperations shared.DepositOperationRepository
	idempotency       shared.IdempotencyRepository
	reads             shared.CommandReads
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository(t.dbtx)
	}
	return t.reservations
}

func (t *pgTx) DepositOperations() shared.DepositOperationRepository {
	if t.depositOperations == nil {
		t.depositOperations = repository.NewDepositOperationRepository(t.dbtx)
	}
	return t.depositOperations
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotency == nil {
		t.idempotency = repository.NewIdempotencyRepository(t.dbtx)
	}
	return t.idempotency
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &commandReads{dbtx: t.dbtx, now: t.now}
	}
	return t.reads
}

type commandReads struct {
	dbtx shared.DBTX
	now  func() time.Time
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return readstore.NewReservationReadStore(r.dbtx).FindAggregateByID(ctx, id)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	return readstore.NewIdempotencyReadStore(r.dbtx, r.now).Get(ctx, key, userID)
}

func (r *commandReads) PendingDepositOperation(ctx context.Context, reservationID uuid.UUID) (*shared.DepositOperation, error) {
	return readstore.NewDepositOperationReadStore(r.dbtx).FindPending(ctx, reservationID)
}
