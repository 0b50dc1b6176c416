package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"coworking-reservations/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying serialization
	// failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	DepositOperations() DepositOperationRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	PendingDepositOperation(ctx context.Context, reservationID uuid.UUID) (*DepositOperation, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// LockByID reads the reservation with a row lock held until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ConditionalSave persists res only if the stored version still equals expectedVersion.
	ConditionalSave(ctx context.Context, res *reservation.Reservation, expectedVersion int) error
}

type DepositOperationRepository interface {
	// Claim inserts a pending operation. It reports false when another
	// operation is already pending for the reservation.
	Claim(ctx context.Context, op DepositOperation) (bool, error)
	Record(ctx context.Context, op DepositOperation) error
	MarkApplied(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type IdempotencyRepository interface {
	// TryInsert claims key for userID. It reports false when an unexpired
	// record already exists.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, key, userID uuid.UUID, resultHash string, reservationID uuid.UUID) error
	Delete(ctx context.Context, key, userID uuid.UUID) error
}
