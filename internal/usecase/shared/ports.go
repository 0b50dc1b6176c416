package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"

	"coworking-reservations/internal/domain/ratecard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateCardStore returns the configured card for a space type, active or not.
// A missing card is reported with errs.ErrRateCardNotFound.
type RateCardStore interface {
	FindBySpaceType(ctx context.Context, spaceType ratecard.SpaceType) (*ratecard.RateCard, error)
}

// DepositService places and settles card authorizations. Calls sharing an
// idempotency key are applied at most once.
type DepositService interface {
	Hold(ctx context.Context, reservationID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (string, error)
	Capture(ctx context.Context, authorizationID, idempotencyKey string) error
	Release(ctx context.Context, authorizationID, idempotencyKey string) error
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
