//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/pkg/clock"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/tests/common/builder"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateReservation(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	f := reservation.NewFactory(clock.NewMockClock(now), pricing.NewComposer())
	card := builder.NewRateCardBuilder().MustBuild()
	day := civil.Date{Year: 2025, Month: 3, Day: 10}
	tr := pricing.NewTimeRange(civil.Time{Hour: 9}, civil.Time{Hour: 11})
	draft := reservation.Draft{
		UserID: uuid.New(),
		Request: pricing.Request{
			SpaceType:      "meeting-room",
			Period:         pricing.Period{StartDate: day, EndDate: day, Times: &tr},
			NumberOfPeople: 2,
		},
	}

	t.Run("pendingで作成されデポジット未設定", func(t *testing.T) {
		r, q, err := f.CreateReservation(card, draft)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, reservation.DepositNone, r.Deposit().Status())
		assert.Equal(t, pricing.TypeHourly, r.ReservationType())
		assert.True(t, q.TotalPrice().Equal(r.TotalPrice()))
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, 1, r.Version())

		require.NoError(t, r.AttachDeposit("auth_1", decimal.NewFromInt(50)))
		assert.Equal(t, reservation.DepositHeld, r.Deposit().Status())
	})

	t.Run("定員外は予約を作らない", func(t *testing.T) {
		d := draft
		d.Request.NumberOfPeople = 99

		r, q, err := f.CreateReservation(card, d)

		require.ErrorIs(t, err, errs.ErrCapacityOutOfRange)
		assert.Nil(t, r)
		assert.Nil(t, q)
	})

	t.Run("ユーザーなしNG", func(t *testing.T) {
		d := draft
		d.UserID = uuid.Nil

		_, _, err := f.CreateReservation(card, d)

		require.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
