//go:build unit

package pricing_test

import (
	"testing"

	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.Truef(t, w.Equal(got), "want %s, got %s", w, got)
}

func meetingRequest(t *testing.T, people int, p pricing.Period) pricing.Request {
	t.Helper()
	return pricing.Request{SpaceType: "meeting-room", Period: p, NumberOfPeople: people}
}

func TestComposer_Scenarios(t *testing.T) {
	composer := pricing.NewComposer()

	t.Run("ティア完全一致", func(t *testing.T) {
		card := builder.NewRateCardBuilder().
			WithTier(builder.TierSpec{Min: 1, Max: 4, Hourly: "20", Daily: "120"}).
			MustBuild()

		q, err := composer.Quote(card, meetingRequest(t, 4, period(t, "2025-03-10", "2025-03-10", "09:00", "11:00")))

		require.NoError(t, err)
		assert.Equal(t, pricing.TypeHourly, q.ReservationType())
		assert.Equal(t, pricing.UnitHours, q.DurationUnit())
		assertDecimal(t, "2", q.Duration())
		assertDecimal(t, "40", q.BasePrice())
		assertDecimal(t, "0", q.ExtraCharge())
		assertDecimal(t, "40", q.TotalPrice())
		require.NotNil(t, q.TierApplied())
		assert.Equal(t, 1, q.TierApplied().MinPeople)
		assert.Equal(t, 4, q.TierApplied().MaxPeople)
		assert.Len(t, q.Breakdown(), 1)
	})

	t.Run("ティア超過分の追加料金", func(t *testing.T) {
		card := builder.NewRateCardBuilder().
			WithTier(builder.TierSpec{Min: 1, Max: 4, Hourly: "20", Daily: "120", ExtraHourly: builder.StrPtr("5")}).
			MustBuild()

		q, err := composer.Quote(card, meetingRequest(t, 6, period(t, "2025-03-10", "2025-03-10", "09:00", "11:00")))

		require.NoError(t, err)
		assertDecimal(t, "40", q.BasePrice())
		assertDecimal(t, "20", q.ExtraCharge())
		assertDecimal(t, "60", q.TotalPrice())
		assert.True(t, q.TotalPrice().Equal(q.BasePrice().Add(q.ExtraCharge())))
		require.Len(t, q.Breakdown(), 2)
		assertDecimal(t, "20", q.Breakdown()[1].Amount)
	})

	t.Run("weeklyはティアを無視して定額", func(t *testing.T) {
		card := builder.NewRateCardBuilder().
			WithTier(builder.TierSpec{Min: 1, Max: 4, Hourly: "20", Daily: "120", ExtraDaily: builder.StrPtr("10")}).
			MustBuild()

		q, err := composer.Quote(card, meetingRequest(t, 6, period(t, "2025-03-01", "2025-03-10")))

		require.NoError(t, err)
		assert.Equal(t, pricing.TypeWeekly, q.ReservationType())
		assert.Nil(t, q.TierApplied())
		assertDecimal(t, "700", q.BasePrice())
		assertDecimal(t, "700", q.TotalPrice())
	})
}

func TestComposer_TierScan(t *testing.T) {
	composer := pricing.NewComposer()
	twoHours := func(t *testing.T) pricing.Period { return period(t, "2025-03-10", "2025-03-10", "09:00", "11:00") }

	t.Run("最後の超過ティアが優先される", func(t *testing.T) {
		card := builder.NewRateCardBuilder().
			WithTier(builder.TierSpec{Min: 3, Max: 4, Hourly: "15", Daily: "90", ExtraHourly: builder.StrPtr("4")}).
			WithTier(builder.TierSpec{Min: 1, Max: 2, Hourly: "10", Daily: "60", ExtraHourly: builder.StrPtr("3")}).
			MustBuild()

		q, err := composer.Quote(card, meetingRequest(t, 6, twoHours(t)))

		require.NoError(t, err)
		require.NotNil(t, q.TierApplied())
		assert.Equal(t, 3, q.TierApplied().MinPeople)
		assertDecimal(t, "30", q.BasePrice())
		assertDecimal(t, "16", q.ExtraCharge())
		assertDecimal(t, "46", q.TotalPrice())
	})

	t.Run("完全一致が超過より優先される", func(t *testing.T) {
		card := builder.NewRateCardBuilder().
			WithTier(builder.TierSpec{Min: 1, Max: 2, Hourly: "10", Daily: "60", ExtraHourly: builder.StrPtr("3")}).
			WithTier(builder.TierSpec{Min: 3, Max: 8, Hourly: "15", Daily: "90"}).
			MustBuild()

		q, err := composer.Quote(card, meetingRequest(t, 5, twoHours(t)))

		require.NoError(t, err)
		assert.Equal(t, 3, q.TierApplied().MinPeople)
		assertDecimal(t, "30", q.TotalPrice())
	})

	t.Run("超過料金なしのティアは定額にフォールバック", func(t *testing.T) {
		card := builder.NewRateCardBuilder().
			WithTier(builder.TierSpec{Min: 1, Max: 4, Hourly: "25", Daily: "120"}).
			MustBuild()

		q, err := composer.Quote(card, meetingRequest(t, 6, twoHours(t)))

		require.NoError(t, err)
		assert.Nil(t, q.TierApplied())
		assertDecimal(t, "40", q.TotalPrice())
	})

	t.Run("人数課金は定額に人数を掛ける", func(t *testing.T) {
		card := builder.NewRateCardBuilder().AsPerPerson().MustBuild()

		q, err := composer.Quote(card, meetingRequest(t, 3, twoHours(t)))

		require.NoError(t, err)
		assertDecimal(t, "40", q.BasePrice())
		assertDecimal(t, "120", q.TotalPrice())
		assert.Len(t, q.Breakdown(), 2)
	})

	t.Run("端数は最終値で丸める", func(t *testing.T) {
		card := builder.NewRateCardBuilder().With(func(b *builder.RateCardBuilder) {
			b.Hourly = builder.StrPtr("10")
		}).MustBuild()

		q, err := composer.Quote(card, meetingRequest(t, 1, period(t, "2025-03-10", "2025-03-10", "09:00", "09:20")))

		require.NoError(t, err)
		assertDecimal(t, "3.33", q.TotalPrice())
	})

	t.Run("同じ入力は同じティアを返す", func(t *testing.T) {
		card := builder.NewRateCardBuilder().
			WithTier(builder.TierSpec{Min: 1, Max: 2, Hourly: "10", Daily: "60", ExtraHourly: builder.StrPtr("3")}).
			MustBuild()
		req := meetingRequest(t, 4, twoHours(t))

		first, err := composer.Quote(card, req)
		require.NoError(t, err)
		second, err := composer.Quote(card, req)
		require.NoError(t, err)

		assert.Equal(t, first.TierApplied(), second.TierApplied())
	})
}

func TestComposer_Errors(t *testing.T) {
	composer := pricing.NewComposer()
	twoHours := period(t, "2025-03-10", "2025-03-10", "09:00", "11:00")

	cases := []struct {
		name  string
		card  func() *ratecard.RateCard
		req   pricing.Request
		errIs error
		kind  errs.Kind
	}{
		{
			name:  "料金表なしNG",
			card:  func() *ratecard.RateCard { return nil },
			req:   meetingRequest(t, 2, twoHours),
			errIs: errs.ErrRateCardNotFound,
			kind:  errs.KindRateCardNotFound,
		},
		{
			name:  "無効な料金表NG",
			card:  func() *ratecard.RateCard { return builder.NewRateCardBuilder().AsInactive().MustBuild() },
			req:   meetingRequest(t, 2, twoHours),
			errIs: errs.ErrRateCardInactive,
			kind:  errs.KindRateCardInactive,
		},
		{
			name:  "定員超過NG",
			card:  func() *ratecard.RateCard { return builder.NewRateCardBuilder().WithCapacity(1, 4).MustBuild() },
			req:   meetingRequest(t, 5, twoHours),
			errIs: errs.ErrCapacityOutOfRange,
			kind:  errs.KindCapacityOutOfRange,
		},
		{
			name:  "最小人数未満NG",
			card:  func() *ratecard.RateCard { return builder.NewRateCardBuilder().WithCapacity(2, 4).MustBuild() },
			req:   meetingRequest(t, 1, twoHours),
			errIs: errs.ErrCapacityOutOfRange,
			kind:  errs.KindCapacityOutOfRange,
		},
		{
			name:  "時間単価未設定NG",
			card:  func() *ratecard.RateCard { return builder.NewRateCardBuilder().WithoutHourly().MustBuild() },
			req:   meetingRequest(t, 2, twoHours),
			errIs: errs.ErrRateNotConfigured,
			kind:  errs.KindRateNotConfigured,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := composer.Quote(c.card(), c.req)

			require.Nil(t, q)
			require.ErrorIs(t, err, c.errIs)
			assert.Equal(t, c.kind, errs.KindOf(err))
			assert.False(t, errs.IsRetryable(err))
		})
	}
}
