//go:build unit

package ratecard_test

import (
	"testing"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RateCardBuilder)
	errIs  error
}

func TestRateCard(t *testing.T) {
	t.Run("ティアは最小人数順に並ぶ", func(t *testing.T) {
		card, err := builder.NewRateCardBuilder().
			WithTier(builder.TierSpec{Min: 5, Max: 8, Hourly: "30", Daily: "150"}).
			WithTier(builder.TierSpec{Min: 1, Max: 4, Hourly: "20", Daily: "120"}).
			BuildDomain()

		require.NoError(t, err)
		tiers := card.Tiers()
		require.Len(t, tiers, 2)
		assert.Equal(t, 1, tiers[0].MinPeople())
		assert.Equal(t, 5, tiers[1].MinPeople())
	})

	t.Run("定員判定", func(t *testing.T) {
		card := builder.NewRateCardBuilder().WithCapacity(2, 6).MustBuild()

		assert.False(t, card.Accepts(1))
		assert.True(t, card.Accepts(2))
		assert.True(t, card.Accepts(6))
		assert.False(t, card.Accepts(7))
	})

	t.Run("構成検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "デフォルトOK",
				mutate: func(b *builder.RateCardBuilder) {},
			},
			{
				name: "隣接ティアOK",
				mutate: func(b *builder.RateCardBuilder) {
					b.WithTier(builder.TierSpec{Min: 1, Max: 4, Hourly: "20", Daily: "120"})
					b.WithTier(builder.TierSpec{Min: 5, Max: 9, Hourly: "25", Daily: "140"})
				},
			},
			{
				name: "重複ティアNG",
				mutate: func(b *builder.RateCardBuilder) {
					b.WithTier(builder.TierSpec{Min: 1, Max: 4, Hourly: "20", Daily: "120"})
					b.WithTier(builder.TierSpec{Min: 4, Max: 9, Hourly: "25", Daily: "140"})
				},
				errIs: errs.ErrInvalidRateCard,
			},
			{
				name:   "最小定員が最大定員より大きいNG",
				mutate: func(b *builder.RateCardBuilder) { b.WithCapacity(5, 4) },
				errIs:  errs.ErrInvalidRateCard,
			},
			{
				name:   "最小定員0NG",
				mutate: func(b *builder.RateCardBuilder) { b.WithCapacity(0, 4) },
				errIs:  errs.ErrInvalidRateCard,
			},
			{
				name:   "負の単価NG",
				mutate: func(b *builder.RateCardBuilder) { b.Daily = builder.StrPtr("-1") },
				errIs:  errs.ErrInvalidRateCard,
			},
			{
				name: "ティア範囲逆転NG",
				mutate: func(b *builder.RateCardBuilder) {
					b.WithTier(builder.TierSpec{Min: 4, Max: 1, Hourly: "20", Daily: "120"})
				},
				errIs: errs.ErrInvalidRateCard,
			},
			{
				name: "負の追加料金NG",
				mutate: func(b *builder.RateCardBuilder) {
					b.WithTier(builder.TierSpec{Min: 1, Max: 4, Hourly: "20", Daily: "120", ExtraDaily: builder.StrPtr("-5")})
				},
				errIs: errs.ErrInvalidRateCard,
			},
			{
				name:   "スペース種別なしNG",
				mutate: func(b *builder.RateCardBuilder) { b.SpaceType = "" },
				errIs:  errs.ErrInvalidRateCard,
			},
		})
	})
}

func TestNewSpaceType(t *testing.T) {
	st, err := ratecard.NewSpaceType("  Meeting-Room ")
	require.NoError(t, err)
	assert.Equal(t, ratecard.SpaceType("meeting-room"), st)

	_, err = ratecard.NewSpaceType(" ")
	require.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewRateCardBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
