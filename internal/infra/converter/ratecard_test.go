//go:build unit

package converter_test

import (
	"testing"

	"coworking-reservations/internal/infra/converter"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/pkg/ptr"
	"coworking-reservations/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCardToDomain(t *testing.T) {
	base := converter.RateCardDocument{
		SpaceType:   " Meeting-Room ",
		Active:      true,
		Hourly:      ptr.Of("20.00"),
		Daily:       ptr.Of("120"),
		MinCapacity: 1,
		MaxCapacity: 12,
		Tiers: []converter.TierDocument{
			{MinPeople: 5, MaxPeople: 8, HourlyRate: "35", DailyRate: "200", ExtraPersonHourly: ptr.Of("4")},
			{MinPeople: 1, MaxPeople: 4, HourlyRate: "20", DailyRate: "120"},
		},
	}

	t.Run("success: 正規化とティアの並び替え", func(t *testing.T) {
		card, err := converter.RateCardToDomain(base)

		require.NoError(t, err)
		assert.Equal(t, "meeting-room", card.SpaceType().String())
		assert.Nil(t, card.Weekly())
		require.Len(t, card.Tiers(), 2)
		assert.Equal(t, 1, card.Tiers()[0].MinPeople())
		assert.Equal(t, "4", card.Tiers()[1].ExtraPersonHourly().String())
	})

	t.Run("success: 空文字の料金は未設定扱い", func(t *testing.T) {
		doc := base
		doc.Monthly = ptr.Of("")

		card, err := converter.RateCardToDomain(doc)

		require.NoError(t, err)
		assert.Nil(t, card.Monthly())
	})

	invalid := []struct {
		name   string
		mutate func(d *converter.RateCardDocument)
	}{
		{"数値でない料金", func(d *converter.RateCardDocument) { d.Hourly = ptr.Of("twenty") }},
		{"負の料金", func(d *converter.RateCardDocument) { d.Daily = ptr.Of("-1") }},
		{"定員の逆転", func(d *converter.RateCardDocument) { d.MinCapacity = 20 }},
		{"空のスペース種別", func(d *converter.RateCardDocument) { d.SpaceType = "  " }},
		{"ティアの重なり", func(d *converter.RateCardDocument) {
			d.Tiers = []converter.TierDocument{
				{MinPeople: 1, MaxPeople: 5, HourlyRate: "20", DailyRate: "120"},
				{MinPeople: 4, MaxPeople: 8, HourlyRate: "35", DailyRate: "200"},
			}
		}},
		{"ティア料金が不正", func(d *converter.RateCardDocument) {
			d.Tiers = []converter.TierDocument{{MinPeople: 1, MaxPeople: 4, HourlyRate: "x", DailyRate: "120"}}
		}},
	}
	for _, tc := range invalid {
		t.Run("error: "+tc.name, func(t *testing.T) {
			doc := base
			doc.Tiers = append([]converter.TierDocument(nil), base.Tiers...)
			tc.mutate(&doc)

			_, err := converter.RateCardToDomain(doc)

			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidRateCard), err.Error())
			assert.Equal(t, errs.KindInternal, errs.KindOf(err))
		})
	}
}

func TestRateCardToDocument(t *testing.T) {
	card := builder.NewRateCardBuilder().With(func(b *builder.RateCardBuilder) {
		b.Tiers = []builder.TierSpec{{Min: 1, Max: 4, Hourly: "15", Daily: "90", ExtraHourly: builder.StrPtr("2.5")}}
	}).MustBuild()

	doc := converter.RateCardToDocument(card)
	back, err := converter.RateCardToDomain(doc)

	require.NoError(t, err)
	if diff := cmp.Diff(doc, converter.RateCardToDocument(back)); diff != "" {
		t.Errorf("document changed after conversion (-want +got):\n%s", diff)
	}
	assert.Equal(t, "2.5", *doc.Tiers[0].ExtraPersonHourly)
}
