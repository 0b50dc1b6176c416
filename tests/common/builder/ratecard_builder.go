//go:build unit || integration || e2e

package builder

import (
	"coworking-reservations/internal/domain/ratecard"

	"github.com/shopspring/decimal"
)

type TierSpec struct {
	Min, Max      int
	Hourly, Daily string
	ExtraHourly   *string
	ExtraDaily    *string
}

type RateCardBuilder struct {
	SpaceType   string
	Active      bool
	Hourly      *string
	Daily       *string
	Weekly      *string
	Monthly     *string
	MinCapacity int
	MaxCapacity int
	PerPerson   bool
	Tiers       []TierSpec
}

func NewRateCardBuilder() *RateCardBuilder {
	return &RateCardBuilder{
		SpaceType:   "meeting-room",
		Active:      true,
		Hourly:      StrPtr("20"),
		Daily:       StrPtr("120"),
		Weekly:      StrPtr("100"),
		Monthly:     StrPtr("80"),
		MinCapacity: 1,
		MaxCapacity: 10,
	}
}

func (b *RateCardBuilder) With(mutate func(*RateCardBuilder)) *RateCardBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RateCardBuilder) BuildParams() (ratecard.Params, error) {
	tiers := make([]ratecard.Tier, 0, len(b.Tiers))
	for _, ts := range b.Tiers {
		t, err := ratecard.NewTier(ts.Min, ts.Max,
			decimal.RequireFromString(ts.Hourly), decimal.RequireFromString(ts.Daily),
			decPtr(ts.ExtraHourly), decPtr(ts.ExtraDaily))
		if err != nil {
			return ratecard.Params{}, err
		}
		tiers = append(tiers, t)
	}
	return ratecard.Params{
		SpaceType:   ratecard.SpaceType(b.SpaceType),
		Active:      b.Active,
		Hourly:      decPtr(b.Hourly),
		Daily:       decPtr(b.Daily),
		Weekly:      decPtr(b.Weekly),
		Monthly:     decPtr(b.Monthly),
		MinCapacity: b.MinCapacity,
		MaxCapacity: b.MaxCapacity,
		PerPerson:   b.PerPerson,
		Tiers:       tiers,
	}, nil
}

func (b *RateCardBuilder) BuildDomain() (*ratecard.RateCard, error) {
	p, err := b.BuildParams()
	if err != nil {
		return nil, err
	}
	return ratecard.NewRateCard(p)
}

func (b *RateCardBuilder) MustBuild() *ratecard.RateCard {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

// Fluent builder methods
func (b *RateCardBuilder) WithTier(t TierSpec) *RateCardBuilder {
	b.Tiers = append(b.Tiers, t)
	return b
}

func (b *RateCardBuilder) WithCapacity(minCap, maxCap int) *RateCardBuilder {
	b.MinCapacity = minCap
	b.MaxCapacity = maxCap
	return b
}

func (b *RateCardBuilder) AsPerPerson() *RateCardBuilder {
	b.PerPerson = true
	return b
}

func (b *RateCardBuilder) AsInactive() *RateCardBuilder {
	b.Active = false
	return b
}

func (b *RateCardBuilder) WithoutHourly() *RateCardBuilder {
	b.Hourly = nil
	return b
}

func StrPtr(v string) *string {
	return &v
}

func decPtr(v *string) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.RequireFromString(*v)
	return &d
}
