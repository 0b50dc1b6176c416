package pricing

import (
	"fmt"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

type Calculator interface {
	Quote(card *ratecard.RateCard, req Request) (*Quote, error)
}

type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Quote validates the card and headcount before pricing the request.
// Amounts are rounded to cents only on the final values.
func (Composer) Quote(card *ratecard.RateCard, req Request) (*Quote, error) {
	if card == nil {
		return nil, errs.Reasonf(errs.ErrRateCardNotFound, "no rate card for %s", req.SpaceType)
	}
	if !card.IsActive() {
		return nil, errs.Reasonf(errs.ErrRateCardInactive, "rate card for %s is inactive", card.SpaceType())
	}
	if !card.Accepts(req.NumberOfPeople) {
		return nil, errs.Reasonf(errs.ErrCapacityOutOfRange,
			"%d people is outside the %s capacity [%d, %d]",
			req.NumberOfPeople, card.SpaceType(), card.MinCapacity(), card.MaxCapacity())
	}

	cls, err := Classify(req.Period)
	if err != nil {
		return nil, err
	}
	tier, err := CalculateTier(card, cls, req.NumberOfPeople)
	if err != nil {
		return nil, err
	}

	base := tier.Base.Round(moneyScale)
	extra := tier.Extra.Round(moneyScale)
	var total decimal.Decimal
	switch {
	case tier.Tier != nil:
		total = base.Add(extra)
	case card.PerPerson():
		total = tier.Base.Mul(decimal.NewFromInt(int64(req.NumberOfPeople))).Round(moneyScale)
	default:
		total = base
	}

	return &Quote{
		spaceType:       card.SpaceType(),
		reservationType: cls.Type,
		basePrice:       base,
		extraCharge:     extra,
		totalPrice:      total,
		duration:        cls.Duration,
		durationUnit:    cls.Type.Unit(),
		numberOfPeople:  req.NumberOfPeople,
		tierApplied:     tier.Tier,
		breakdown:       breakdown(card, cls, tier, req.NumberOfPeople, total),
	}, nil
}

func breakdown(card *ratecard.RateCard, cls Classification, tier TierResult, people int, total decimal.Decimal) []BreakdownLine {
	if tier.Tier != nil {
		lines := []BreakdownLine{{
			Label:     fmt.Sprintf("%s rate, %d-%d people", cls.Type, tier.Tier.MinPeople, tier.Tier.MaxPeople),
			Quantity:  cls.Duration,
			UnitPrice: tier.Tier.Rate,
			Amount:    tier.Base.Round(moneyScale),
		}}
		if tier.Overflow > 0 && tier.Tier.ExtraPersonRate != nil {
			lines = append(lines, BreakdownLine{
				Label:     fmt.Sprintf("%d extra people", tier.Overflow),
				Quantity:  decimal.NewFromInt(int64(tier.Overflow)).Mul(cls.Duration),
				UnitPrice: *tier.Tier.ExtraPersonRate,
				Amount:    tier.Extra.Round(moneyScale),
			})
		}
		return lines
	}

	rate := FlatRate(card, cls.Type)
	lines := []BreakdownLine{{
		Label:     fmt.Sprintf("%s rate", cls.Type),
		Quantity:  cls.Duration,
		UnitPrice: *rate,
		Amount:    tier.Base.Round(moneyScale),
	}}
	if card.PerPerson() {
		lines = append(lines, BreakdownLine{
			Label:     "per person",
			Quantity:  decimal.NewFromInt(int64(people)),
			UnitPrice: tier.Base.Round(moneyScale),
			Amount:    total,
		})
	}
	return lines
}
