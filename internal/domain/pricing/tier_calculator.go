package pricing

import (
	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type AppliedTier struct {
	MinPeople       int
	MaxPeople       int
	Rate            decimal.Decimal
	ExtraPersonRate *decimal.Decimal
}

type TierResult struct {
	Base  decimal.Decimal
	Extra decimal.Decimal
	Tier  *AppliedTier

	// Overflow is the number of people above the applied tier's maximum.
	Overflow int
}

// CalculateTier prices a classified booking against the card's tiers.
//
// Tiers are scanned ascending without stopping on overflow matches, so when no
// tier contains the headcount the last overflow-capable tier at or below it
// wins. Only an exact match ends the scan. Kept for compatibility with
// existing quotes; product has not confirmed whether "highest minPeople tier"
// is the intended rule.
func CalculateTier(card *ratecard.RateCard, c Classification, people int) (TierResult, error) {
	var res TierResult
	if c.Type.Tiered() {
		for _, t := range card.Tiers() {
			if people < t.MinPeople() {
				continue
			}
			rate, surcharge := tierRates(t, c.Type)
			if people <= t.MaxPeople() {
				return TierResult{
					Base:  rate.Mul(c.Duration),
					Extra: decimal.Zero,
					Tier:  &AppliedTier{MinPeople: t.MinPeople(), MaxPeople: t.MaxPeople(), Rate: rate, ExtraPersonRate: surcharge},
				}, nil
			}
			if surcharge != nil {
				overflow := people - t.MaxPeople()
				res = TierResult{
					Base:     rate.Mul(c.Duration),
					Extra:    decimal.NewFromInt(int64(overflow)).Mul(*surcharge).Mul(c.Duration),
					Tier:     &AppliedTier{MinPeople: t.MinPeople(), MaxPeople: t.MaxPeople(), Rate: rate, ExtraPersonRate: surcharge},
					Overflow: overflow,
				}
			}
		}
		if res.Tier != nil {
			return res, nil
		}
	}

	rate := FlatRate(card, c.Type)
	if rate == nil {
		return TierResult{}, errs.Reasonf(errs.ErrRateNotConfigured,
			"no %s rate configured for %s", c.Type, card.SpaceType())
	}
	return TierResult{Base: rate.Mul(c.Duration), Extra: decimal.Zero}, nil
}

func tierRates(t ratecard.Tier, typ ReservationType) (decimal.Decimal, *decimal.Decimal) {
	if typ == TypeHourly {
		return t.HourlyRate(), t.ExtraPersonHourly()
	}
	return t.DailyRate(), t.ExtraPersonDaily()
}

// FlatRate is the card's untiered rate for a reservation type, nil if unset.
func FlatRate(card *ratecard.RateCard, typ ReservationType) *decimal.Decimal {
	switch typ {
	case TypeHourly:
		return card.Hourly()
	case TypeDaily:
		return card.Daily()
	case TypeWeekly:
		return card.Weekly()
	case TypeMonthly:
		return card.Monthly()
	default:
		return nil
	}
}
