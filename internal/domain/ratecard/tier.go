package ratecard

import (
	"coworking-reservations/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Tier is a headcount bracket with its own hourly and daily rates and
// optional per-extra-person surcharges.
type Tier struct {
	minPeople         int
	maxPeople         int
	hourlyRate        decimal.Decimal
	dailyRate         decimal.Decimal
	extraPersonHourly *decimal.Decimal
	extraPersonDaily  *decimal.Decimal
}

func NewTier(
	minPeople, maxPeople int,
	hourlyRate, dailyRate decimal.Decimal,
	extraPersonHourly, extraPersonDaily *decimal.Decimal,
) (Tier, error) {
	if minPeople < 1 || minPeople > maxPeople {
		return Tier{}, errs.Reasonf(errs.ErrInvalidRateCard, "tier range [%d, %d] is invalid", minPeople, maxPeople)
	}
	if hourlyRate.IsNegative() || dailyRate.IsNegative() {
		return Tier{}, errs.Reasonf(errs.ErrInvalidRateCard, "tier %d-%d has a negative rate", minPeople, maxPeople)
	}
	for _, s := range []*decimal.Decimal{extraPersonHourly, extraPersonDaily} {
		if s != nil && s.IsNegative() {
			return Tier{}, errs.Reasonf(errs.ErrInvalidRateCard, "tier %d-%d has a negative surcharge", minPeople, maxPeople)
		}
	}
	return Tier{
		minPeople:         minPeople,
		maxPeople:         maxPeople,
		hourlyRate:        hourlyRate,
		dailyRate:         dailyRate,
		extraPersonHourly: extraPersonHourly,
		extraPersonDaily:  extraPersonDaily,
	}, nil
}

func (t Tier) MinPeople() int                      { return t.minPeople }
func (t Tier) MaxPeople() int                      { return t.maxPeople }
func (t Tier) HourlyRate() decimal.Decimal         { return t.hourlyRate }
func (t Tier) DailyRate() decimal.Decimal          { return t.dailyRate }
func (t Tier) ExtraPersonHourly() *decimal.Decimal { return t.extraPersonHourly }
func (t Tier) ExtraPersonDaily() *decimal.Decimal  { return t.extraPersonDaily }
