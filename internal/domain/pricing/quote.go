package pricing

import (
	"coworking-reservations/internal/domain/ratecard"

	"github.com/shopspring/decimal"
)

type BreakdownLine struct {
	Label     string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

// Quote is an immutable priced booking request.
type Quote struct {
	spaceType       ratecard.SpaceType
	reservationType ReservationType
	basePrice       decimal.Decimal
	extraCharge     decimal.Decimal
	totalPrice      decimal.Decimal
	duration        decimal.Decimal
	durationUnit    DurationUnit
	numberOfPeople  int
	tierApplied     *AppliedTier
	breakdown       []BreakdownLine
}

func (q *Quote) SpaceType() ratecard.SpaceType    { return q.spaceType }
func (q *Quote) ReservationType() ReservationType { return q.reservationType }
func (q *Quote) BasePrice() decimal.Decimal       { return q.basePrice }
func (q *Quote) ExtraCharge() decimal.Decimal     { return q.extraCharge }
func (q *Quote) TotalPrice() decimal.Decimal      { return q.totalPrice }
func (q *Quote) Duration() decimal.Decimal        { return q.duration }
func (q *Quote) DurationUnit() DurationUnit       { return q.durationUnit }
func (q *Quote) NumberOfPeople() int              { return q.numberOfPeople }
func (q *Quote) TierApplied() *AppliedTier        { return q.tierApplied }

func (q *Quote) Breakdown() []BreakdownLine {
	out := make([]BreakdownLine, len(q.breakdown))
	copy(out, q.breakdown)
	return out
}
