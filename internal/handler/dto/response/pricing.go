package response

import (
	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type AppliedTierResponse struct {
	MinPeople       int              `json:"minPeople"`
	MaxPeople       int              `json:"maxPeople"`
	Rate            decimal.Decimal  `json:"rate"`
	ExtraPersonRate *decimal.Decimal `json:"extraPersonRate,omitempty"`
}

type BreakdownLineResponse struct {
	Label     string          `json:"label"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
}

type QuoteResponse struct {
	SpaceType         string                  `json:"spaceType"`
	ReservationType   string                  `json:"reservationType"`
	Duration          decimal.Decimal         `json:"duration"`
	DurationUnit      string                  `json:"durationUnit"`
	NumberOfPeople    int                     `json:"numberOfPeople"`
	BasePrice         decimal.Decimal         `json:"basePrice"`
	ExtraPersonCharge decimal.Decimal         `json:"extraPersonCharge"`
	TotalPrice        decimal.Decimal         `json:"totalPrice"`
	TierApplied       *AppliedTierResponse    `json:"tierApplied,omitempty"`
	Breakdown         []BreakdownLineResponse `json:"breakdown"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		SpaceType:         q.SpaceType().String(),
		ReservationType:   q.ReservationType().String(),
		Duration:          q.Duration(),
		DurationUnit:      string(q.DurationUnit()),
		NumberOfPeople:    q.NumberOfPeople(),
		BasePrice:         q.BasePrice(),
		ExtraPersonCharge: q.ExtraCharge(),
		TotalPrice:        q.TotalPrice(),
	}
	if t := q.TierApplied(); t != nil {
		resp.TierApplied = &AppliedTierResponse{}
		_ = copier.Copy(resp.TierApplied, t)
	}
	_ = copier.Copy(&resp.Breakdown, q.Breakdown())
	return resp
}

type TierResponse struct {
	MinPeople         int              `json:"minPeople"`
	MaxPeople         int              `json:"maxPeople"`
	HourlyRate        decimal.Decimal  `json:"hourlyRate"`
	DailyRate         decimal.Decimal  `json:"dailyRate"`
	ExtraPersonHourly *decimal.Decimal `json:"extraPersonHourly,omitempty"`
	ExtraPersonDaily  *decimal.Decimal `json:"extraPersonDaily,omitempty"`
}

type RateCardResponse struct {
	SpaceType   string           `json:"spaceType"`
	Active      bool             `json:"active"`
	Hourly      *decimal.Decimal `json:"hourly,omitempty"`
	Daily       *decimal.Decimal `json:"daily,omitempty"`
	Weekly      *decimal.Decimal `json:"weekly,omitempty"`
	Monthly     *decimal.Decimal `json:"monthly,omitempty"`
	MinCapacity int              `json:"minCapacity"`
	MaxCapacity int              `json:"maxCapacity"`
	PerPerson   bool             `json:"perPerson"`
	Tiers       []TierResponse   `json:"tiers"`
}

func FromRateCardView(v *queries.RateCardView) *RateCardResponse {
	var resp RateCardResponse
	_ = copier.Copy(&resp, v)
	if resp.Tiers == nil {
		resp.Tiers = []TierResponse{}
	}
	return &resp
}
