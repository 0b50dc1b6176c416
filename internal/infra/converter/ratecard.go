package converter

import (
	"strings"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

// RateCardDocument is the source-neutral shape of a rate card. Money is kept
// as decimal strings so every store round-trips amounts exactly.
type RateCardDocument struct {
	SpaceType   string         `json:"space_type" mapstructure:"space_type" firestore:"space_type"`
	Active      bool           `json:"active" mapstructure:"active" firestore:"active"`
	Hourly      *string        `json:"hourly,omitempty" mapstructure:"hourly" firestore:"hourly,omitempty"`
	Daily       *string        `json:"daily,omitempty" mapstructure:"daily" firestore:"daily,omitempty"`
	Weekly      *string        `json:"weekly,omitempty" mapstructure:"weekly" firestore:"weekly,omitempty"`
	Monthly     *string        `json:"monthly,omitempty" mapstructure:"monthly" firestore:"monthly,omitempty"`
	MinCapacity int            `json:"min_capacity" mapstructure:"min_capacity" firestore:"min_capacity"`
	MaxCapacity int            `json:"max_capacity" mapstructure:"max_capacity" firestore:"max_capacity"`
	PerPerson   bool           `json:"per_person" mapstructure:"per_person" firestore:"per_person"`
	Tiers       []TierDocument `json:"tiers,omitempty" mapstructure:"tiers" firestore:"tiers,omitempty"`
}

type TierDocument struct {
	MinPeople         int     `json:"min_people" mapstructure:"min_people" firestore:"min_people"`
	MaxPeople         int     `json:"max_people" mapstructure:"max_people" firestore:"max_people"`
	HourlyRate        string  `json:"hourly_rate" mapstructure:"hourly_rate" firestore:"hourly_rate"`
	DailyRate         string  `json:"daily_rate" mapstructure:"daily_rate" firestore:"daily_rate"`
	ExtraPersonHourly *string `json:"extra_person_hourly,omitempty" mapstructure:"extra_person_hourly" firestore:"extra_person_hourly,omitempty"`
	ExtraPersonDaily  *string `json:"extra_person_daily,omitempty" mapstructure:"extra_person_daily" firestore:"extra_person_daily,omitempty"`
}

func RateCardToDomain(doc RateCardDocument) (*ratecard.RateCard, error) {
	if strings.TrimSpace(doc.SpaceType) == "" {
		return nil, errs.Reasonf(errs.ErrInvalidRateCard, "stored rate card has no space type")
	}
	spaceType, err := ratecard.NewSpaceType(doc.SpaceType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRateCard)
	}

	p := ratecard.Params{
		SpaceType:   spaceType,
		Active:      doc.Active,
		MinCapacity: doc.MinCapacity,
		MaxCapacity: doc.MaxCapacity,
		PerPerson:   doc.PerPerson,
	}
	rates := []struct {
		dst **decimal.Decimal
		src *string
	}{
		{&p.Hourly, doc.Hourly},
		{&p.Daily, doc.Daily},
		{&p.Weekly, doc.Weekly},
		{&p.Monthly, doc.Monthly},
	}
	for _, r := range rates {
		if *r.dst, err = optionalDecimal(r.src); err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "rate card %s", doc.SpaceType), errs.ErrInvalidRateCard)
		}
	}

	for _, td := range doc.Tiers {
		tier, err := tierToDomain(td)
		if err != nil {
			return nil, errs.Wrapf(err, "rate card %s", doc.SpaceType)
		}
		p.Tiers = append(p.Tiers, tier)
	}

	return ratecard.NewRateCard(p)
}

func tierToDomain(td TierDocument) (ratecard.Tier, error) {
	hourly, err := decimal.NewFromString(td.HourlyRate)
	if err != nil {
		return ratecard.Tier{}, errs.Mark(errs.Wrap(err, "tier hourly_rate"), errs.ErrInvalidRateCard)
	}
	daily, err := decimal.NewFromString(td.DailyRate)
	if err != nil {
		return ratecard.Tier{}, errs.Mark(errs.Wrap(err, "tier daily_rate"), errs.ErrInvalidRateCard)
	}
	extraHourly, err := optionalDecimal(td.ExtraPersonHourly)
	if err != nil {
		return ratecard.Tier{}, errs.Mark(errs.Wrap(err, "tier extra_person_hourly"), errs.ErrInvalidRateCard)
	}
	extraDaily, err := optionalDecimal(td.ExtraPersonDaily)
	if err != nil {
		return ratecard.Tier{}, errs.Mark(errs.Wrap(err, "tier extra_person_daily"), errs.ErrInvalidRateCard)
	}
	return ratecard.NewTier(td.MinPeople, td.MaxPeople, hourly, daily, extraHourly, extraDaily)
}

func RateCardToDocument(card *ratecard.RateCard) RateCardDocument {
	doc := RateCardDocument{
		SpaceType:   card.SpaceType().String(),
		Active:      card.IsActive(),
		Hourly:      decimalString(card.Hourly()),
		Daily:       decimalString(card.Daily()),
		Weekly:      decimalString(card.Weekly()),
		Monthly:     decimalString(card.Monthly()),
		MinCapacity: card.MinCapacity(),
		MaxCapacity: card.MaxCapacity(),
		PerPerson:   card.PerPerson(),
	}
	for _, t := range card.Tiers() {
		doc.Tiers = append(doc.Tiers, TierDocument{
			MinPeople:         t.MinPeople(),
			MaxPeople:         t.MaxPeople(),
			HourlyRate:        t.HourlyRate().String(),
			DailyRate:         t.DailyRate().String(),
			ExtraPersonHourly: decimalString(t.ExtraPersonHourly()),
			ExtraPersonDaily:  decimalString(t.ExtraPersonDaily()),
		})
	}
	return doc
}

func optionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	return ptr.Of(d.String())
}
