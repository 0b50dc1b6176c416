package ratecard

import (
	"sort"
	"strings"

	"coworking-reservations/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type SpaceType string

func NewSpaceType(v string) (SpaceType, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return "", errs.Reasonf(errs.ErrInvalidRequest, "space type is required")
	}
	return SpaceType(s), nil
}

func (s SpaceType) String() string {
	return string(s)
}

// Params carries the raw values a RateCard is built from, whatever the source.
type Params struct {
	SpaceType   SpaceType
	Active      bool
	Hourly      *decimal.Decimal
	Daily       *decimal.Decimal
	Weekly      *decimal.Decimal
	Monthly     *decimal.Decimal
	MinCapacity int
	MaxCapacity int
	PerPerson   bool
	Tiers       []Tier
}

type RateCard struct {
	spaceType   SpaceType
	active      bool
	hourly      *decimal.Decimal
	daily       *decimal.Decimal
	weekly      *decimal.Decimal
	monthly     *decimal.Decimal
	minCapacity int
	maxCapacity int
	perPerson   bool
	tiers       []Tier
}

func NewRateCard(p Params) (*RateCard, error) {
	if p.SpaceType == "" {
		return nil, errs.Reasonf(errs.ErrInvalidRateCard, "rate card has no space type")
	}
	if p.MinCapacity < 1 || p.MinCapacity > p.MaxCapacity {
		return nil, errs.Reasonf(errs.ErrInvalidRateCard,
			"rate card %s: capacity range [%d, %d] is invalid", p.SpaceType, p.MinCapacity, p.MaxCapacity)
	}
	for _, r := range []*decimal.Decimal{p.Hourly, p.Daily, p.Weekly, p.Monthly} {
		if r != nil && r.IsNegative() {
			return nil, errs.Reasonf(errs.ErrInvalidRateCard, "rate card %s: negative flat rate", p.SpaceType)
		}
	}

	tiers := make([]Tier, len(p.Tiers))
	copy(tiers, p.Tiers)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].minPeople < tiers[j].minPeople })
	for i := 1; i < len(tiers); i++ {
		if tiers[i].minPeople <= tiers[i-1].maxPeople {
			return nil, errs.Reasonf(errs.ErrInvalidRateCard,
				"rate card %s: tier %d-%d overlaps tier %d-%d", p.SpaceType,
				tiers[i].minPeople, tiers[i].maxPeople, tiers[i-1].minPeople, tiers[i-1].maxPeople)
		}
	}

	return &RateCard{
		spaceType:   p.SpaceType,
		active:      p.Active,
		hourly:      p.Hourly,
		daily:       p.Daily,
		weekly:      p.Weekly,
		monthly:     p.Monthly,
		minCapacity: p.MinCapacity,
		maxCapacity: p.MaxCapacity,
		perPerson:   p.PerPerson,
		tiers:       tiers,
	}, nil
}

func (c *RateCard) Accepts(people int) bool {
	return people >= c.minCapacity && people <= c.maxCapacity
}

func (c *RateCard) SpaceType() SpaceType      { return c.spaceType }
func (c *RateCard) IsActive() bool            { return c.active }
func (c *RateCard) Hourly() *decimal.Decimal  { return c.hourly }
func (c *RateCard) Daily() *decimal.Decimal   { return c.daily }
func (c *RateCard) Weekly() *decimal.Decimal  { return c.weekly }
func (c *RateCard) Monthly() *decimal.Decimal { return c.monthly }
func (c *RateCard) MinCapacity() int          { return c.minCapacity }
func (c *RateCard) MaxCapacity() int          { return c.maxCapacity }
func (c *RateCard) PerPerson() bool           { return c.perPerson }

// Tiers returns the tiers ascending by minimum headcount.
func (c *RateCard) Tiers() []Tier {
	out := make([]Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// Params returns the values needed to rebuild an equal card, used by caches.
func (c *RateCard) Params() Params {
	return Params{
		SpaceType:   c.spaceType,
		Active:      c.active,
		Hourly:      c.hourly,
		Daily:       c.daily,
		Weekly:      c.weekly,
		Monthly:     c.monthly,
		MinCapacity: c.minCapacity,
		MaxCapacity: c.maxCapacity,
		PerPerson:   c.perPerson,
		Tiers:       c.Tiers(),
	}
}
