package queries

//go:generate mockgen -source=ratecard.go -destination=../../../tests/mock/queries/ratecard_mock.go -package=queriesmock

import (
	"context"

	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/shared"
)

// RateCardResolver loads pricing configuration for a space type.
type RateCardResolver struct {
	store shared.RateCardStore
}

func NewRateCardResolver(store shared.RateCardStore) *RateCardResolver {
	return &RateCardResolver{store: store}
}

// Resolve returns the card whatever its active flag; pricing rejects inactive cards.
func (r *RateCardResolver) Resolve(ctx context.Context, spaceType ratecard.SpaceType) (*ratecard.RateCard, error) {
	card, err := r.store.FindBySpaceType(ctx, spaceType)
	if err != nil {
		if errs.Is(err, errs.ErrRateCardNotFound) {
			return nil, err
		}
		return nil, errs.Wrapf(err, "resolve rate card %s", spaceType)
	}
	return card, nil
}

func (r *RateCardResolver) ResolveActive(ctx context.Context, spaceType ratecard.SpaceType) (*ratecard.RateCard, error) {
	card, err := r.Resolve(ctx, spaceType)
	if err != nil {
		return nil, err
	}
	if !card.IsActive() {
		return nil, errs.Reasonf(errs.ErrRateCardInactive, "rate card for %s is inactive", spaceType)
	}
	return card, nil
}

type PricingQueries interface {
	Quote(ctx context.Context, req pricing.Request) (*pricing.Quote, error)
	RateCard(ctx context.Context, spaceType ratecard.SpaceType) (*RateCardView, error)
}

type pricingQueriesImpl struct {
	resolver   *RateCardResolver
	calculator pricing.Calculator
}

func NewPricingQueries(resolver *RateCardResolver, calculator pricing.Calculator) PricingQueries {
	return &pricingQueriesImpl{resolver: resolver, calculator: calculator}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, req pricing.Request) (*pricing.Quote, error) {
	card, err := q.resolver.Resolve(ctx, req.SpaceType)
	if err != nil {
		return nil, err
	}
	return q.calculator.Quote(card, req)
}

func (q *pricingQueriesImpl) RateCard(ctx context.Context, spaceType ratecard.SpaceType) (*RateCardView, error) {
	card, err := q.resolver.ResolveActive(ctx, spaceType)
	if err != nil {
		return nil, err
	}
	return RateCardToView(card), nil
}

func RateCardToView(card *ratecard.RateCard) *RateCardView {
	tiers := card.Tiers()
	tv := make([]TierView, len(tiers))
	for i, t := range tiers {
		tv[i] = TierView{
			MinPeople:         t.MinPeople(),
			MaxPeople:         t.MaxPeople(),
			HourlyRate:        t.HourlyRate(),
			DailyRate:         t.DailyRate(),
			ExtraPersonHourly: t.ExtraPersonHourly(),
			ExtraPersonDaily:  t.ExtraPersonDaily(),
		}
	}
	return &RateCardView{
		SpaceType:   card.SpaceType().String(),
		Active:      card.IsActive(),
		Hourly:      card.Hourly(),
		Daily:       card.Daily(),
		Weekly:      card.Weekly(),
		Monthly:     card.Monthly(),
		MinCapacity: card.MinCapacity(),
		MaxCapacity: card.MaxCapacity(),
		PerPerson:   card.PerPerson(),
		Tiers:       tv,
	}
}
