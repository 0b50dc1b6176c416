package request

import (
	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/ratecard"

	"cloud.google.com/go/civil"
)

// QuoteRequest is the priced part of a booking. Times are either both set or both absent.
type QuoteRequest struct {
	SpaceType      string  `json:"spaceType" binding:"required,max=64"`
	StartDate      string  `json:"startDate" binding:"required,civildate"`
	EndDate        string  `json:"endDate" binding:"required,civildate"`
	StartTime      *string `json:"startTime,omitempty" binding:"required_with=EndTime,omitempty,clocktime"`
	EndTime        *string `json:"endTime,omitempty" binding:"required_with=StartTime,omitempty,clocktime"`
	NumberOfPeople int     `json:"numberOfPeople" binding:"required,min=1,max=1000"`
}

func (r QuoteRequest) ToDomain() (pricing.Request, error) {
	spaceType, err := ratecard.NewSpaceType(r.SpaceType)
	if err != nil {
		return pricing.Request{}, err
	}
	// formats are guaranteed by the binding tags
	start, _ := civil.ParseDate(r.StartDate)
	end, _ := civil.ParseDate(r.EndDate)

	period := pricing.Period{StartDate: start, EndDate: end}
	if r.StartTime != nil && r.EndTime != nil {
		from, err := pricing.ParseClock(*r.StartTime)
		if err != nil {
			return pricing.Request{}, err
		}
		to, err := pricing.ParseClock(*r.EndTime)
		if err != nil {
			return pricing.Request{}, err
		}
		tr := pricing.NewTimeRange(from, to)
		period.Times = &tr
	}

	return pricing.Request{
		SpaceType:      spaceType,
		Period:         period,
		NumberOfPeople: r.NumberOfPeople,
	}, nil
}
